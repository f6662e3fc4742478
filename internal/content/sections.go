package content

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidSection 表示调用方传入了未知的区块名。
var ErrInvalidSection = errors.New("invalid section name")

const (
	SectionCompany     = "company"
	SectionHeroSlides  = "heroSlides"
	SectionStats       = "stats"
	SectionServices    = "services"
	SectionAbout       = "about"
	SectionContact     = "contact"
	SectionSocialLinks = "socialLinks"
	SectionFooter      = "footer"
)

// sectionNames 是允许按名替换的区块全集，顺序与文档字段一致。
var sectionNames = []string{
	SectionCompany,
	SectionHeroSlides,
	SectionStats,
	SectionServices,
	SectionAbout,
	SectionContact,
	SectionSocialLinks,
	SectionFooter,
}

// SectionNames 返回合法区块名列表的副本。
func SectionNames() []string {
	names := make([]string, len(sectionNames))
	copy(names, sectionNames)
	return names
}

// IsValidSection 判断 name 是否为可替换区块。
func IsValidSection(name string) bool {
	for _, candidate := range sectionNames {
		if name == candidate {
			return true
		}
	}
	return false
}

// ApplySection 把 raw 解码为 name 对应区块的类型并整体覆盖到 doc 上。
// 未知区块名返回 ErrInvalidSection；区块内容不做合并，按值整体替换。
func ApplySection(doc *Document, name string, raw json.RawMessage) error {
	decode := func(dst interface{}) error {
		if err := json.Unmarshal(raw, dst); err != nil {
			return fmt.Errorf("decode section %s: %w", name, err)
		}
		return nil
	}

	switch name {
	case SectionCompany:
		var v Company
		if err := decode(&v); err != nil {
			return err
		}
		doc.Company = v
	case SectionHeroSlides:
		var v []HeroSlide
		if err := decode(&v); err != nil {
			return err
		}
		doc.HeroSlides = v
	case SectionStats:
		var v []Stat
		if err := decode(&v); err != nil {
			return err
		}
		doc.Stats = v
	case SectionServices:
		var v []Service
		if err := decode(&v); err != nil {
			return err
		}
		doc.Services = v
	case SectionAbout:
		var v About
		if err := decode(&v); err != nil {
			return err
		}
		doc.About = v
	case SectionContact:
		var v Contact
		if err := decode(&v); err != nil {
			return err
		}
		doc.Contact = v
	case SectionSocialLinks:
		var v SocialLinks
		if err := decode(&v); err != nil {
			return err
		}
		doc.SocialLinks = v
	case SectionFooter:
		var v Footer
		if err := decode(&v); err != nil {
			return err
		}
		doc.Footer = v
	default:
		return ErrInvalidSection
	}

	return nil
}

// SectionValue 返回 doc 中 name 对应区块的当前值。
func SectionValue(doc *Document, name string) (interface{}, error) {
	switch name {
	case SectionCompany:
		return doc.Company, nil
	case SectionHeroSlides:
		return doc.HeroSlides, nil
	case SectionStats:
		return doc.Stats, nil
	case SectionServices:
		return doc.Services, nil
	case SectionAbout:
		return doc.About, nil
	case SectionContact:
		return doc.Contact, nil
	case SectionSocialLinks:
		return doc.SocialLinks, nil
	case SectionFooter:
		return doc.Footer, nil
	default:
		return nil, ErrInvalidSection
	}
}
