package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/starcomputers/internal/content"
	"github.com/starcomputers/internal/db"
	"gorm.io/gorm"
)

// ErrValidation 表示请求文档不符合内容结构（字段类型错误等）。
var ErrValidation = errors.New("invalid content document")

// ContentService 提供整站内容文档的读取与替换能力。
// 文档全局唯一，按固定单例键存储，创建走惰性初始化。
type ContentService struct {
	db *gorm.DB
}

// NewContentService 构造 ContentService。
func NewContentService(gdb *gorm.DB) *ContentService {
	return &ContentService{db: gdb}
}

// GetOrCreate 返回当前内容文档；不存在时用默认内容创建后返回。
func (s *ContentService) GetOrCreate() (content.Document, error) {
	record, err := s.findRecord()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.createRecord(content.Default())
		}
		return content.Document{}, err
	}

	return decodeRecord(record)
}

// ReplaceAll 用 raw 中的文档整体覆盖存储内容；不存在时直接创建。
// raw 无法解码为文档结构时返回包装了 ErrValidation 的错误。
func (s *ContentService) ReplaceAll(raw json.RawMessage) (content.Document, error) {
	doc, err := decodeDocument(raw)
	if err != nil {
		return content.Document{}, err
	}

	record, err := s.findRecord()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.createRecord(doc)
		}
		return content.Document{}, err
	}

	return s.saveDocument(record, doc)
}

// ReplaceSection 把 name 区块整体替换为 raw 的内容并返回替换后的区块值。
// 记录不存在时先用默认内容创建再替换。
func (s *ContentService) ReplaceSection(name string, raw json.RawMessage) (interface{}, error) {
	if !content.IsValidSection(name) {
		return nil, content.ErrInvalidSection
	}

	record, err := s.findRecord()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if _, createErr := s.createRecord(content.Default()); createErr != nil {
				return nil, createErr
			}
			record, err = s.findRecord()
		}
		if err != nil {
			return nil, err
		}
	}

	doc, err := decodeRecord(record)
	if err != nil {
		return nil, err
	}

	if err := content.ApplySection(&doc, name, raw); err != nil {
		return nil, err
	}

	if _, err := s.saveDocument(record, doc); err != nil {
		return nil, err
	}

	return content.SectionValue(&doc, name)
}

// ResetToDefault 删除现有记录并用默认内容重建。
func (s *ContentService) ResetToDefault() (content.Document, error) {
	if err := s.deleteAll(); err != nil {
		return content.Document{}, err
	}
	return s.createRecord(content.Default())
}

// ImportAll 删除现有记录并用调用方提供的文档重建。
func (s *ContentService) ImportAll(raw json.RawMessage) (content.Document, error) {
	doc, err := decodeDocument(raw)
	if err != nil {
		return content.Document{}, err
	}

	if err := s.deleteAll(); err != nil {
		return content.Document{}, err
	}
	return s.createRecord(doc)
}

func (s *ContentService) findRecord() (*db.SiteContent, error) {
	var record db.SiteContent
	if err := s.db.Where("singleton_key = ?", db.SingletonKey).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *ContentService) createRecord(doc content.Document) (content.Document, error) {
	data, err := encodeDocument(doc)
	if err != nil {
		return content.Document{}, err
	}

	record := db.SiteContent{SingletonKey: db.SingletonKey, Data: data}
	if err := s.db.Create(&record).Error; err != nil {
		return content.Document{}, fmt.Errorf("create site content: %w", err)
	}
	return doc, nil
}

func (s *ContentService) saveDocument(record *db.SiteContent, doc content.Document) (content.Document, error) {
	data, err := encodeDocument(doc)
	if err != nil {
		return content.Document{}, err
	}

	record.Data = data
	if err := s.db.Save(record).Error; err != nil {
		return content.Document{}, fmt.Errorf("save site content: %w", err)
	}
	return doc, nil
}

// deleteAll 硬删除所有记录，重置与导入都走删后重建。
func (s *ContentService) deleteAll() error {
	if err := s.db.Unscoped().Where("1 = 1").Delete(&db.SiteContent{}).Error; err != nil {
		return fmt.Errorf("delete site content: %w", err)
	}
	return nil
}

func decodeDocument(raw json.RawMessage) (content.Document, error) {
	var doc content.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return content.Document{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return doc, nil
}

func decodeRecord(record *db.SiteContent) (content.Document, error) {
	var doc content.Document
	if err := json.Unmarshal([]byte(record.Data), &doc); err != nil {
		return content.Document{}, fmt.Errorf("decode stored site content: %w", err)
	}
	return doc, nil
}

func encodeDocument(doc content.Document) (string, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode site content: %w", err)
	}
	return string(data), nil
}
