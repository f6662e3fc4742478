package db

import "gorm.io/gorm"

// SingletonKey 是整站内容记录使用的固定键。
// 全局只允许存在一条记录，由唯一索引保证。
const SingletonKey = "primary"

// SiteContent 以 JSON 文本形式存储整站内容文档。
type SiteContent struct {
	gorm.Model
	SingletonKey string `gorm:"size:32;uniqueIndex;not null"`
	Data         string `gorm:"type:text;not null"`
}

// TableName 自定义表名以保持命名一致。
func (SiteContent) TableName() string {
	return "site_contents"
}
