package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Brand 品牌模型
// 名称列使用binary排序规则，唯一索引区分大小写（"Acme"和"acme"可共存）
type Brand struct {
	ID   string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name string `json:"name" gorm:"column:name;type:varchar(50);uniqueIndex;not null"`
}

// BeforeCreate 创建前生成ID
func (b *Brand) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
