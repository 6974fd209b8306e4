package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client 客户模型
// 对外操作以identification（自然键）定位，不使用内部ID
type Client struct {
	ID             string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name           string `json:"name" gorm:"column:name;type:varchar(100);not null"`
	Identification int64  `json:"identification" gorm:"column:identification;uniqueIndex;not null"`
	Phone          string `json:"phone" gorm:"column:phone;type:varchar(30);uniqueIndex;not null"`
	Email          string `json:"email" gorm:"column:email;type:varchar(100);uniqueIndex;not null"`

	// 关联关系
	SpecialBrands []Brand `json:"specialBrands" gorm:"many2many:client_special_brands"`
	Sales         []Sale  `json:"sales" gorm:"foreignKey:ClientID"`
}

// BeforeCreate 创建前生成ID
func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
