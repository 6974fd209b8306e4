package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sale 销售记录模型，仅在销售事务中创建，创建后不可修改
type Sale struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID string    `json:"productId" gorm:"column:product_id;type:varchar(36);not null"`
	ClientID  string    `json:"-" gorm:"column:client_id;type:varchar(36);index"`
	Quantity  int       `json:"quantity" gorm:"column:quantity;not null"`
	Date      time.Time `json:"date" gorm:"column:date;not null"`
}

// BeforeCreate 创建前生成ID
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
