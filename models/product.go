package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product 商品模型
// BrandID在创建时不校验品牌是否存在（弱引用完整性，有意为之）
type Product struct {
	ID           string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name         string  `json:"name" gorm:"column:name;type:varchar(100);not null"`
	BrandID      string  `json:"brandId" gorm:"column:brand_id;type:varchar(36);not null"`
	Stock        int     `json:"stock" gorm:"column:stock;not null"`
	Price        float64 `json:"price" gorm:"column:price;not null"`
	SpecialPrice float64 `json:"specialPrice" gorm:"column:special_price;not null"`

	// 关联关系
	Brand *Brand `json:"brand,omitempty" gorm:"foreignKey:BrandID"`
}

// BeforeCreate 创建前生成ID
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
