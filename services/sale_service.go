package services

import (
	"errors"
	"time"

	"github.com/AnderssonCordoba/PruebaDrenvioV2/models"
	"github.com/AnderssonCordoba/PruebaDrenvioV2/utils"

	"gorm.io/gorm"
)

// SaleService 销售服务
type SaleService struct {
	db *gorm.DB
}

// NewSaleService 创建销售服务实例
func NewSaleService(db *gorm.DB) *SaleService {
	return &SaleService{db: db}
}

// SellProduct 执行销售事务
// 步骤：查商品 → 检查库存 → 查客户 → 条件扣减库存 → 写入销售记录 → 追加到客户销售序列。
// 扣减使用带库存条件的单条UPDATE，两个并发销售不会同时通过库存检查。
// 扣减之后的步骤失败时库存不会回补，该一致性缺口见DESIGN.md。
func (s *SaleService) SellProduct(productID, clientID string, quantity int) error {
	var product models.Product
	if err := s.db.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewNotFoundError("商品不存在")
		}
		return err
	}

	if product.Stock < quantity {
		return utils.NewValidationError("库存不足")
	}

	var client models.Client
	if err := s.db.First(&client, "id = ?", clientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewNotFoundError("客户不存在")
		}
		return err
	}

	// 条件扣减：stock >= quantity 时才生效，数据库保证原子性
	result := s.db.Model(&models.Product{}).
		Where("id = ? AND stock >= ?", productID, quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.NewValidationError("库存不足")
	}

	sale := models.Sale{
		ProductID: productID,
		Quantity:  quantity,
		Date:      time.Now(),
	}
	if err := s.db.Create(&sale).Error; err != nil {
		return err
	}

	if err := s.db.Model(&client).Association("Sales").Append(&sale); err != nil {
		return err
	}

	return nil
}
