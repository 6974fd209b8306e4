package services

import (
	"errors"

	"github.com/AnderssonCordoba/PruebaDrenvioV2/models"
	"github.com/AnderssonCordoba/PruebaDrenvioV2/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductService 商品服务
type ProductService struct {
	db *gorm.DB
}

// NewProductService 创建商品服务实例
func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// ProductPageInfo 商品分页信息
type ProductPageInfo struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
}

// ProductPage 商品分页结果
type ProductPage struct {
	Products []models.Product `json:"products"`
	PageInfo ProductPageInfo  `json:"pageInfo"`
}

// 商品可更新字段到数据库列的映射，未知字段忽略
var productUpdateColumns = map[string]string{
	"name":         "name",
	"brandId":      "brand_id",
	"stock":        "stock",
	"price":        "price",
	"specialPrice": "special_price",
}

// CreateProduct 创建商品
// 不校验BrandID对应的品牌是否存在（弱引用完整性，沿用既有行为）
func (s *ProductService) CreateProduct(product *models.Product) (*models.Product, error) {
	if err := s.db.Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// GetAllProducts 获取有库存商品的分页列表
// 数据库侧分页，当前页为空时返回404（与品牌列表行为不同，保持既有差异）
func (s *ProductService) GetAllProducts(page, limit int) (*ProductPage, error) {
	start := (page - 1) * limit

	var products []models.Product
	err := s.db.Where("stock > 0").
		Limit(limit).
		Offset(start).
		Preload("Brand").
		Find(&products).Error
	if err != nil {
		return nil, err
	}

	if len(products) == 0 {
		return nil, utils.NewNotFoundError("暂无库存商品")
	}

	var total int64
	if err := s.db.Model(&models.Product{}).Where("stock > 0").Count(&total).Error; err != nil {
		return nil, err
	}

	return &ProductPage{
		Products: products,
		PageInfo: ProductPageInfo{
			CurrentPage: page,
			TotalPages:  int((total + int64(limit) - 1) / int64(limit)),
			HasNextPage: int64(start+limit) < total,
		},
	}, nil
}

// GetProductByID 根据ID获取商品，展开品牌信息
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	if err := uuid.Validate(id); err != nil {
		return nil, utils.NewValidationError("商品ID无效")
	}

	var product models.Product
	if err := s.db.Preload("Brand").First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError("商品不存在")
		}
		return nil, err
	}
	return &product, nil
}

// UpdateProduct 按字段合并更新商品
func (s *ProductService) UpdateProduct(id string, updates map[string]interface{}) (*models.Product, error) {
	if err := uuid.Validate(id); err != nil {
		return nil, utils.NewValidationError("商品ID无效")
	}

	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError("商品不存在")
		}
		return nil, err
	}

	columns := make(map[string]interface{})
	for field, value := range updates {
		if column, ok := productUpdateColumns[field]; ok {
			columns[column] = value
		}
	}

	if len(columns) > 0 {
		if err := s.db.Model(&product).Updates(columns).Error; err != nil {
			return nil, err
		}
		if err := s.db.First(&product, "id = ?", id).Error; err != nil {
			return nil, err
		}
	}

	return &product, nil
}

// DeleteProduct 删除商品
func (s *ProductService) DeleteProduct(id string) error {
	if err := uuid.Validate(id); err != nil {
		return utils.NewValidationError("商品ID无效")
	}

	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewNotFoundError("商品不存在")
		}
		return err
	}

	if err := s.db.Delete(&product).Error; err != nil {
		return err
	}

	return nil
}
