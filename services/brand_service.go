package services

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/AnderssonCordoba/PruebaDrenvioV2/models"
	"github.com/AnderssonCordoba/PruebaDrenvioV2/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	brandNameMinLength = 2
	brandNameMaxLength = 50
)

// BrandService 品牌服务
type BrandService struct {
	db *gorm.DB
}

// NewBrandService 创建品牌服务实例
func NewBrandService(db *gorm.DB) *BrandService {
	return &BrandService{db: db}
}

// BrandPageInfo 品牌分页信息
type BrandPageInfo struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalBrands int64 `json:"totalBrands"`
}

// BrandPage 品牌分页结果
type BrandPage struct {
	Brands   []models.Brand `json:"brands"`
	PageInfo BrandPageInfo  `json:"pageInfo"`
}

// CreateBrand 创建品牌
func (s *BrandService) CreateBrand(name string) (*models.Brand, error) {
	// 长度按字符计而不是字节，多字节名称（如带重音的西文）不受影响
	if nameLength := utf8.RuneCountInString(name); nameLength < brandNameMinLength || nameLength > brandNameMaxLength {
		return nil, utils.NewValidationError(
			fmt.Sprintf("名称长度必须在%d到%d个字符之间", brandNameMinLength, brandNameMaxLength))
	}

	// 插入前显式检查品牌是否已存在（精确匹配，区分大小写）
	var existingBrand models.Brand
	if err := s.db.Where("name = ?", name).First(&existingBrand).Error; err == nil {
		return nil, utils.NewConflictError("品牌已存在")
	}

	brand := models.Brand{Name: name}
	if err := s.db.Create(&brand).Error; err != nil {
		return nil, err
	}

	return &brand, nil
}

// GetAllBrands 获取品牌分页列表
// 全量加载后在内存中切片分页，仅当品牌表完全为空时返回404（请求页为空不算）
func (s *BrandService) GetAllBrands(page, limit int) (*BrandPage, error) {
	var brands []models.Brand
	if err := s.db.Find(&brands).Error; err != nil {
		return nil, err
	}

	if len(brands) == 0 {
		return nil, utils.NewNotFoundError("暂无品牌记录")
	}

	start := (page - 1) * limit
	end := start + limit
	if start > len(brands) {
		start = len(brands)
	}
	if end > len(brands) {
		end = len(brands)
	}

	return &BrandPage{
		Brands: brands[start:end],
		PageInfo: BrandPageInfo{
			CurrentPage: page,
			TotalPages:  (len(brands) + limit - 1) / limit,
			TotalBrands: int64(len(brands)),
		},
	}, nil
}

// GetBrandByID 根据ID获取品牌
func (s *BrandService) GetBrandByID(id string) (*models.Brand, error) {
	if err := uuid.Validate(id); err != nil {
		return nil, utils.NewValidationError("品牌ID无效")
	}

	var brand models.Brand
	if err := s.db.First(&brand, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError("品牌不存在")
		}
		return nil, err
	}
	return &brand, nil
}

// UpdateBrand 更新品牌名称
func (s *BrandService) UpdateBrand(id, name string) (*models.Brand, error) {
	if err := uuid.Validate(id); err != nil {
		return nil, utils.NewValidationError("品牌ID无效")
	}

	var brand models.Brand
	if err := s.db.First(&brand, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError("品牌不存在")
		}
		return nil, err
	}

	brand.Name = name
	if err := s.db.Save(&brand).Error; err != nil {
		return nil, err
	}

	return &brand, nil
}

// DeleteBrand 删除品牌，不级联删除关联商品
func (s *BrandService) DeleteBrand(id string) error {
	if err := uuid.Validate(id); err != nil {
		return utils.NewValidationError("品牌ID无效")
	}

	var brand models.Brand
	if err := s.db.First(&brand, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewNotFoundError("品牌不存在")
		}
		return err
	}

	if err := s.db.Delete(&brand).Error; err != nil {
		return err
	}

	return nil
}

// GetProductsByBrand 获取品牌关联的所有商品
// 品牌本身存在但没有关联商品时同样返回404
func (s *BrandService) GetProductsByBrand(brandID string) ([]models.Product, error) {
	if err := uuid.Validate(brandID); err != nil {
		return nil, utils.NewValidationError("品牌ID无效")
	}

	var products []models.Product
	if err := s.db.Where("brand_id = ?", brandID).Find(&products).Error; err != nil {
		return nil, err
	}

	if len(products) == 0 {
		return nil, utils.NewNotFoundError("没有找到该品牌关联的商品")
	}

	return products, nil
}
