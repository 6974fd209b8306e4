package services

import (
	"errors"

	"github.com/AnderssonCordoba/PruebaDrenvioV2/models"
	"github.com/AnderssonCordoba/PruebaDrenvioV2/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientService 客户服务
type ClientService struct {
	db *gorm.DB
}

// NewClientService 创建客户服务实例
func NewClientService(db *gorm.DB) *ClientService {
	return &ClientService{db: db}
}

// CreateClient 创建客户
// 不做重复预检查，identification/phone/email的唯一冲突由数据库拒绝，
// 统一作为参数错误上报
func (s *ClientService) CreateClient(client *models.Client, specialBrandIDs []string) (*models.Client, error) {
	if len(specialBrandIDs) > 0 {
		brands, err := s.findBrands(specialBrandIDs)
		if err != nil {
			return nil, err
		}
		client.SpecialBrands = brands
	}

	if err := s.db.Create(client).Error; err != nil {
		return nil, utils.NewValidationError(err.Error())
	}

	return client, nil
}

// GetAllClients 获取所有客户，不分页
func (s *ClientService) GetAllClients() ([]models.Client, error) {
	var clients []models.Client
	err := s.db.Preload("SpecialBrands").Preload("Sales").Find(&clients).Error
	if err != nil {
		return nil, err
	}

	if len(clients) == 0 {
		return nil, utils.NewNotFoundError("暂无客户记录")
	}

	return clients, nil
}

// GetClientByIdentification 根据identification获取客户
func (s *ClientService) GetClientByIdentification(identification int64) (*models.Client, error) {
	var client models.Client
	err := s.db.Preload("SpecialBrands").Preload("Sales").
		Where("identification = ?", identification).
		First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError("客户不存在")
		}
		return nil, err
	}
	return &client, nil
}

// UpdateClient 根据identification更新客户
// identification本身不可通过该路径修改；specialBrands提供时整体替换原集合
func (s *ClientService) UpdateClient(identification int64, name, phone, email string, specialBrandIDs *[]string) (*models.Client, error) {
	var client models.Client
	err := s.db.Where("identification = ?", identification).First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError("客户不存在")
		}
		return nil, err
	}

	client.Name = name
	client.Phone = phone
	client.Email = email
	if err := s.db.Save(&client).Error; err != nil {
		return nil, err
	}

	if specialBrandIDs != nil {
		brands, err := s.findBrands(*specialBrandIDs)
		if err != nil {
			return nil, err
		}
		association := s.db.Model(&client).Association("SpecialBrands")
		if len(brands) == 0 {
			err = association.Clear()
		} else {
			err = association.Replace(brands)
		}
		if err != nil {
			return nil, err
		}
	}

	return s.GetClientByIdentification(identification)
}

// DeleteClient 根据identification删除客户
func (s *ClientService) DeleteClient(identification int64) error {
	var client models.Client
	err := s.db.Where("identification = ?", identification).First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewNotFoundError("客户不存在")
		}
		return err
	}

	if err := s.db.Delete(&client).Error; err != nil {
		return err
	}

	return nil
}

// AddBrandToClient 为客户关联特殊品牌
// 已关联时不产生任何额外效果（集合语义，幂等）
func (s *ClientService) AddBrandToClient(identification int64, brandID string) error {
	var client models.Client
	err := s.db.Preload("SpecialBrands").
		Where("identification = ?", identification).
		First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewNotFoundError("客户不存在")
		}
		return err
	}

	if err := uuid.Validate(brandID); err != nil {
		return utils.NewValidationError("品牌ID无效")
	}

	var brand models.Brand
	if err := s.db.First(&brand, "id = ?", brandID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewNotFoundError("品牌不存在")
		}
		return err
	}

	for _, existing := range client.SpecialBrands {
		if existing.ID == brand.ID {
			return nil
		}
	}

	return s.db.Model(&client).Association("SpecialBrands").Append(&brand)
}

// findBrands 按ID集合查询品牌，未知ID静默忽略
func (s *ClientService) findBrands(ids []string) ([]models.Brand, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var brands []models.Brand
	if err := s.db.Where("id IN ?", ids).Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}
