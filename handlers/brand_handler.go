package handlers

import (
	"github.com/AnderssonCordoba/PruebaDrenvioV2/services"
	"github.com/AnderssonCordoba/PruebaDrenvioV2/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BrandHandler 品牌控制器
type BrandHandler struct {
	brandService *services.BrandService
}

// NewBrandHandler 创建品牌控制器
func NewBrandHandler(db *gorm.DB) *BrandHandler {
	return &BrandHandler{
		brandService: services.NewBrandService(db),
	}
}

// CreateBrand 创建品牌
func (h *BrandHandler) CreateBrand(c *gin.Context) {
	var req struct {
		Name *string `json:"name"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "请求参数错误")
		return
	}
	if req.Name == nil {
		utils.BadRequest(c, "name字段为必填项")
		return
	}

	brand, err := h.brandService.CreateBrand(*req.Name)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Created(c, brand)
}

// GetBrands 获取品牌分页列表
func (h *BrandHandler) GetBrands(c *gin.Context) {
	page := parsePositiveInt(c.Query("page"), 1)
	limit := parsePositiveInt(c.Query("limit"), 10)

	result, err := h.brandService.GetAllBrands(page, limit)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Success(c, result)
}

// GetBrand 获取单个品牌
func (h *BrandHandler) GetBrand(c *gin.Context) {
	brand, err := h.brandService.GetBrandByID(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Success(c, brand)
}

// UpdateBrand 更新品牌
func (h *BrandHandler) UpdateBrand(c *gin.Context) {
	var req struct {
		Name *string `json:"name"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "请求参数错误")
		return
	}
	if req.Name == nil {
		utils.BadRequest(c, "name字段为必填项")
		return
	}

	brand, err := h.brandService.UpdateBrand(c.Param("id"), *req.Name)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Success(c, brand)
}

// DeleteBrand 删除品牌
func (h *BrandHandler) DeleteBrand(c *gin.Context) {
	if err := h.brandService.DeleteBrand(c.Param("id")); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Message(c, "品牌删除成功")
}

// GetBrandProducts 获取品牌关联的商品列表
func (h *BrandHandler) GetBrandProducts(c *gin.Context) {
	products, err := h.brandService.GetProductsByBrand(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Success(c, products)
}
