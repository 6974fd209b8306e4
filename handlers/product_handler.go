package handlers

import (
	"fmt"

	"github.com/AnderssonCordoba/PruebaDrenvioV2/models"
	"github.com/AnderssonCordoba/PruebaDrenvioV2/services"
	"github.com/AnderssonCordoba/PruebaDrenvioV2/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ProductHandler 商品控制器
type ProductHandler struct {
	productService *services.ProductService
}

// NewProductHandler 创建商品控制器
func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{
		productService: services.NewProductService(db),
	}
}

// CreateProduct 创建商品
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req struct {
		Name         *string  `json:"name"`
		BrandID      *string  `json:"brandId"`
		Stock        *int     `json:"stock"`
		Price        *float64 `json:"price"`
		SpecialPrice *float64 `json:"specialPrice"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "请求参数错误")
		return
	}

	// 按序检查必填字段，报告第一个缺失项
	required := []struct {
		name  string
		found bool
	}{
		{"name", req.Name != nil},
		{"brandId", req.BrandID != nil},
		{"stock", req.Stock != nil},
		{"price", req.Price != nil},
	}
	for _, field := range required {
		if !field.found {
			utils.BadRequest(c, fmt.Sprintf("字段'%s'为必填项", field.name))
			return
		}
	}

	if *req.Stock < 0 || *req.Price < 0 || (req.SpecialPrice != nil && *req.SpecialPrice < 0) {
		utils.BadRequest(c, "数值字段必须为有效的非负数")
		return
	}

	product := models.Product{
		Name:    *req.Name,
		BrandID: *req.BrandID,
		Stock:   *req.Stock,
		Price:   *req.Price,
	}
	if req.SpecialPrice != nil {
		product.SpecialPrice = *req.SpecialPrice
	}

	created, err := h.productService.CreateProduct(&product)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Created(c, created)
}

// GetProducts 获取有库存商品的分页列表
func (h *ProductHandler) GetProducts(c *gin.Context) {
	page := parsePositiveInt(c.Query("page"), 1)
	limit := parsePositiveInt(c.Query("limit"), 10)

	result, err := h.productService.GetAllProducts(page, limit)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Success(c, result)
}

// GetProduct 获取单个商品
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.productService.GetProductByID(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Success(c, product)
}

// UpdateProduct 更新商品
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequest(c, "请求参数错误")
		return
	}
	if len(updates) == 0 {
		utils.BadRequest(c, "至少需要一个待更新字段")
		return
	}

	product, err := h.productService.UpdateProduct(c.Param("id"), updates)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Success(c, product)
}

// DeleteProduct 删除商品
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.productService.DeleteProduct(c.Param("id")); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Message(c, "商品删除成功")
}
