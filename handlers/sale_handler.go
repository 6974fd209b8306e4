package handlers

import (
	"github.com/AnderssonCordoba/PruebaDrenvioV2/services"
	"github.com/AnderssonCordoba/PruebaDrenvioV2/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SaleHandler 销售控制器
type SaleHandler struct {
	saleService *services.SaleService
}

// NewSaleHandler 创建销售控制器
func NewSaleHandler(db *gorm.DB) *SaleHandler {
	return &SaleHandler{
		saleService: services.NewSaleService(db),
	}
}

// SellProduct 执行销售
func (h *SaleHandler) SellProduct(c *gin.Context) {
	var req struct {
		ProductID *string `json:"productId"`
		ClientID  *string `json:"clientId"`
		Quantity  *int    `json:"quantity"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "请求参数错误")
		return
	}
	if req.ProductID == nil || req.ClientID == nil || req.Quantity == nil {
		utils.BadRequest(c, "所有字段均为必填项")
		return
	}
	if *req.Quantity <= 0 {
		utils.BadRequest(c, "数量必须为正整数")
		return
	}

	if err := h.saleService.SellProduct(*req.ProductID, *req.ClientID, *req.Quantity); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Message(c, "销售成功")
}
