package handlers

import (
	"github.com/AnderssonCordoba/PruebaDrenvioV2/services"
	"github.com/AnderssonCordoba/PruebaDrenvioV2/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PriceHandler 价格查询控制器
type PriceHandler struct {
	priceService *services.PriceService
}

// NewPriceHandler 创建价格控制器
func NewPriceHandler(db *gorm.DB) *PriceHandler {
	return &PriceHandler{
		priceService: services.NewPriceService(db),
	}
}

// GetPrice 查询客户对指定商品的适用价格
// 路径参数user_id为客户内部ID，nombre_producto为商品名称（参数名属于公开契约）
func (h *PriceHandler) GetPrice(c *gin.Context) {
	price, err := h.priceService.ResolvePrice(c.Param("user_id"), c.Param("nombre_producto"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Success(c, gin.H{"price": price})
}
