package handlers

import (
	"strconv"

	"github.com/AnderssonCordoba/PruebaDrenvioV2/models"
	"github.com/AnderssonCordoba/PruebaDrenvioV2/services"
	"github.com/AnderssonCordoba/PruebaDrenvioV2/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ClientHandler 客户控制器
type ClientHandler struct {
	clientService *services.ClientService
}

// NewClientHandler 创建客户控制器
func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{
		clientService: services.NewClientService(db),
	}
}

// identificationParam 解析路径中的identification
// 非数字的取值不可能对应任何客户，按不存在处理
func identificationParam(c *gin.Context) (int64, bool) {
	identification, err := strconv.ParseInt(c.Param("identification"), 10, 64)
	if err != nil {
		utils.NotFound(c, "客户不存在")
		return 0, false
	}
	return identification, true
}

// CreateClient 创建客户
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req struct {
		Name           *string  `json:"name"`
		Identification *int64   `json:"identification"`
		Phone          *string  `json:"phone"`
		Email          *string  `json:"email"`
		SpecialBrands  []string `json:"specialBrands"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "请求参数错误")
		return
	}
	if req.Name == nil || req.Identification == nil || req.Phone == nil || req.Email == nil {
		utils.BadRequest(c, "所有字段均为必填项")
		return
	}

	client := models.Client{
		Name:           *req.Name,
		Identification: *req.Identification,
		Phone:          *req.Phone,
		Email:          *req.Email,
	}

	created, err := h.clientService.CreateClient(&client, req.SpecialBrands)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Created(c, created)
}

// GetClients 获取所有客户
func (h *ClientHandler) GetClients(c *gin.Context) {
	clients, err := h.clientService.GetAllClients()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Success(c, clients)
}

// GetClient 根据identification获取客户
func (h *ClientHandler) GetClient(c *gin.Context) {
	identification, ok := identificationParam(c)
	if !ok {
		return
	}

	client, err := h.clientService.GetClientByIdentification(identification)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Success(c, client)
}

// UpdateClient 根据identification更新客户
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	identification, ok := identificationParam(c)
	if !ok {
		return
	}

	var req struct {
		Name          *string   `json:"name"`
		Phone         *string   `json:"phone"`
		Email         *string   `json:"email"`
		SpecialBrands *[]string `json:"specialBrands"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "请求参数错误")
		return
	}
	if req.Name == nil || req.Phone == nil || req.Email == nil {
		utils.BadRequest(c, "所有字段均为必填项")
		return
	}

	client, err := h.clientService.UpdateClient(identification, *req.Name, *req.Phone, *req.Email, req.SpecialBrands)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Success(c, client)
}

// DeleteClient 根据identification删除客户
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	identification, ok := identificationParam(c)
	if !ok {
		return
	}

	if err := h.clientService.DeleteClient(identification); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Message(c, "客户删除成功")
}

// AddBrandToClient 为客户关联特殊品牌
func (h *ClientHandler) AddBrandToClient(c *gin.Context) {
	identification, ok := identificationParam(c)
	if !ok {
		return
	}

	var req struct {
		BrandID *string `json:"brandId"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.BrandID == nil {
		utils.BadRequest(c, "brandId字段为必填项")
		return
	}

	if err := h.clientService.AddBrandToClient(identification, *req.BrandID); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Message(c, "品牌关联成功")
}
