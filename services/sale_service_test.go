package services

import (
	"testing"

	"github.com/AnderssonCordoba/PruebaDrenvioV2/models"
	"github.com/AnderssonCordoba/PruebaDrenvioV2/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSellProduct(t *testing.T) {
	db := newTestDB(t)
	svc := NewSaleService(db)
	brand := createBrand(t, db, "Acme")
	product := createProduct(t, db, "Widget", brand.ID, 5, 100, 80)
	client := createClient(t, db, "Juan", 1001, "3001112233", "juan@example.com")

	require.NoError(t, svc.SellProduct(product.ID, client.ID, 3))

	var updated models.Product
	require.NoError(t, db.First(&updated, "id = ?", product.ID).Error)
	assert.Equal(t, 2, updated.Stock)

	var sales []models.Sale
	require.NoError(t, db.Find(&sales).Error)
	require.Len(t, sales, 1)
	assert.Equal(t, product.ID, sales[0].ProductID)
	assert.Equal(t, 3, sales[0].Quantity)
	assert.False(t, sales[0].Date.IsZero())

	var reloaded models.Client
	require.NoError(t, db.Preload("Sales").First(&reloaded, "id = ?", client.ID).Error)
	assert.Len(t, reloaded.Sales, 1)
}

func TestSellProductInsufficientStock(t *testing.T) {
	db := newTestDB(t)
	svc := NewSaleService(db)
	brand := createBrand(t, db, "Acme")
	product := createProduct(t, db, "Widget", brand.ID, 2, 100, 80)
	client := createClient(t, db, "Juan", 1001, "3001112233", "juan@example.com")

	err := svc.SellProduct(product.ID, client.ID, 3)
	require.Error(t, err)
	assert.IsType(t, &utils.ValidationError{}, err)

	// 库存不变，不产生销售记录
	var unchanged models.Product
	require.NoError(t, db.First(&unchanged, "id = ?", product.ID).Error)
	assert.Equal(t, 2, unchanged.Stock)

	var count int64
	require.NoError(t, db.Model(&models.Sale{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSellProductExactStock(t *testing.T) {
	db := newTestDB(t)
	svc := NewSaleService(db)
	brand := createBrand(t, db, "Acme")
	product := createProduct(t, db, "Widget", brand.ID, 3, 100, 80)
	client := createClient(t, db, "Juan", 1001, "3001112233", "juan@example.com")

	require.NoError(t, svc.SellProduct(product.ID, client.ID, 3))

	var updated models.Product
	require.NoError(t, db.First(&updated, "id = ?", product.ID).Error)
	assert.Equal(t, 0, updated.Stock)

	// 售罄后在有库存列表中不再出现
	_, err := NewProductService(db).GetAllProducts(1, 10)
	assert.IsType(t, &utils.NotFoundError{}, err)
}

func TestSellProductNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewSaleService(db)
	client := createClient(t, db, "Juan", 1001, "3001112233", "juan@example.com")

	err := svc.SellProduct("11111111-1111-1111-1111-111111111111", client.ID, 1)
	assert.IsType(t, &utils.NotFoundError{}, err)
}

func TestSellProductClientNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewSaleService(db)
	brand := createBrand(t, db, "Acme")
	product := createProduct(t, db, "Widget", brand.ID, 5, 100, 80)

	err := svc.SellProduct(product.ID, "11111111-1111-1111-1111-111111111111", 1)
	assert.IsType(t, &utils.NotFoundError{}, err)

	// 客户校验在扣减之前，库存保持不变
	var unchanged models.Product
	require.NoError(t, db.First(&unchanged, "id = ?", product.ID).Error)
	assert.Equal(t, 5, unchanged.Stock)
}
