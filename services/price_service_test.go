package services

import (
	"testing"

	"github.com/AnderssonCordoba/PruebaDrenvioV2/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePricePolarity(t *testing.T) {
	// 既有极性：特殊品牌客户拿price，其余客户拿specialPrice
	db := newTestDB(t)
	svc := NewPriceService(db)
	brand := createBrand(t, db, "Acme")
	createProduct(t, db, "Widget", brand.ID, 5, 100, 80)

	special := createClient(t, db, "Juan", 1001, "3001112233", "juan@example.com")
	require.NoError(t, db.Model(special).Association("SpecialBrands").Append(brand))
	regular := createClient(t, db, "Pedro", 1002, "3009998877", "pedro@example.com")

	price, err := svc.ResolvePrice(special.ID, "Widget")
	require.NoError(t, err)
	assert.Equal(t, float64(100), price)

	price, err = svc.ResolvePrice(regular.ID, "Widget")
	require.NoError(t, err)
	assert.Equal(t, float64(80), price)
}

func TestResolvePriceNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewPriceService(db)
	brand := createBrand(t, db, "Acme")
	createProduct(t, db, "Widget", brand.ID, 5, 100, 80)
	client := createClient(t, db, "Juan", 1001, "3001112233", "juan@example.com")

	_, err := svc.ResolvePrice("11111111-1111-1111-1111-111111111111", "Widget")
	assert.IsType(t, &utils.NotFoundError{}, err)

	_, err = svc.ResolvePrice(client.ID, "NoSuchProduct")
	assert.IsType(t, &utils.NotFoundError{}, err)
}
