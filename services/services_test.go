package services

import (
	"testing"

	"github.com/AnderssonCordoba/PruebaDrenvioV2/database"
	"github.com/AnderssonCordoba/PruebaDrenvioV2/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 创建内存数据库并迁移表结构
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	// 内存库只允许单连接，避免连接池拿到不同的空库
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

// createBrand 测试辅助：直接插入品牌
func createBrand(t *testing.T, db *gorm.DB, name string) *models.Brand {
	t.Helper()
	brand := models.Brand{Name: name}
	require.NoError(t, db.Create(&brand).Error)
	return &brand
}

// createProduct 测试辅助：直接插入商品
func createProduct(t *testing.T, db *gorm.DB, name, brandID string, stock int, price, specialPrice float64) *models.Product {
	t.Helper()
	product := models.Product{
		Name:         name,
		BrandID:      brandID,
		Stock:        stock,
		Price:        price,
		SpecialPrice: specialPrice,
	}
	require.NoError(t, db.Create(&product).Error)
	return &product
}

// createClient 测试辅助：直接插入客户
func createClient(t *testing.T, db *gorm.DB, name string, identification int64, phone, email string) *models.Client {
	t.Helper()
	client := models.Client{
		Name:           name,
		Identification: identification,
		Phone:          phone,
		Email:          email,
	}
	require.NoError(t, db.Create(&client).Error)
	return &client
}
