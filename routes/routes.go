package routes

import (
	"github.com/AnderssonCordoba/PruebaDrenvioV2/handlers"
	"github.com/AnderssonCordoba/PruebaDrenvioV2/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupRoutes 设置路由，中间件须在注册路由前挂载
func SetupRoutes(db *gorm.DB, log *logrus.Logger) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())

	// CORS配置
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 创建控制器实例
	brandHandler := handlers.NewBrandHandler(db)
	productHandler := handlers.NewProductHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	saleHandler := handlers.NewSaleHandler(db)
	priceHandler := handlers.NewPriceHandler(db)

	// 品牌相关路由
	brands := r.Group("/brands")
	{
		brands.GET("", brandHandler.GetBrands)
		brands.GET("/:id", brandHandler.GetBrand)
		brands.POST("", brandHandler.CreateBrand)
		brands.PUT("/:id", brandHandler.UpdateBrand)
		brands.DELETE("/:id", brandHandler.DeleteBrand)
		brands.GET("/:id/products", brandHandler.GetBrandProducts)
	}

	// 商品相关路由
	products := r.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/:id", productHandler.GetProduct)
		products.POST("", productHandler.CreateProduct)
		products.PUT("/:id", productHandler.UpdateProduct)
		products.DELETE("/:id", productHandler.DeleteProduct)
	}

	// 客户相关路由
	clients := r.Group("/clients")
	{
		clients.GET("", clientHandler.GetClients)
		clients.GET("/:identification", clientHandler.GetClient)
		clients.POST("", clientHandler.CreateClient)
		clients.PUT("/:identification", clientHandler.UpdateClient)
		clients.DELETE("/:identification", clientHandler.DeleteClient)
		clients.POST("/:identification/brands", clientHandler.AddBrandToClient)
	}

	// 销售与价格查询路由
	r.POST("/sale", saleHandler.SellProduct)
	r.GET("/price/:user_id/:nombre_producto", priceHandler.GetPrice)

	return r
}
