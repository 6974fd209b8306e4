package main

import (
	"github.com/AnderssonCordoba/PruebaDrenvioV2/config"
	"github.com/AnderssonCordoba/PruebaDrenvioV2/database"
	"github.com/AnderssonCordoba/PruebaDrenvioV2/routes"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// 加载配置
	cfg := config.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	// 设置Gin模式
	gin.SetMode(cfg.Server.Mode)

	// 初始化数据库
	db, err := database.Init(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize database")
	}

	// 设置路由
	r := routes.SetupRoutes(db, log)

	log.WithField("port", cfg.Server.Port).Info("server starting")
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.WithError(err).Fatal("failed to start server")
	}
}
