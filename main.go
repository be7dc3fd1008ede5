package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cornerstore/api/internal/config"
	"github.com/cornerstore/api/internal/db"
	"github.com/cornerstore/api/internal/logger"
	"github.com/cornerstore/api/internal/routes"
)

func main() {

	cfg := config.Load()

	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	db.Init(cfg)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())

	routes.Register(r)

	logger.Log.Info("Starting server", zap.String("port", cfg.Port))

	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Log.Fatal("Server stopped", zap.Error(err))
	}
}
