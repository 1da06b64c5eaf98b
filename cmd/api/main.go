package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/levelupglow/salon-scheduler/internal/cache"
	"github.com/levelupglow/salon-scheduler/internal/config"
	dbpkg "github.com/levelupglow/salon-scheduler/internal/db"
	"github.com/levelupglow/salon-scheduler/internal/logger"
	"github.com/levelupglow/salon-scheduler/internal/middleware"
	"github.com/levelupglow/salon-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()

	logger.Init(cfg.Env)
	defer logger.Sync()

	db := dbpkg.NewDB(cfg)
	rdb := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg)

	logger.Get().Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Get().Fatal("failed to start server", zap.Error(err))
	}
}
