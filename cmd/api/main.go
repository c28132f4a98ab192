package main

import (
	stdlog "log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/CareBridgeServices/care-scheduler/internal/cache"
	"github.com/CareBridgeServices/care-scheduler/internal/config"
	dbpkg "github.com/CareBridgeServices/care-scheduler/internal/db"
	"github.com/CareBridgeServices/care-scheduler/internal/logger"
	"github.com/CareBridgeServices/care-scheduler/internal/middleware"
	"github.com/CareBridgeServices/care-scheduler/internal/routes"
	"github.com/CareBridgeServices/care-scheduler/internal/timezone"
)

func main() {

	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		stdlog.Fatalf("failed to build logger: %v", err)
	}
	defer log.Sync()

	if !timezone.IsValid(cfg.Timezone) {
		log.Warn("invalid TIMEZONE, falling back",
			zap.String("timezone", cfg.Timezone),
			zap.String("fallback", timezone.DefaultTimezone),
		)
		cfg.Timezone = timezone.DefaultTimezone
	}

	db := dbpkg.NewDB(cfg, log)
	daysCch := cache.New(cfg.RedisAddr)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, log, daysCch)

	log.Info("server listening", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
