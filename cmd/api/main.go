package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/AutoEcolePlanner/lesson-scheduler/internal/config"
	dbpkg "github.com/AutoEcolePlanner/lesson-scheduler/internal/db"
	"github.com/AutoEcolePlanner/lesson-scheduler/internal/logging"
	"github.com/AutoEcolePlanner/lesson-scheduler/internal/middleware"
	"github.com/AutoEcolePlanner/lesson-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()

	log := logging.New(cfg.Env)
	defer log.Sync()

	db := dbpkg.NewDB(cfg)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, log)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
