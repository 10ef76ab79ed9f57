package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mediflowhq/mediflow/internal/config"
	dbpkg "github.com/mediflowhq/mediflow/internal/db"
	"github.com/mediflowhq/mediflow/internal/logger"
	"github.com/mediflowhq/mediflow/internal/middleware"
	"github.com/mediflowhq/mediflow/internal/routes"
)

func main() {

	cfg := config.Load()
	log := logger.New()

	db, err := dbpkg.Connect(context.Background(), cfg)
	if err != nil {
		log.Fatal("failed to connect to mongodb", "error", err)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterBookingRoutes(r, db, cfg, log)

	log.Info("booking service running", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", "error", err)
	}
}
