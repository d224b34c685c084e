package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PlanoriaApp/appointment-scheduler/internal/config"
	dbpkg "github.com/PlanoriaApp/appointment-scheduler/internal/db"
	"github.com/PlanoriaApp/appointment-scheduler/internal/infra/cache"
	"github.com/PlanoriaApp/appointment-scheduler/internal/middleware"
	"github.com/PlanoriaApp/appointment-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	statsCache, err := cache.New(cfg.RedisURL)
	if err != nil {
		// The API stays up without Redis; caches just miss.
		log.Printf("redis unavailable, running without cache: %v", err)
		statsCache = nil
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, statsCache)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
