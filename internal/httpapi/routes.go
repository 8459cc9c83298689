// Package httpapi exposes the simulator over JSON.
package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/danielpatrickdp/shotsim/internal/cache"
)

// SetupRoutes configures all API routes.
func SetupRoutes(router *gin.Engine, memo *cache.Memo) {
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Content-Length", "Accept"},
		ExposeHeaders:   []string{"Content-Length", "X-Result-Key"},
		MaxAge:          12 * time.Hour,
	}))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", HealthCheck(memo))
		v1.GET("/presets", ListPresets)

		v1.POST("/simulate", Simulate(memo))
		v1.GET("/simulate/:key", GetResult(memo))
	}
}
