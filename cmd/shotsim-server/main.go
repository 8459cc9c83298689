package main

import (
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/danielpatrickdp/shotsim/internal/cache"
	"github.com/danielpatrickdp/shotsim/internal/httpapi"
	"github.com/danielpatrickdp/shotsim/internal/outcome"
	"github.com/danielpatrickdp/shotsim/internal/sim"
	"github.com/danielpatrickdp/shotsim/internal/trajectory"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	addr := envOr("SHOTSIM_ADDR", ":8080")
	size, err := strconv.Atoi(envOr("SHOTSIM_CACHE_SIZE", strconv.Itoa(cache.DefaultSize)))
	if err != nil {
		log.Fatalf("invalid SHOTSIM_CACHE_SIZE: %v", err)
	}

	simulator := sim.NewSimulator(trajectory.DefaultPhysics(), outcome.DefaultConfig())
	memo, err := cache.NewMemo(simulator, size)
	if err != nil {
		log.Fatalf("Failed to create result cache: %v", err)
	}

	if envOr("SHOTSIM_ENV", "development") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	httpapi.SetupRoutes(router, memo)

	log.Printf("Starting shot simulator on %s (cache %d)", addr, size)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
