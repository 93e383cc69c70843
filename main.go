package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	v1 "github.com/limayamil/flowsync/api/v1"
	"github.com/limayamil/flowsync/config"
	"github.com/limayamil/flowsync/database"
	"github.com/limayamil/flowsync/lib/storage"
	"github.com/limayamil/flowsync/middleware"
)

func main() {
	// Load .env before anything reads the environment
	config.LoadEnv()

	// Set Gin mode
	gin.SetMode(config.GetEnv("GIN_MODE", gin.ReleaseMode))

	// Database connection + migrations + template seed
	database.Initialize()
	database.Seed()

	// Blob storage for project files
	blobs, err := storage.NewLocalStore(config.GetEnv("STORAGE_DIR", "./data/files"))
	if err != nil {
		log.Fatalf("Failed to initialize blob storage: %v", err)
	}

	// Initialize router
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Per-session rate limiting (process-local by design)
	limiter := middleware.NewRateLimiter(
		time.Duration(config.GetEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60))*time.Second,
		config.GetEnvInt("RATE_LIMIT_MAX_REQUESTS", 120),
		config.GetEnvInt("RATE_LIMIT_MAX_KEYS", 10000),
	)
	router.Use(middleware.RateLimitMiddleware(limiter))

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	v1.RegisterRoutes(apiV1, blobs)

	// Get port from environment or use default
	port := config.GetEnv("PORT", "8080")

	// Start server
	log.Printf("🚀 FlowSync API starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
