package main

import (
	"net/http"
	"os"

	"food-ordering-api/config"
	"food-ordering-api/handlers"
	"food-ordering-api/logger"
	"food-ordering-api/notify"
	"food-ordering-api/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	log := logger.New("food-ordering-api")

	// Load settings and initialize database
	config.Load()
	config.InitDB()

	// Fire-and-forget order event notifier
	notifier := notify.New(
		config.GetEnvInt("NOTIFY_QUEUE_SIZE", 256),
		config.GetEnvInt("NOTIFY_WORKERS", 4),
		log,
	)
	defer notifier.Close()

	handlers.Setup(config.DB, notifier, log)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Food Ordering Platform API",
			"version": "1.0.0",
		})
	})

	// Register all routes
	routes.SetupRoutes(r)

	// Start server
	port := config.GetEnv("PORT", "8080")
	log.Info("server_started", "listening", "port", port)
	if err := r.Run(":" + port); err != nil {
		log.Error("server_failed", "failed to start server", err)
		os.Exit(1)
	}
}
