package main

import (
	"log"
	"net/http"
	"os"

	"food-marketplace-api/config"
	"food-marketplace-api/handlers"
	"food-marketplace-api/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	config.Load()

	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize database
	config.InitDB()

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint — must stay ahead of the API routes
	r.GET("/health", handlers.Health)

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Food Marketplace API",
			"version": "1.0.0",
			"endpoints": gin.H{
				"health":      "/health",
				"auth":        "/api/auth",
				"restaurant":  "/api/restaurant",
				"restaurants": "/api/restaurants",
				"orders":      "/api/orders",
			},
		})
	})

	// Register all routes
	routes.SetupRoutes(r)

	// JSON 404 fallback
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Not Found",
			"message": "Cannot " + c.Request.Method + " " + c.Request.URL.Path,
		})
	})

	// Start server
	port := config.Port()
	log.Printf("Server running on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
