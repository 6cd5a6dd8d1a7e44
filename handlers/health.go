package handlers

import (
	"net/http"
	"time"

	"food-marketplace-api/config"

	"github.com/gin-gonic/gin"
)

var startTime = time.Now()

// Health reports liveness and store connectivity
func Health(c *gin.Context) {
	database := "disconnected"
	if config.DB != nil {
		if sqlDB, err := config.DB.DB(); err == nil && sqlDB.Ping() == nil {
			database = "connected"
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":        true,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(startTime).Seconds(),
		"database":  database,
	})
}
