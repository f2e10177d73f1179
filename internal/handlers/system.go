package handlers

import (
	"net/http"

	"github.com/Tanmandal/Short-URL/internal/database"
	"github.com/gin-gonic/gin"
)

// Welcome handles GET /
func Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to URL Shortener"})
}

// HealthCheck handles GET /health. The store being unreachable degrades the
// whole service, reported as 404.
func HealthCheck(c *gin.Context) {
	dbStatus := "ok"
	redisStatus := "ok"

	if err := database.Ping(); err != nil {
		dbStatus = "error"
	}

	if database.Redis != nil {
		if _, err := database.Redis.Ping(database.Ctx).Result(); err != nil {
			redisStatus = "error"
		}
	} else {
		redisStatus = "not configured"
	}

	if dbStatus != "ok" {
		c.JSON(http.StatusNotFound, gin.H{
			"status": "degraded",
			"checks": gin.H{"database": dbStatus, "redis": redisStatus},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "URL Shortener is running",
		"checks":  gin.H{"database": dbStatus, "redis": redisStatus},
	})
}
