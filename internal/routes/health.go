package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/showforge/episodic/internal/controllers"
	"github.com/showforge/episodic/internal/loaders"
)

// SetupHealthRoutes configures health check endpoints
func SetupHealthRoutes(router *gin.Engine, db *loaders.PostgresClient, redis *loaders.RedisClient) {
	healthController := controllers.NewHealthController(db, redis)

	// Root endpoint
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	// Health check endpoints
	router.GET("/health", healthController.HealthCheck)
	router.GET("/health/live", healthController.Liveness)
	router.GET("/health/ready", healthController.Readiness)
}
