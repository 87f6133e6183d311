package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/showforge/episodic/internal/config"
	"github.com/showforge/episodic/internal/controllers"
)

// SetupSystemRoutes exposes service metadata and prometheus metrics.
func SetupSystemRoutes(router *gin.Engine, cfg *config.Config) {
	systemController := controllers.NewSystemController(cfg)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/v1/api/status", systemController.Status)
	router.GET("/v1/api/info", systemController.Info)
}

// Setup404Handler configures the 404 handler
func Setup404Handler(router *gin.Engine) {
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Not Found",
			"message": "The requested resource was not found",
			"path":    c.Request.URL.Path,
		})
	})
}
