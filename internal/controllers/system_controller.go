package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/showforge/episodic/internal/config"
)

type SystemController struct {
	cfg       *config.Config
	startedAt time.Time
}

func NewSystemController(cfg *config.Config) *SystemController {
	return &SystemController{cfg: cfg, startedAt: time.Now()}
}

// Status godoc
// @Summary Get system status
// @Description Get current system status information
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/status [get]
func (s *SystemController) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":     s.cfg.ServiceName,
		"version":     "1.0.0",
		"environment": s.cfg.Environment,
		"hostname":    s.cfg.Hostname,
		"uptime":      time.Since(s.startedAt).Round(time.Second).String(),
		"timestamp":   time.Now().UTC(),
	})
}

// Info godoc
// @Summary Get system information
// @Description Get detailed system information
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/info [get]
func (s *SystemController) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":          s.cfg.ServiceName,
		"version":          "1.0.0",
		"environment":      s.cfg.Environment,
		"hostname":         s.cfg.Hostname,
		"debug":            s.cfg.Debug,
		"log_level":        s.cfg.LogLevel,
		"default_provider": s.cfg.DefaultProvider,
		"timestamp":        time.Now().UTC(),
	})
}
