package generate

import (
	"github.com/gin-gonic/gin"

	"github.com/showforge/episodic/internal/generation"
	"github.com/showforge/episodic/internal/store"
)

func RegisterRoutes(rg *gin.RouterGroup, orch *generation.Orchestrator, audit *store.AuditSaver) {
	svc := NewService(orch, audit)
	ctrl := NewController(svc)
	rg.POST("/generate", ctrl.Generate)
}
