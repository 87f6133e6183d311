package assets

import (
	"github.com/gin-gonic/gin"

	"github.com/showforge/episodic/internal/generation"
	"github.com/showforge/episodic/internal/store"
)

func RegisterRoutes(rg *gin.RouterGroup, orch *generation.Orchestrator, episodes *store.EpisodeStore, audit *store.AuditSaver) {
	svc := NewService(orch, episodes, audit)
	ctrl := NewController(svc)

	grp := rg.Group("/assets")
	grp.POST("/storyboard", ctrl.create(KindStoryboard))
	grp.POST("/props", ctrl.create(KindProps))
	grp.POST("/locations", ctrl.create(KindLocations))
	grp.POST("/casting", ctrl.create(KindCasting))
	grp.POST("/marketing", ctrl.create(KindMarketing))
}
