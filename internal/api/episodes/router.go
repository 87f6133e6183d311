package episodes

import (
	"github.com/gin-gonic/gin"

	"github.com/showforge/episodic/internal/generation"
	"github.com/showforge/episodic/internal/store"
)

func RegisterRoutes(rg *gin.RouterGroup, orch *generation.Orchestrator, episodes *store.EpisodeStore, prefs *store.PreferenceStore, audit *store.AuditSaver) {
	svc := NewService(orch, episodes, prefs, audit)
	ctrl := NewController(svc)

	grp := rg.Group("/episodes")
	grp.POST("", ctrl.Create)
	grp.GET("", ctrl.List)
	grp.GET("/:id", ctrl.Get)
	grp.PUT("/:id", ctrl.Update)
	grp.POST("/:id/lock", ctrl.Lock)
	grp.POST("/:id/unlock", ctrl.Unlock)
}
