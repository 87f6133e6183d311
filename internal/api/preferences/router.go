package preferences

import (
	"github.com/gin-gonic/gin"

	"github.com/showforge/episodic/internal/store"
)

func RegisterRoutes(rg *gin.RouterGroup, prefs *store.PreferenceStore) {
	svc := NewService(prefs)
	ctrl := NewController(svc)

	grp := rg.Group("/preferences")
	grp.GET("/:userId", ctrl.Get)
	grp.PUT("/:userId", ctrl.Update)
}
