package feedback

import (
	"github.com/gin-gonic/gin"

	"github.com/showforge/episodic/internal/store"
)

func RegisterRoutes(rg *gin.RouterGroup, episodes *store.EpisodeStore, feedback *store.FeedbackStore) {
	svc := NewService(episodes, feedback)
	ctrl := NewController(svc)
	rg.POST("/feedback", ctrl.Submit)
}
