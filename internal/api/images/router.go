package images

import (
	"github.com/gin-gonic/gin"

	"github.com/showforge/episodic/internal/cache"
)

func RegisterRoutes(rg *gin.RouterGroup, imgCache *cache.ImageCache) {
	svc := NewService(imgCache)
	ctrl := NewController(svc)

	grp := rg.Group("/images")
	grp.POST("", ctrl.Register)
	grp.GET("/:hash", ctrl.Lookup)
}
