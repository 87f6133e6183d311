package images

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/showforge/episodic/internal/middleware"
	"github.com/showforge/episodic/internal/utils"
)

type Controller struct {
	svc *Service
}

func NewController(svc *Service) *Controller {
	return &Controller{svc: svc}
}

func (c *Controller) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Zlog.Warn("invalid image payload", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":     "bad_request",
			"message":   err.Error(),
			"timestamp": time.Now().UTC(),
		})
		return
	}

	hash, err := c.svc.Register(ctx.Request.Context(), &req)
	if err != nil {
		utils.Zlog.Error("image registration failed", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":     "image_error",
			"message":   err.Error(),
			"timestamp": time.Now().UTC(),
		})
		return
	}

	ctx.JSON(http.StatusCreated, RegisterResponse{
		RequestID: middleware.GetRequestID(ctx),
		Hash:      hash,
		URL:       req.URL,
	})
}

func (c *Controller) Lookup(ctx *gin.Context) {
	hash := ctx.Param("hash")

	url, found, err := c.svc.Lookup(ctx.Request.Context(), hash)
	if err != nil {
		utils.Zlog.Error("image lookup failed", zap.String("hash", hash), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":     "image_error",
			"message":   err.Error(),
			"timestamp": time.Now().UTC(),
		})
		return
	}
	if !found {
		ctx.JSON(http.StatusNotFound, gin.H{
			"error":     "not_found",
			"message":   "no asset registered for this hash",
			"timestamp": time.Now().UTC(),
		})
		return
	}

	ctx.JSON(http.StatusOK, LookupResponse{
		RequestID: middleware.GetRequestID(ctx),
		Hash:      hash,
		URL:       url,
	})
}
