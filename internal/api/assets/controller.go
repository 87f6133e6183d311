package assets

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/showforge/episodic/internal/generation"
	"github.com/showforge/episodic/internal/middleware"
	"github.com/showforge/episodic/internal/store"
	"github.com/showforge/episodic/internal/utils"
)

type Controller struct {
	svc *Service
}

func NewController(svc *Service) *Controller {
	return &Controller{svc: svc}
}

// create returns the handler for one asset kind.
func (c *Controller) create(kind Kind) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req Request
		if err := ctx.ShouldBindJSON(&req); err != nil {
			utils.Zlog.Warn("invalid asset payload", zap.String("kind", string(kind)), zap.Error(err))
			ctx.JSON(http.StatusBadRequest, gin.H{
				"error":     "bad_request",
				"message":   err.Error(),
				"timestamp": time.Now().UTC(),
			})
			return
		}

		requestID := middleware.GetRequestID(ctx)
		res, err := c.svc.Generate(ctx.Request.Context(), requestID, kind, &req)
		if err != nil {
			status, label := assetStatus(err)
			utils.Zlog.Warn("asset generation failed",
				zap.String("request_id", requestID),
				zap.String("kind", string(kind)),
				zap.String("episode_id", req.EpisodeID),
				zap.Error(err))
			ctx.JSON(status, gin.H{
				"error":     label,
				"message":   err.Error(),
				"timestamp": time.Now().UTC(),
			})
			return
		}

		res.RequestID = requestID
		ctx.JSON(http.StatusOK, res)
	}
}

func assetStatus(err error) (int, string) {
	var totalErr *generation.TotalFailureError
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, generation.ErrUnknownProvider):
		return http.StatusBadRequest, "bad_request"
	case errors.As(err, &totalErr):
		return http.StatusBadGateway, "generation_failed"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "generation_timeout"
	default:
		return http.StatusInternalServerError, "asset_error"
	}
}
