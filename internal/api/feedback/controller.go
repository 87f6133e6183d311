package feedback

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

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

func (c *Controller) Submit(ctx *gin.Context) {
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Zlog.Warn("invalid /feedback payload", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":     "bad_request",
			"message":   err.Error(),
			"timestamp": time.Now().UTC(),
		})
		return
	}

	if err := c.svc.SubmitFeedback(ctx.Request.Context(), &req); err != nil {
		utils.Zlog.Warn("feedback submit failed", zap.Error(err))
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{
				"error":     "not_found",
				"message":   "episode not found",
				"timestamp": time.Now().UTC(),
			})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":     "feedback_error",
			"message":   err.Error(),
			"timestamp": time.Now().UTC(),
		})
		return
	}

	ctx.JSON(http.StatusOK, Response{
		RequestID: middleware.GetRequestID(ctx),
		Success:   true,
	})
}
