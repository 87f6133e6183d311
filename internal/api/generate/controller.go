package generate

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/showforge/episodic/internal/generation"
	"github.com/showforge/episodic/internal/middleware"
	"github.com/showforge/episodic/internal/utils"
)

type Controller struct {
	svc *Service
}

func NewController(svc *Service) *Controller {
	return &Controller{svc: svc}
}

func (c *Controller) Generate(ctx *gin.Context) {
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Zlog.Warn("invalid /generate payload", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":     "bad_request",
			"message":   err.Error(),
			"timestamp": time.Now().UTC(),
		})
		return
	}

	requestID := middleware.GetRequestID(ctx)
	res, err := c.svc.Generate(ctx.Request.Context(), requestID, &req)
	if err != nil {
		status, label := statusForError(err)
		utils.Zlog.Warn("generation request failed",
			zap.String("request_id", requestID),
			zap.Error(err))
		ctx.JSON(status, gin.H{
			"error":     label,
			"message":   err.Error(),
			"timestamp": time.Now().UTC(),
		})
		return
	}

	ctx.JSON(http.StatusOK, Response{
		RequestID: requestID,
		Content:   res.Content,
		Provider:  res.Provider,
		Model:     res.Model,
		Metadata:  res.Metadata,
	})
}

func statusForError(err error) (int, string) {
	var totalErr *generation.TotalFailureError
	switch {
	case errors.Is(err, generation.ErrUnknownProvider):
		return http.StatusBadRequest, "bad_request"
	case errors.As(err, &totalErr):
		return http.StatusBadGateway, "generation_failed"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "generation_timeout"
	default:
		return http.StatusInternalServerError, "generation_error"
	}
}
