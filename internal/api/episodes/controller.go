package episodes

import (
	"context"
	"errors"
	"net/http"
	"strconv"
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

func (c *Controller) Create(ctx *gin.Context) {
	var req CreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	requestID := middleware.GetRequestID(ctx)
	ep, meta, err := c.svc.Create(ctx.Request.Context(), requestID, &req)
	if err != nil {
		status, label := createStatus(err)
		utils.Zlog.Warn("episode creation failed",
			zap.String("request_id", requestID),
			zap.String("series", req.Series),
			zap.Error(err))
		ctx.JSON(status, gin.H{
			"error":     label,
			"message":   err.Error(),
			"timestamp": time.Now().UTC(),
		})
		return
	}

	ctx.JSON(http.StatusCreated, CreateResponse{
		RequestID: requestID,
		Episode:   ep,
		Metadata:  meta,
	})
}

func (c *Controller) Get(ctx *gin.Context) {
	ep, err := c.svc.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		notFoundOrInternal(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, ep)
}

func (c *Controller) List(ctx *gin.Context) {
	series := ctx.Query("series")
	if series == "" {
		badRequest(ctx, errors.New("series query parameter is required"))
		return
	}

	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	eps, err := c.svc.List(ctx.Request.Context(), series, limit)
	if err != nil {
		utils.Zlog.Error("episode list failed", zap.String("series", series), zap.Error(err))
		internalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, ListResponse{Series: series, Episodes: eps, Count: len(eps)})
}

func (c *Controller) Update(ctx *gin.Context) {
	var req UpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	ep, err := c.svc.UpdateContent(ctx.Request.Context(), ctx.Param("id"), req.Content)
	if err != nil {
		if errors.Is(err, store.ErrEpisodeLocked) {
			ctx.JSON(http.StatusConflict, gin.H{
				"error":     "episode_locked",
				"message":   err.Error(),
				"timestamp": time.Now().UTC(),
			})
			return
		}
		notFoundOrInternal(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, ep)
}

func (c *Controller) Lock(ctx *gin.Context) {
	c.setLocked(ctx, true)
}

func (c *Controller) Unlock(ctx *gin.Context) {
	c.setLocked(ctx, false)
}

func (c *Controller) setLocked(ctx *gin.Context, locked bool) {
	ep, err := c.svc.SetLocked(ctx.Request.Context(), ctx.Param("id"), locked)
	if err != nil {
		notFoundOrInternal(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, ep)
}

func createStatus(err error) (int, string) {
	var totalErr *generation.TotalFailureError
	switch {
	case errors.Is(err, generation.ErrUnknownProvider):
		return http.StatusBadRequest, "bad_request"
	case errors.As(err, &totalErr):
		return http.StatusBadGateway, "generation_failed"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "generation_timeout"
	default:
		return http.StatusInternalServerError, "episode_error"
	}
}

func badRequest(ctx *gin.Context, err error) {
	utils.Zlog.Warn("invalid episode payload", zap.Error(err))
	ctx.JSON(http.StatusBadRequest, gin.H{
		"error":     "bad_request",
		"message":   err.Error(),
		"timestamp": time.Now().UTC(),
	})
}

func notFoundOrInternal(ctx *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{
			"error":     "not_found",
			"message":   "episode not found",
			"timestamp": time.Now().UTC(),
		})
		return
	}
	internalError(ctx, err)
}

func internalError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusInternalServerError, gin.H{
		"error":     "episode_error",
		"message":   err.Error(),
		"timestamp": time.Now().UTC(),
	})
}
