package preferences

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/showforge/episodic/internal/store"
	"github.com/showforge/episodic/internal/utils"
)

type Controller struct {
	svc *Service
}

func NewController(svc *Service) *Controller {
	return &Controller{svc: svc}
}

func (c *Controller) Get(ctx *gin.Context) {
	userID := ctx.Param("userId")

	prefs, err := c.svc.Get(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{
				"error":     "not_found",
				"message":   "no preferences stored for this user",
				"timestamp": time.Now().UTC(),
			})
			return
		}
		utils.Zlog.Error("preferences read failed", zap.String("user_id", userID), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":     "preferences_error",
			"message":   err.Error(),
			"timestamp": time.Now().UTC(),
		})
		return
	}

	ctx.JSON(http.StatusOK, prefs)
}

func (c *Controller) Update(ctx *gin.Context) {
	userID := ctx.Param("userId")

	var req UpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Zlog.Warn("invalid preferences payload", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":     "bad_request",
			"message":   err.Error(),
			"timestamp": time.Now().UTC(),
		})
		return
	}

	prefs, err := c.svc.Update(ctx.Request.Context(), userID, &req)
	if err != nil {
		utils.Zlog.Error("preferences update failed", zap.String("user_id", userID), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":     "preferences_error",
			"message":   err.Error(),
			"timestamp": time.Now().UTC(),
		})
		return
	}

	ctx.JSON(http.StatusOK, prefs)
}
