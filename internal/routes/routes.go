package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/showforge/episodic/internal/api/assets"
	"github.com/showforge/episodic/internal/api/episodes"
	"github.com/showforge/episodic/internal/api/feedback"
	"github.com/showforge/episodic/internal/api/generate"
	"github.com/showforge/episodic/internal/api/images"
	"github.com/showforge/episodic/internal/api/preferences"
	"github.com/showforge/episodic/internal/cache"
	"github.com/showforge/episodic/internal/config"
	"github.com/showforge/episodic/internal/generation"
	"github.com/showforge/episodic/internal/loaders"
	"github.com/showforge/episodic/internal/middleware"
	"github.com/showforge/episodic/internal/store"
)

// Dependencies carries everything the route tree needs.
type Dependencies struct {
	Cfg          *config.Config
	DB           *loaders.PostgresClient
	Redis        *loaders.RedisClient
	Orchestrator *generation.Orchestrator
	Episodes     *store.EpisodeStore
	Feedback     *store.FeedbackStore
	Prefs        *store.PreferenceStore
	Audit        *store.AuditSaver
	Images       *cache.ImageCache
}

// SetupRoutes configures all application routes
func SetupRoutes(router *gin.Engine, deps Dependencies) {
	// Apply global middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(deps.Cfg.AllowedOrigins))
	router.Use(middleware.RequestID())

	// Setup route groups
	SetupHealthRoutes(router, deps.DB, deps.Redis)
	SetupSystemRoutes(router, deps.Cfg)

	v1 := router.Group("/v1/api")
	generate.RegisterRoutes(v1, deps.Orchestrator, deps.Audit)
	episodes.RegisterRoutes(v1, deps.Orchestrator, deps.Episodes, deps.Prefs, deps.Audit)
	assets.RegisterRoutes(v1, deps.Orchestrator, deps.Episodes, deps.Audit)
	images.RegisterRoutes(v1, deps.Images)
	feedback.RegisterRoutes(v1, deps.Episodes, deps.Feedback)
	preferences.RegisterRoutes(v1, deps.Prefs)

	Setup404Handler(router)
}
