package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/showforge/episodic/internal/cache"
	"github.com/showforge/episodic/internal/config"
	"github.com/showforge/episodic/internal/generation"
	"github.com/showforge/episodic/internal/loaders"
	"github.com/showforge/episodic/internal/routes"
	"github.com/showforge/episodic/internal/store"
	"github.com/showforge/episodic/internal/utils"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		fmt.Println("Warning: Error loading .env file", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	cleanup := utils.InitLogger(cfg)
	defer cleanup()

	utils.Zlog.Info("Starting application",
		zap.String("service", cfg.ServiceName),
		zap.String("environment", cfg.Environment),
		zap.String("port", cfg.ServerPort))

	db, err := loaders.NewPostgresClient(cfg.DatabaseURL, cfg.WorkerCount)
	if err != nil {
		utils.Zlog.Error("Failed to create database client", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			utils.Zlog.Error("Error closing database connection", zap.Error(err))
		}
	}()

	rdb, err := loaders.NewRedisClient(cfg.RedisURL)
	if err != nil {
		utils.Zlog.Error("Failed to create redis client", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			utils.Zlog.Error("Error closing redis connection", zap.Error(err))
		}
	}()

	orch, err := buildOrchestrator(cfg)
	if err != nil {
		utils.Zlog.Error("Failed to build generation stack", zap.Error(err))
		os.Exit(1)
	}

	pool := db.GetPool()
	audit := store.NewAuditSaver(store.NewAuditStore(pool), utils.Zlog)
	defer audit.Close()

	imageStore := store.NewImageStore(pool)

	deps := routes.Dependencies{
		Cfg:          cfg,
		DB:           db,
		Redis:        rdb,
		Orchestrator: orch,
		Episodes:     store.NewEpisodeStore(pool),
		Feedback:     store.NewFeedbackStore(pool),
		Prefs:        store.NewPreferenceStore(pool),
		Audit:        audit,
		Images:       cache.NewImageCache(rdb, imageStore, utils.Zlog),
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	routes.SetupRoutes(router, deps)

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		utils.Zlog.Info("Starting HTTP server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Zlog.Error("Failed to start server", zap.Error(err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.Zlog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		utils.Zlog.Error("Server forced to shutdown", zap.Error(err))
		os.Exit(1)
	}

	utils.Zlog.Info("Server exited")
}

// buildOrchestrator assembles the routing stack: engine registry, selector,
// and one executor per provider.
func buildOrchestrator(cfg *config.Config) (*generation.Orchestrator, error) {
	defaultProvider, err := generation.ParseProviderID(cfg.DefaultProvider)
	if err != nil {
		return nil, fmt.Errorf("DEFAULT_PROVIDER: %w", err)
	}

	registry := generation.DefaultEngineRegistry()
	selector := generation.NewSelector(registry, defaultProvider)

	timeout := time.Duration(cfg.ProviderTimeoutSecs) * time.Second

	openaiExec, err := generation.NewOpenAIExecutor(generation.OpenAIConfig{
		APIKey:  cfg.OpenAIAPIKey,
		BaseURL: cfg.OpenAIBaseURL,
		Model:   cfg.OpenAIModel,
		Timeout: timeout,
	}, utils.Zlog)
	if err != nil {
		return nil, err
	}

	geminiExec, err := generation.NewGeminiExecutor(context.Background(), generation.GeminiConfig{
		APIKeys:        cfg.GeminiAPIKeys,
		FallbackModels: cfg.GeminiFallbackModels,
		Timeout:        timeout,
	}, utils.Zlog)
	if err != nil {
		return nil, err
	}

	return generation.NewOrchestrator(selector, utils.Zlog, cfg.MaxConcurrency, openaiExec, geminiExec)
}
