package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/LirazGal/youtube-ai-tools-api/internal/config"
	"github.com/LirazGal/youtube-ai-tools-api/internal/handler"
	"github.com/LirazGal/youtube-ai-tools-api/internal/service"
	"github.com/LirazGal/youtube-ai-tools-api/internal/service/youtube"
	"github.com/LirazGal/youtube-ai-tools-api/internal/validation"
	"github.com/LirazGal/youtube-ai-tools-api/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Server.Environment); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	youtubeClient, err := youtube.NewClient(ctx, cfg.YouTube.APIKey)
	if err != nil {
		return fmt.Errorf("init youtube client: %w", err)
	}

	aggregator := service.NewAggregator(youtubeClient, cfg)
	normalizer := validation.New(cfg.Filters)

	videoHandler := handler.NewVideoHandler(aggregator, normalizer, cfg)
	healthHandler := handler.NewHealthHandler(cfg.YouTube.APIKey != "")

	router := handler.SetupRouter(cfg, videoHandler, healthHandler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Log.Info("Server starting",
			zap.Int("port", cfg.Server.Port),
			zap.String("environment", cfg.Server.Environment),
			zap.String("searchQuery", cfg.YouTube.SearchQuery),
		)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case sig := <-shutdown:
		logger.Log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error("Graceful shutdown failed", zap.Error(err))
			if closeErr := server.Close(); closeErr != nil {
				return fmt.Errorf("close server: %w", closeErr)
			}
			return fmt.Errorf("graceful shutdown: %w", err)
		}

		logger.Log.Info("Server stopped gracefully")
	}

	return nil
}
