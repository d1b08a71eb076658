package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/LirazGal/youtube-ai-tools-api/internal/config"
	"github.com/LirazGal/youtube-ai-tools-api/internal/middleware"
)

// SetupRouter wires the HTTP routes and middleware.
func SetupRouter(cfg *config.Config, videoHandler *VideoHandler, healthHandler *HealthHandler) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	router.GET("/api/ai-tools-videos", videoHandler.GetAIToolsVideos)

	router.GET("/health/live", healthHandler.LivenessProbe)
	router.GET("/health/ready", healthHandler.ReadinessProbe)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
