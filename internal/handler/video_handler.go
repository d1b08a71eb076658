package handler

import (
	"context"
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"

	"github.com/LirazGal/youtube-ai-tools-api/internal/config"
	"github.com/LirazGal/youtube-ai-tools-api/internal/middleware"
	"github.com/LirazGal/youtube-ai-tools-api/internal/models"
	"github.com/LirazGal/youtube-ai-tools-api/internal/service"
	"github.com/LirazGal/youtube-ai-tools-api/internal/validation"
	"github.com/LirazGal/youtube-ai-tools-api/pkg/logger"
)

// VideoFetcher is the slice of the aggregator the handler consumes.
type VideoFetcher interface {
	FetchFilteredVideos(ctx context.Context, f models.Filters) (*models.VideoFeedResponse, error)
}

// VideoHandler handles the video feed HTTP requests.
type VideoHandler struct {
	fetcher    VideoFetcher
	normalizer *validation.Normalizer
	cfg        *config.Config
}

// NewVideoHandler creates a new VideoHandler instance.
func NewVideoHandler(fetcher VideoFetcher, normalizer *validation.Normalizer, cfg *config.Config) *VideoHandler {
	return &VideoHandler{
		fetcher:    fetcher,
		normalizer: normalizer,
		cfg:        cfg,
	}
}

// GetAIToolsVideos serves GET /api/ai-tools-videos: normalize the filter
// parameters, run the aggregation pipeline and return the envelope.
func (h *VideoHandler) GetAIToolsVideos(c *gin.Context) {
	filters := h.normalizer.ParseQuery(c.Request.URL.Query())

	logger.Log.Info("Fetching video feed",
		zap.Int("maxDuration", filters.MaxDuration),
		zap.Int64("minSubscribers", filters.MinSubscribers),
		zap.Int("lastHours", filters.LastHours),
		zap.String("page", filters.Page),
	)

	response, err := h.fetcher.FetchFilteredVideos(c.Request.Context(), filters)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// handleError maps pipeline failures onto the single 500 error shape. Stack
// traces are only attached outside production.
func (h *VideoHandler) handleError(c *gin.Context, err error) {
	var upstreamErr *service.UpstreamError
	if errors.As(err, &upstreamErr) {
		fields := []zap.Field{
			zap.Error(err),
			zap.String("operation", upstreamErr.Op),
			zap.String("path", c.Request.URL.Path),
			zap.String("requestId", middleware.GetRequestID(c)),
		}

		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			fields = append(fields, zap.Int("upstreamStatus", apiErr.Code))
		}

		logger.Log.Error("Upstream YouTube call failed", fields...)
	} else {
		logger.Log.Error("Unexpected error",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
			zap.String("requestId", middleware.GetRequestID(c)),
		)
	}

	response := models.ErrorResponse{
		Error:   "Failed to fetch videos from YouTube",
		Message: err.Error(),
	}
	if !h.cfg.IsProduction() {
		response.Stack = string(debug.Stack())
	}

	c.JSON(http.StatusInternalServerError, response)
}
