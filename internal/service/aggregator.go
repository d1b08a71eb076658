// Package service provides the video aggregation business logic.
package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
	youtubeapi "google.golang.org/api/youtube/v3"

	"github.com/LirazGal/youtube-ai-tools-api/internal/config"
	"github.com/LirazGal/youtube-ai-tools-api/internal/metrics"
	"github.com/LirazGal/youtube-ai-tools-api/internal/models"
	"github.com/LirazGal/youtube-ai-tools-api/internal/service/youtube"
	"github.com/LirazGal/youtube-ai-tools-api/pkg/logger"
)

// Messages returned with empty result sets.
const (
	msgNoSearchResults = "No videos found for the given search query."
	msgNoMatches       = "No videos matched the current filters."
)

// VideoAPI is the slice of the upstream client the aggregator consumes.
type VideoAPI interface {
	Search(ctx context.Context, q youtube.SearchQuery) (*youtubeapi.SearchListResponse, error)
	ListVideos(ctx context.Context, videoIDs []string) (*youtubeapi.VideoListResponse, error)
	ListChannels(ctx context.Context, channelIDs []string) (*youtubeapi.ChannelListResponse, error)
}

// Aggregator composes the three sequential upstream lookups into one
// filtered video feed. It is constructed once and holds no per-request
// state, so concurrent requests can share it freely.
type Aggregator struct {
	api VideoAPI
	cfg *config.Config
	now func() time.Time
}

// NewAggregator creates a new Aggregator instance.
func NewAggregator(api VideoAPI, cfg *config.Config) *Aggregator {
	return &Aggregator{
		api: api,
		cfg: cfg,
		now: time.Now,
	}
}

// FetchFilteredVideos runs the full pipeline: search, detail lookup, channel
// lookup, then duration, recency and subscriber filtering. Pagination
// metadata is carried over unchanged from the search response because the
// upstream exposes no pagination for filtered subsets.
func (a *Aggregator) FetchFilteredVideos(ctx context.Context, f models.Filters) (*models.VideoFeedResponse, error) {
	now := a.now()

	var publishedAfter time.Time
	if f.LastHours > 0 {
		publishedAfter = now.Add(-time.Duration(f.LastHours) * time.Hour)
	}

	// Step 1: Search the configured topic, newest first
	search, err := a.api.Search(ctx, youtube.SearchQuery{
		Text:           a.cfg.YouTube.SearchQuery,
		MaxResults:     a.cfg.YouTube.MaxResultsPerPage,
		PageToken:      f.Page,
		PublishedAfter: publishedAfter,
	})
	if err != nil {
		return nil, &UpstreamError{Op: "search", Cause: err}
	}

	envelope := &models.VideoFeedResponse{
		Videos:        []models.Video{},
		NextPageToken: search.NextPageToken,
	}
	if search.PageInfo != nil {
		envelope.PageInfo = models.PageInfo{
			TotalResults:   search.PageInfo.TotalResults,
			ResultsPerPage: search.PageInfo.ResultsPerPage,
		}
	}

	// Step 2: Nothing found, skip the detail and channel lookups entirely
	if len(search.Items) == 0 {
		envelope.Message = msgNoSearchResults
		logger.Log.Info("Search returned no items",
			zap.String("query", a.cfg.YouTube.SearchQuery),
			zap.String("pageToken", f.Page),
		)
		return envelope, nil
	}

	videoIDs := make([]string, 0, len(search.Items))
	for _, item := range search.Items {
		if item == nil || item.Id == nil || item.Id.VideoId == "" {
			metrics.AddVideosDropped(metrics.ReasonMissingFields, 1)
			continue
		}
		videoIDs = append(videoIDs, item.Id.VideoId)
	}
	if len(videoIDs) == 0 {
		envelope.Message = msgNoMatches
		return envelope, nil
	}

	// Step 3: One batch lookup for snippet, content details and statistics
	details, err := a.api.ListVideos(ctx, videoIDs)
	if err != nil {
		return nil, &UpstreamError{Op: "videos", Cause: err}
	}

	// Step 4: Parse durations, apply the duration and recency filters.
	// Failures here affect single videos only and never abort the request.
	candidates := make([]models.Video, 0, len(details.Items))
	channelSet := make(map[string]struct{})
	skipped := 0

	for _, item := range details.Items {
		if item == nil || item.Snippet == nil || item.ContentDetails == nil {
			metrics.AddVideosDropped(metrics.ReasonMissingFields, 1)
			skipped++
			continue
		}

		seconds, err := youtube.ParseDuration(item.ContentDetails.Duration)
		if err != nil {
			logger.Log.Warn("Skipping video with unparseable duration",
				zap.String("videoId", item.Id),
				zap.String("duration", item.ContentDetails.Duration),
			)
			metrics.AddVideosDropped(metrics.ReasonUnparseableDuration, 1)
			skipped++
			continue
		}

		publishedAt, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt)
		if err != nil {
			logger.Log.Warn("Skipping video with unparseable publish time",
				zap.String("videoId", item.Id),
				zap.String("publishedAt", item.Snippet.PublishedAt),
			)
			metrics.AddVideosDropped(metrics.ReasonMissingFields, 1)
			skipped++
			continue
		}

		// The search already applied publishedAfter; keep the check anyway
		// so a stale upstream index cannot leak older videos through.
		if f.LastHours > 0 && publishedAt.Before(publishedAfter) {
			metrics.AddVideosDropped(metrics.ReasonPublishedTooOld, 1)
			continue
		}

		if seconds > f.MaxDuration {
			metrics.AddVideosDropped(metrics.ReasonDurationAboveMax, 1)
			continue
		}

		video := models.Video{
			ID:              item.Id,
			Title:           item.Snippet.Title,
			Description:     item.Snippet.Description,
			ThumbnailURL:    thumbnailURL(item.Snippet.Thumbnails),
			ChannelID:       item.Snippet.ChannelId,
			ChannelTitle:    item.Snippet.ChannelTitle,
			PublishedAt:     publishedAt,
			Duration:        item.ContentDetails.Duration,
			DurationSeconds: seconds,
		}
		if item.Statistics != nil {
			video.ViewCount = int64(item.Statistics.ViewCount)
		}

		candidates = append(candidates, video)
		if video.ChannelID != "" {
			channelSet[video.ChannelID] = struct{}{}
		}
	}

	if skipped > 0 {
		logger.Log.Info("Dropped videos during detail processing",
			zap.Int("count", skipped),
		)
	}

	// Step 5: No channels to look up, the duration-filtered list is final
	if len(channelSet) == 0 {
		envelope.Videos = candidates
		envelope.TotalResults = len(candidates)
		if len(candidates) == 0 {
			envelope.Message = msgNoMatches
		}
		return envelope, nil
	}

	channelIDs := make([]string, 0, len(channelSet))
	for id := range channelSet {
		channelIDs = append(channelIDs, id)
	}
	sort.Strings(channelIDs)

	// Step 6: Batch subscriber lookup over the distinct channel ids
	channels, err := a.api.ListChannels(ctx, channelIDs)
	if err != nil {
		return nil, &UpstreamError{Op: "channels", Cause: err}
	}

	subscribers := make(map[string]int64, len(channels.Items))
	for _, ch := range channels.Items {
		if ch == nil || ch.Statistics == nil {
			continue
		}
		subscribers[ch.Id] = int64(ch.Statistics.SubscriberCount)
	}

	// Step 7: Attach subscriber counts and keep the popular channels.
	// Channels missing from the lookup (deleted or suspended) count as zero.
	final := make([]models.Video, 0, len(candidates))
	for _, video := range candidates {
		video.SubscriberCount = subscribers[video.ChannelID]
		if video.SubscriberCount < f.MinSubscribers {
			metrics.AddVideosDropped(metrics.ReasonBelowMinSubscribers, 1)
			continue
		}
		final = append(final, video)
	}

	// Step 8: Return the final list; pagination stays as the search reported it
	envelope.Videos = final
	envelope.TotalResults = len(final)
	if len(final) == 0 {
		envelope.Message = msgNoMatches
	}

	logger.Log.Info("Video aggregation completed",
		zap.Int("searchItems", len(search.Items)),
		zap.Int("afterDurationFilter", len(candidates)),
		zap.Int("finalCount", len(final)),
		zap.Int("maxDuration", f.MaxDuration),
		zap.Int64("minSubscribers", f.MinSubscribers),
	)

	return envelope, nil
}

// thumbnailURL prefers the high resolution thumbnail and falls back to the
// smaller variants.
func thumbnailURL(t *youtubeapi.ThumbnailDetails) string {
	switch {
	case t == nil:
		return ""
	case t.High != nil:
		return t.High.Url
	case t.Medium != nil:
		return t.Medium.Url
	case t.Default != nil:
		return t.Default.Url
	default:
		return ""
	}
}

// Custom errors

// UpstreamError wraps a failure from one of the dependent YouTube API
// calls. The whole request aborts; no partial results are returned.
type UpstreamError struct {
	Op    string
	Cause error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("youtube %s lookup failed: %v", e.Op, e.Cause)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}
