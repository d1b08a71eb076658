// Package youtube wraps the YouTube Data API v3 client for the three read
// operations the aggregation pipeline needs.
package youtube

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/option"
	youtubeapi "google.golang.org/api/youtube/v3"

	"github.com/LirazGal/youtube-ai-tools-api/internal/metrics"
)

// maxIDsPerCall is the upstream ceiling on id-list size for list endpoints.
const maxIDsPerCall = 50

// SearchQuery describes one page of a date-ordered video search.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type SearchQuery struct {
	Text           string
	MaxResults     int64
	PageToken      string
	PublishedAfter time.Time
}

// Client wraps the YouTube Data API v3 client.
type Client struct {
	service *youtubeapi.Service
}

// NewClient creates a new YouTube API client.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("YouTube API key is required")
	}

	service, err := youtubeapi.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &Client{service: service}, nil
}

// Search runs one page of a video search ordered by publish date.
// PublishedAfter and PageToken are only sent when set.
func (c *Client) Search(ctx context.Context, q SearchQuery) (*youtubeapi.SearchListResponse, error) {
	maxResults := q.MaxResults
	if maxResults <= 0 || maxResults > maxIDsPerCall {
		maxResults = maxIDsPerCall
	}

	call := c.service.Search.List([]string{"snippet"}).
		Q(q.Text).
		Type("video").
		Order("date").
		MaxResults(maxResults).
		Context(ctx)

	if q.PageToken != "" {
		call = call.PageToken(q.PageToken)
	}
	if !q.PublishedAfter.IsZero() {
		call = call.PublishedAfter(q.PublishedAfter.UTC().Format(time.RFC3339))
	}

	response, err := call.Do()
	metrics.ObserveYouTubeCall(metrics.OpSearch, err)
	if err != nil {
		return nil, fmt.Errorf("failed to search videos on YouTube API: %w", err)
	}

	return response, nil
}

// ListVideos retrieves snippet, content details and statistics for the given
// video IDs, splitting the id list at the API's batch ceiling.
func (c *Client) ListVideos(ctx context.Context, videoIDs []string) (*youtubeapi.VideoListResponse, error) {
	if len(videoIDs) == 0 {
		return nil, fmt.Errorf("no video IDs provided")
	}

	parts := []string{"snippet", "contentDetails", "statistics"}

	out := &youtubeapi.VideoListResponse{}
	for _, batch := range batchIDs(videoIDs, maxIDsPerCall) {
		call := c.service.Videos.List(parts).Id(batch...).Context(ctx)

		response, err := call.Do()
		metrics.ObserveYouTubeCall(metrics.OpVideosList, err)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch videos from YouTube API: %w", err)
		}

		out.Items = append(out.Items, response.Items...)
	}

	return out, nil
}

// ListChannels retrieves statistics for the given channel IDs, splitting the
// id list at the API's batch ceiling. Channels the API omits (deleted or
// suspended) are simply absent from the result.
func (c *Client) ListChannels(ctx context.Context, channelIDs []string) (*youtubeapi.ChannelListResponse, error) {
	if len(channelIDs) == 0 {
		return nil, fmt.Errorf("no channel IDs provided")
	}

	out := &youtubeapi.ChannelListResponse{}
	for _, batch := range batchIDs(channelIDs, maxIDsPerCall) {
		call := c.service.Channels.List([]string{"statistics"}).Id(batch...).Context(ctx)

		response, err := call.Do()
		metrics.ObserveYouTubeCall(metrics.OpChannelsList, err)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch channels from YouTube API: %w", err)
		}

		out.Items = append(out.Items, response.Items...)
	}

	return out, nil
}

// batchIDs splits an id list into chunks of at most batchSize.
func batchIDs(ids []string, batchSize int) [][]string {
	if batchSize <= 0 || batchSize > maxIDsPerCall {
		batchSize = maxIDsPerCall
	}

	var batches [][]string
	for i := 0; i < len(ids); i += batchSize {
		end := i + batchSize
		if end > len(ids) {
			end = len(ids)
		}
		batches = append(batches, ids[i:end])
	}

	return batches
}
