// Package models contains the data models and DTOs for the AI tools video API.
package models

import "time"

// Filters carries the normalized filter parameters of one feed request.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type Filters struct {
	MaxResults     int // reserved; not applied to truncate output
	MaxDuration    int // seconds
	MinSubscribers int64
	Page           string
	LastHours      int // 0 means no recency bound
}

// Video is a single aggregated video after duration parsing. SubscriberCount
// is attached in the final filtering pass and stays 0 when the channel batch
// lookup omitted the channel.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type Video struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	ThumbnailURL    string    `json:"thumbnailUrl"`
	ChannelID       string    `json:"channelId"`
	ChannelTitle    string    `json:"channelTitle"`
	PublishedAt     time.Time `json:"publishedAt"`
	Duration        string    `json:"duration"`
	DurationSeconds int       `json:"durationSeconds"`
	ViewCount       int64     `json:"viewCount"`
	SubscriberCount int64     `json:"subscriberCount"`
}

// PageInfo mirrors the upstream search pagination block and is carried over
// unchanged; totalResults here is the upstream's estimate for the whole
// search, not the size of the filtered result.
type PageInfo struct {
	TotalResults   int64 `json:"totalResults"`
	ResultsPerPage int64 `json:"resultsPerPage"`
}

// VideoFeedResponse is the envelope returned by GET /api/ai-tools-videos.
// TotalResults counts the videos that survived filtering. Message is set
// when the list is empty.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type VideoFeedResponse struct {
	Videos        []Video  `json:"videos"`
	NextPageToken string   `json:"nextPageToken,omitempty"`
	PageInfo      PageInfo `json:"pageInfo"`
	TotalResults  int      `json:"totalResults"`
	Message       string   `json:"message,omitempty"`
}

// ErrorResponse represents an error response. Stack is only populated
// outside production.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}
