// Package metrics exposes Prometheus collectors for the HTTP surface and
// for upstream YouTube Data API usage.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operation labels for upstream calls.
const (
	OpSearch       = "search.list"
	OpVideosList   = "videos.list"
	OpChannelsList = "channels.list"
)

// Drop reasons for VideosDroppedTotal.
const (
	ReasonUnparseableDuration = "unparseable_duration"
	ReasonMissingFields       = "missing_fields"
	ReasonDurationAboveMax    = "duration_above_max"
	ReasonPublishedTooOld     = "published_too_old"
	ReasonBelowMinSubscribers = "below_min_subscribers"
)

// Quota units charged per call, as documented for the Data API.
var quotaUnits = map[string]float64{
	OpSearch:       100,
	OpVideosList:   1,
	OpChannelsList: 1,
}

var (
	// HTTPRequestsTotal counts served requests by method, path and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests processed, partitioned by method, path and status code.",
	}, []string{"method", "path", "status"})

	// HTTPRequestDuration tracks request latency by method and path.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	// YouTubeCallsTotal counts upstream Data API calls by operation and outcome.
	YouTubeCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "youtube_api_calls_total",
		Help: "YouTube Data API calls, partitioned by operation and outcome.",
	}, []string{"operation", "status"})

	// YouTubeQuotaUnitsTotal tracks estimated quota units spent per operation.
	YouTubeQuotaUnitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "youtube_api_quota_units_total",
		Help: "Estimated YouTube Data API quota units spent, partitioned by operation.",
	}, []string{"operation"})

	// VideosDroppedTotal counts videos removed by the filter pipeline.
	VideosDroppedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "videos_dropped_total",
		Help: "Videos dropped by the filter pipeline, partitioned by reason.",
	}, []string{"reason"})
)

// ObserveYouTubeCall records one upstream call and its estimated quota cost.
func ObserveYouTubeCall(operation string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	YouTubeCallsTotal.WithLabelValues(operation, status).Inc()
	YouTubeQuotaUnitsTotal.WithLabelValues(operation).Add(quotaUnits[operation])
}

// AddVideosDropped counts videos removed by one pipeline stage.
func AddVideosDropped(reason string, n int) {
	if n <= 0 {
		return
	}
	VideosDroppedTotal.WithLabelValues(reason).Add(float64(n))
}

// ObserveHTTPRequest records one served request.
func ObserveHTTPRequest(method, path string, status int, elapsed time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}
