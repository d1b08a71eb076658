package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/LirazGal/youtube-ai-tools-api/internal/config"
	"github.com/LirazGal/youtube-ai-tools-api/internal/models"
	"github.com/LirazGal/youtube-ai-tools-api/internal/service"
	"github.com/LirazGal/youtube-ai-tools-api/internal/validation"
	"github.com/LirazGal/youtube-ai-tools-api/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	_ = logger.Init("error", "development")
}

// fakeFetcher implements VideoFetcher and records the filters it was called
// with.
type fakeFetcher struct {
	response *models.VideoFeedResponse
	err      error

	calls      int
	gotFilters models.Filters
}

func (f *fakeFetcher) FetchFilteredVideos(_ context.Context, filters models.Filters) (*models.VideoFeedResponse, error) {
	f.calls++
	f.gotFilters = filters
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func testConfig(environment string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Environment: environment},
		Filters: config.FiltersConfig{
			MaxResults:     10,
			MaxDuration:    1200,
			MinSubscribers: 1000,
		},
		CORS: config.CORSConfig{AllowedOrigins: []string{"*"}},
	}
}

func newVideoRouter(fetcher VideoFetcher, cfg *config.Config) *gin.Engine {
	h := NewVideoHandler(fetcher, validation.New(cfg.Filters), cfg)
	router := gin.New()
	router.GET("/api/ai-tools-videos", h.GetAIToolsVideos)
	return router
}

func TestGetAIToolsVideos(t *testing.T) {
	feed := &models.VideoFeedResponse{
		Videos: []models.Video{
			{ID: "vid1", Title: "AI tool roundup", DurationSeconds: 300, SubscriberCount: 5000},
		},
		NextPageToken: "next-token",
		PageInfo:      models.PageInfo{TotalResults: 42, ResultsPerPage: 50},
		TotalResults:  1,
	}

	fetcher := &fakeFetcher{response: feed}
	router := newVideoRouter(fetcher, testConfig("development"))

	req := httptest.NewRequest(http.MethodGet, "/api/ai-tools-videos", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body: %s", w.Code, http.StatusOK, w.Body.String())
	}
	if fetcher.calls != 1 {
		t.Fatalf("fetcher called %d times, want 1", fetcher.calls)
	}

	var got models.VideoFeedResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if len(got.Videos) != 1 || got.Videos[0].ID != "vid1" {
		t.Errorf("videos = %+v, want the single vid1 entry", got.Videos)
	}
	if got.NextPageToken != "next-token" {
		t.Errorf("nextPageToken = %q, want %q", got.NextPageToken, "next-token")
	}
	if got.PageInfo.TotalResults != 42 {
		t.Errorf("pageInfo.totalResults = %d, want 42", got.PageInfo.TotalResults)
	}
	if got.TotalResults != 1 {
		t.Errorf("totalResults = %d, want 1", got.TotalResults)
	}
}

func TestGetAIToolsVideosQueryParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  models.Filters
	}{
		{
			name:  "defaults when no parameters are sent",
			query: "",
			want:  models.Filters{MaxResults: 10, MaxDuration: 1200, MinSubscribers: 1000},
		},
		{
			name:  "explicit parameters override defaults",
			query: "?maxResults=30&maxDuration=600&minSubscribers=5000&page=tok&lastHours=48",
			want:  models.Filters{MaxResults: 30, MaxDuration: 600, MinSubscribers: 5000, Page: "tok", LastHours: 48},
		},
		{
			name:  "garbage parameters fall back to defaults",
			query: "?maxDuration=abc&minSubscribers=1e3",
			want:  models.Filters{MaxResults: 10, MaxDuration: 1200, MinSubscribers: 1000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher := &fakeFetcher{response: &models.VideoFeedResponse{Videos: []models.Video{}}}
			router := newVideoRouter(fetcher, testConfig("development"))

			req := httptest.NewRequest(http.MethodGet, "/api/ai-tools-videos"+tt.query, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
			}
			if fetcher.gotFilters != tt.want {
				t.Errorf("filters = %+v, want %+v", fetcher.gotFilters, tt.want)
			}
		})
	}
}

func TestGetAIToolsVideosUpstreamError(t *testing.T) {
	fetcher := &fakeFetcher{
		err: &service.UpstreamError{Op: "search", Cause: errors.New("quota exceeded")},
	}
	router := newVideoRouter(fetcher, testConfig("development"))

	req := httptest.NewRequest(http.MethodGet, "/api/ai-tools-videos", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}

	var got models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if got.Error != "Failed to fetch videos from YouTube" {
		t.Errorf("error = %q, want %q", got.Error, "Failed to fetch videos from YouTube")
	}
	if got.Message == "" {
		t.Error("message is empty, want the upstream error text")
	}
	if got.Stack == "" {
		t.Error("stack is empty, want a stack trace outside production")
	}
}

func TestGetAIToolsVideosErrorHidesStackInProduction(t *testing.T) {
	fetcher := &fakeFetcher{
		err: &service.UpstreamError{Op: "videos", Cause: errors.New("backend unavailable")},
	}
	router := newVideoRouter(fetcher, testConfig("production"))

	req := httptest.NewRequest(http.MethodGet, "/api/ai-tools-videos", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}

	var got models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if got.Stack != "" {
		t.Error("stack is present, want it stripped in production")
	}
}
