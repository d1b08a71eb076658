package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

// The feed envelope is public API surface; clients depend on the exact key
// casing and on videos always being a JSON array.
func TestVideoFeedResponseJSON(t *testing.T) {
	resp := VideoFeedResponse{
		Videos: []Video{
			{
				ID:              "dQw4w9WgXcQ",
				Title:           "Some AI tool demo",
				ThumbnailURL:    "https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg",
				ChannelID:       "UC123",
				ChannelTitle:    "Tool Channel",
				PublishedAt:     time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
				Duration:        "PT4M13S",
				DurationSeconds: 253,
				ViewCount:       1000,
				SubscriberCount: 25000,
			},
		},
		NextPageToken: "CAUQAA",
		PageInfo:      PageInfo{TotalResults: 120, ResultsPerPage: 50},
		TotalResults:  1,
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	body := string(data)
	for _, key := range []string{
		`"videos"`, `"nextPageToken"`, `"pageInfo"`, `"totalResults"`,
		`"id"`, `"thumbnailUrl"`, `"channelId"`, `"channelTitle"`,
		`"publishedAt"`, `"durationSeconds"`, `"viewCount"`, `"subscriberCount"`,
	} {
		if !strings.Contains(body, key) {
			t.Errorf("marshaled envelope is missing key %s", key)
		}
	}
	if strings.Contains(body, `"message"`) {
		t.Error("message key present on a non-empty result")
	}
}

func TestVideoFeedResponseJSONEmpty(t *testing.T) {
	resp := VideoFeedResponse{
		Videos:       []Video{},
		TotalResults: 0,
		Message:      "No videos found for the given search query.",
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	body := string(data)
	if !strings.Contains(body, `"videos":[]`) {
		t.Errorf("videos must stay an empty array, got %s", body)
	}
	if strings.Contains(body, `"nextPageToken"`) {
		t.Error("empty nextPageToken must be omitted")
	}
	if !strings.Contains(body, `"message"`) {
		t.Error("message missing on an empty result")
	}
}
