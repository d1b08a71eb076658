// Package validation normalizes untrusted request input before it reaches
// the service layer.
package validation

import (
	"net/url"
	"strconv"

	"github.com/LirazGal/youtube-ai-tools-api/internal/config"
	"github.com/LirazGal/youtube-ai-tools-api/internal/models"
)

// Normalizer turns raw query parameters into a models.Filters, applying the
// configured defaults for anything absent or unparseable.
type Normalizer struct {
	defaults config.FiltersConfig
}

// New creates a Normalizer with the given filter defaults.
func New(defaults config.FiltersConfig) *Normalizer {
	return &Normalizer{defaults: defaults}
}

// ParseQuery normalizes the filter parameters of one feed request. Absent or
// non-integer values take the defaults; explicit zeroes and negative values
// pass through untouched, the pipeline semantics keep them consistent.
// lastHours is optional and only honored when positive.
func (n *Normalizer) ParseQuery(values url.Values) models.Filters {
	f := models.Filters{
		MaxResults:     n.defaults.MaxResults,
		MaxDuration:    n.defaults.MaxDuration,
		MinSubscribers: n.defaults.MinSubscribers,
		Page:           values.Get("page"),
	}

	if raw := values.Get("maxResults"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			f.MaxResults = v
		}
	}

	if raw := values.Get("maxDuration"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			f.MaxDuration = v
		}
	}

	if raw := values.Get("minSubscribers"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			f.MinSubscribers = v
		}
	}

	if raw := values.Get("lastHours"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			f.LastHours = v
		}
	}

	return f
}
