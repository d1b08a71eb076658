// Package handler provides HTTP request handlers for the application.
package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	youtubeConfigured bool
}

// NewHealthHandler creates a new HealthHandler instance.
func NewHealthHandler(youtubeConfigured bool) *HealthHandler {
	return &HealthHandler{
		youtubeConfigured: youtubeConfigured,
	}
}

// LivenessProbe checks if the application is running.
func (h *HealthHandler) LivenessProbe(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "UP",
		"time":   time.Now(),
	})
}

// ReadinessProbe checks if the application is ready to serve traffic. The
// upstream API is never called here so probes cannot spend quota.
func (h *HealthHandler) ReadinessProbe(c *gin.Context) {
	if !h.youtubeConfigured {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "DOWN",
			"youtube": "not configured",
			"time":    time.Now(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "UP",
		"youtube": "configured",
		"time":    time.Now(),
	})
}
