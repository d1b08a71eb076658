package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/LirazGal/youtube-ai-tools-api/internal/metrics"
)

// Metrics records request counts and latency. The route template is used as
// the path label so unmatched paths cannot explode label cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
