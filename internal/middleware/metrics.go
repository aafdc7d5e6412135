package middleware

import (
	"time"

	"banking_api/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records count and latency of every request by route template
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched" // Keep 404 paths out of the label set
		}
		m.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
