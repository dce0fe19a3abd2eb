package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bookmarkd/bookmarkd/pkg/logger"
	"github.com/bookmarkd/bookmarkd/pkg/metrics"
)

// RequestLog logs one line per handled request and counts it in the
// http_requests_total metric. Route is the matched pattern, not the raw
// path, to keep metric cardinality bounded.
func RequestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		metrics.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).Inc()
		logger.Infof("%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, status, time.Since(start))
	}
}
