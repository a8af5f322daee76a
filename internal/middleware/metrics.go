package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/stocktrend/internal/metrics"
)

// Metrics records in-flight count, totals, and latency for every routed request.
// Register it outside RecoveryMiddleware so recovered panics are counted as 500s.
// The route template is used as the path label so query strings and unmatched
// paths do not explode cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.FullPath()
		if path == "/metrics" {
			c.Next()
			return
		}
		if path == "" {
			path = "unmatched"
		}

		start := time.Now()
		done := metrics.RequestStarted()
		defer func() {
			done(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), time.Since(start).Seconds())
		}()
		c.Next()
	}
}
