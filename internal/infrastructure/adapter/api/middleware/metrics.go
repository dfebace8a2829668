package middleware

import (
	"time"

	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics middleware records request counts and latencies per matched route
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		done := metrics.RequestStarted()
		defer done()

		c.Next()

		metrics.RecordHTTPRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
