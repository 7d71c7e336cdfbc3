package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger writes one access-log line per request, tagged with the request id
// so domain events can be correlated with the HTTP call that caused them.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path += "?" + raw
		}

		c.Next()

		elapsed := time.Since(start)
		log.Printf("[HTTP] request_id=%s method=%s path=%s status=%d latency_ms=%.3f ip=%s",
			GetRequestID(c),
			c.Request.Method,
			path,
			c.Writer.Status(),
			float64(elapsed.Microseconds())/1000.0,
			c.ClientIP(),
		)
	}
}
