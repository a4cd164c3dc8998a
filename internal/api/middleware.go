package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yourname/befree/internal"
)

// RequestIDMiddleware tags every request with a correlation ID, minting
// one when the client did not send X-Request-ID. Handlers and the
// access log pick it up from the context.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set("request_id", reqID)
		c.Writer.Header().Set("X-Request-ID", reqID)
		c.Next()
	}
}

// RequestLogMiddleware writes one access-log line per request: method,
// path, status and latency, tagged with the request ID. Runs after
// RequestIDMiddleware.
func RequestLogMiddleware(logger internal.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Infof("[request_id=%s] %s %s -> %d (%s)",
			c.GetString("request_id"),
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
		)
	}
}
