package middleware

import (
	"time"

	"parking_service/internal/infrastructure/logging"
	"parking_service/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestID reuses an incoming X-Request-ID or generates one, and puts it in the
// request context for the logger.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(logging.ContextWithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// AccessLog logs one line per request and feeds the HTTP metrics. The route
// template is used as the label so path params do not explode cardinality.
func AccessLog(rec *metrics.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		elapsed := time.Since(start)
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		rec.ObserveHTTP(c.Request.Method, route, status, elapsed)

		entry := logging.WithFields(c.Request.Context(), map[string]interface{}{
			"method":      c.Request.Method,
			"route":       route,
			"status":      status,
			"duration_ms": elapsed.Milliseconds(),
		})
		if status >= 500 {
			entry.Error("[http] request failed")
			return
		}
		entry.Info("[http] request")
	}
}

// Recovery turns a panic into a 500 with the standard error body.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logging.WithFields(c.Request.Context(), map[string]interface{}{"panic": recovered}).Error("[http] recovered from panic")
		c.AbortWithStatusJSON(500, gin.H{"code": "INTERNAL_ERROR", "message": "An internal error occurred"})
	})
}
