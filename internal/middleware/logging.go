package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"budgetly/internal/logger"
	"budgetly/internal/metrics"
)

const (
	requestIDKey    = "requestID"
	requestIDHeader = "X-Request-ID"
)

// quietPaths are served at debug level so scrapes and probes don't flood the log.
var quietPaths = map[string]bool{
	"/metrics":    true,
	"/api/health": true,
}

// RequestLogging returns a Gin middleware that logs each request with a request
// ID, method, path, status code, latency, and client IP using Zap. A caller's
// X-Request-ID is reused. When m is non-nil the latency is also recorded per
// matched route.
func RequestLogging(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)

		c.Next()

		latency := time.Since(start)
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		if m != nil {
			m.ObserveRequest(c.Request.Method, route, c.Writer.Status(), latency)
		}

		log := logger.Get().Infow
		if quietPaths[c.Request.URL.Path] {
			log = logger.Get().Debugw
		}
		log("request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"route", route,
			"status", c.Writer.Status(),
			"latency_ms", latency.Milliseconds(),
			"client_ip", c.ClientIP(),
		)
	}
}

// RequestID returns the ID assigned by RequestLogging, if any.
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
