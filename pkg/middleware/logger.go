package middleware

import (
	"time"

	"github.com/kirankumar485/urlshortner/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RequestIDKey is the context key carrying the per-request id
const RequestIDKey = "request_id"

// Logger returns a gin middleware that tags each request with an id and
// logs it
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		requestID := util.GenerateUUID()
		c.Set(RequestIDKey, requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		c.Next()

		latency := time.Since(start)

		log.Info().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("query", query).
			Int("status", c.Writer.Status()).
			Dur("latency", latency).
			Str("ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent()).
			Msg("HTTP request")
	}
}
