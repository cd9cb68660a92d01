package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-Id"
	requestIDKey    = "request_id"
)

// RequestID honors an inbound X-Request-Id so the dashboard can
// correlate retries with server logs, minting one otherwise.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Writer.Header().Set(requestIDHeader, id)

		c.Next()
	}
}

// ContextRequestID returns the id RequestID stored for this request, or
// an empty string outside the chain.
func ContextRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
