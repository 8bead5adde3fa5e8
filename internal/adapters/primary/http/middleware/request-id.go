package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	ports "github.com/verigle/wandb/internal/core/ports/output"
)

const (
	HeaderRequestID = "X-Request-ID"
	ContextKey      = "request_id"
)

// RequestID propagates the caller's X-Request-ID or assigns a new one, and
// exposes it on the request context for the GraphQL transport.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(ContextKey, requestID)
		c.Header(HeaderRequestID, requestID)
		c.Request = c.Request.WithContext(ports.WithRequestID(c.Request.Context(), requestID))

		c.Next()
	}
}
