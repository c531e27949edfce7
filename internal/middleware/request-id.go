package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const headerRequestID = "X-Request-ID"

// ContextRequestID is the gin context key the request id is stored under.
const ContextRequestID = "request_id"

// RequestID honors a caller-supplied X-Request-ID and mints one otherwise,
// echoing it back on the response so dashboard calls can be correlated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(headerRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(ContextRequestID, requestID)
		c.Header(headerRequestID, requestID)

		c.Next()
	}
}
