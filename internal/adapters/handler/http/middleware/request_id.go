package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader     = "X-Request-ID"
	ContextRequestIDKey = "requestID"

	requestIDLength = 36
)

// RequestID propagates the caller's request id or assigns a new one. Only
// canonical UUIDs are accepted from the caller.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if !validRequestID(id) {
			id = uuid.NewString()
		}

		c.Set(ContextRequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func validRequestID(id string) bool {
	if len(id) != requestIDLength {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(ContextRequestIDKey)
}
