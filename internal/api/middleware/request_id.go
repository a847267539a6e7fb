package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader is the header carrying the request ID
	RequestIDHeader = "X-Request-ID"
	// requestIDKey is the gin context key holding the request ID
	requestIDKey = "requestID"
)

// RequestID assigns every request an ID, reusing the client's one when present
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the request ID assigned by RequestID, or "" if none
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
