package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxRequestIDKey = "request_id"

// RequestID tags every request with a fresh id. Response envelopes echo it
// so a client report can be matched against the server logs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set(ctxRequestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
