package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID attaches a unique id to every request for log correlation.
// Honors an incoming X-Request-ID so upstream proxies can trace calls.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("RequestID", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
