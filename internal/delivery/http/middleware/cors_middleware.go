package middleware

import (
	"os"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware adds CORS headers for cross-origin requests.
//
// The portfolio is normally served same-origin, so the whitelist is small:
// localhost origins in development plus any origins configured via
// ALLOWED_ORIGINS for split deployments.
func CORSMiddleware(extraOrigins []string) gin.HandlerFunc {
	isProduction := os.Getenv("GIN_MODE") == "release"

	devOrigins := map[string]bool{
		"http://localhost:3000": true,
		"http://127.0.0.1:3000": true,
	}

	allowed := make(map[string]bool, len(extraOrigins))
	for _, o := range extraOrigins {
		allowed[o] = true
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		isAllowed := allowed[origin]
		if !isProduction && devOrigins[origin] {
			isAllowed = true
		}
		// Same-origin requests carry no Origin header
		if origin == "" {
			isAllowed = true
		}

		if isAllowed && origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
			c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			c.Header("Access-Control-Max-Age", "86400")
		}

		// Caches must differentiate by Origin
		c.Header("Vary", "Origin")

		if c.Request.Method == "OPTIONS" {
			if isAllowed {
				c.AbortWithStatus(204)
			} else {
				c.AbortWithStatus(403)
			}
			return
		}

		c.Next()
	}
}
