package middleware

import (
	"errors"
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors collected on the context into the JSON
// envelope. Unknown errors degrade to a generic 500: internal detail is
// logged server-side, never exposed to clients.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Err != nil {
					logger.Log.Error("request failed",
						"path", c.FullPath(), "status", appErr.Code, "error", appErr.Err)
				}
				response.Error(c, appErr.Code, appErr.Message)
			} else {
				logger.Log.Error("unhandled error", "path", c.FullPath(), "error", err)
				response.Error(c, http.StatusInternalServerError,
					"An unexpected error occurred. Please try again later.")
			}
		}
	}
}
