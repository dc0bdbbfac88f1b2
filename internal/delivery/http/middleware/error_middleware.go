package middleware

import (
	"errors"
	"net/http"

	"candidate-management-api/internal/delivery/http/response"
	"candidate-management-api/internal/domain"
	"candidate-management-api/pkg/apperror"
	"candidate-management-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			switch {
			case errors.As(err, &appErr):
				response.Error(c, appErr.Code, appErr.Message, nil)
			case errors.Is(err, domain.ErrNotFound):
				// Repositories report a write against a vanished row with
				// this sentinel; it is still a 404, not a server fault.
				response.Error(c, http.StatusNotFound, "Resource not found.", nil)
			default:
				// Never expose internal error details to clients. Log the
				// actual error server-side and send a generic message.
				logger.Log.Error("Internal server error", "error", err, "path", c.Request.URL.Path)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
