package middleware

import (
	"errors"
	"net/http"

	"episolve-backend/internal/delivery/http/response"
	"episolve-backend/pkg/apperror"
	"episolve-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("request failed",
					"status", appErr.Code,
					"path", c.FullPath(),
					"request_id", requestIDOf(c),
					"error", appErr.Err,
				)
			}
			response.Error(c, appErr.Code, appErr.Message, appErr.Details)
			return
		}

		// Cause stays server-side.
		logger.Log.Error("unexpected error", "path", c.FullPath(), "request_id", requestIDOf(c), "error", err)
		response.Error(c, http.StatusInternalServerError, apperror.GenericMessage, nil)
	}
}
