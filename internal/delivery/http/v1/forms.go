package v1

import (
	"errors"
	"net/http"

	"episolve-backend/pkg/apperror"
	"episolve-backend/pkg/security"
	"episolve-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// maxFormBody is far above the largest valid form payload (a few KB).
const maxFormBody = 64 << 10

// bindJSON decodes the request body into a fresh T. A body that cannot be
// decoded is reported as a validation failure with the given message, so
// clients see one 400 shape whether the JSON or its content is wrong.
func bindJSON[T any](c *gin.Context, secLog *security.SecurityLogger, invalidMessage string) (*T, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxFormBody)

	req := new(T)
	if err := c.ShouldBindJSON(req); err != nil {
		secLog.LogMalformedPayload(c.Request.Context(), c.ClientIP(), c.GetString("RequestID"), c.FullPath(), c.Request.ContentLength)

		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			_ = c.Error(apperror.New(http.StatusRequestEntityTooLarge, "Request body too large", err))
			return nil, false
		}
		_ = c.Error(apperror.Validation(invalidMessage, validation.DecodeViolations(err)))
		return nil, false
	}
	return req, true
}

// fail hands err to the error middleware, recording rejected fields first.
func fail(c *gin.Context, secLog *security.SecurityLogger, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.Code == http.StatusBadRequest {
		if violations, ok := appErr.Details.([]validation.FieldViolation); ok {
			fields := make([]string, 0, len(violations))
			for _, v := range violations {
				fields = append(fields, v.Field)
			}
			secLog.LogValidationFailed(c.Request.Context(), c.ClientIP(), c.GetString("RequestID"), c.FullPath(), fields)
		}
	}
	_ = c.Error(err)
}
