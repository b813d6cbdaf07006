package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
)

// FieldViolation is one failed rule on one input field.
type FieldViolation struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FieldLabels maps JSON field names to the labels used in messages
var FieldLabels = map[string]string{
	"name":          "Name",
	"email":         "Email",
	"phone":         "Phone number",
	"company":       "Company name",
	"service":       "Service name",
	"message":       "Message",
	"preferredDate": "Date",
}

// Messages overrides the generic message for a field/tag pair.
var Messages = map[string]string{
	"name.required":               "Name is required",
	"name.not_blank":              "Name is required",
	"name.max":                    "Name too long",
	"email.required":              "Email is required",
	"email.email":                 "Invalid email address",
	"email.max":                   "Email too long",
	"phone.max":                   "Phone number too long",
	"company.max":                 "Company name too long",
	"service.max":                 "Service name too long",
	"message.required":            "Message must be at least 10 characters",
	"message.min":                 "Message must be at least 10 characters",
	"message.max":                 "Message too long",
	"preferredDate.max":           "Date too long",
	"preferredDate.calendar_date": "Date must be a calendar date (YYYY-MM-DD)",
}

// Violations converts a validator error into field-level violations.
// Errors that are not validator.ValidationErrors become a single "body" violation.
func Violations(err error) []FieldViolation {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []FieldViolation{{
			Field:   "body",
			Code:    "invalid",
			Message: err.Error(),
		}}
	}

	violations := make([]FieldViolation, 0, len(validationErrors))
	for _, e := range validationErrors {
		violations = append(violations, FieldViolation{
			Field:   e.Field(),
			Code:    e.Tag(),
			Message: formatSingleError(e),
		})
	}
	return violations
}

// DecodeViolations describes a request body that could not be decoded into
// the target struct. Decoder internals (Go type names, offsets) stay out of
// the message.
func DecodeViolations(err error) []FieldViolation {
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return []FieldViolation{{
			Field:   typeErr.Field,
			Code:    "type",
			Message: fmt.Sprintf("%s must be a %s", getFieldLabel(typeErr.Field), typeErr.Value),
		}}
	case errors.Is(err, io.EOF):
		return []FieldViolation{{Field: "body", Code: "required", Message: "Request body is required"}}
	default:
		return []FieldViolation{{Field: "body", Code: "invalid", Message: "Request body must be valid JSON"}}
	}
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	fieldName := e.Field()
	if msg, ok := Messages[fieldName+"."+e.Tag()]; ok {
		return msg
	}

	label := getFieldLabel(fieldName)
	param := e.Param()

	switch e.Tag() {
	case "required", "not_blank":
		return fmt.Sprintf("%s is required", label)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, param)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, param)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)
	case "calendar_date":
		return fmt.Sprintf("%s must be a calendar date", label)
	default:
		return fmt.Sprintf("%s failed validation (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return fieldName
}
