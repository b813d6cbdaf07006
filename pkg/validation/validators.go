package validation

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// calendarDateLayouts are the shapes a browser date input or a JS Date#toISOString can produce.
var calendarDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// New returns a validator configured with JSON field names and the custom tags below.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("calendar_date", CalendarDate)
	_ = v.RegisterValidation("not_blank", NotBlank)
}

// CalendarDate validates that a string parses to a calendar date.
func CalendarDate(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	_, ok := ParseCalendarDate(val)
	return ok
}

// NotBlank rejects strings made only of whitespace.
func NotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// ParseCalendarDate parses s with the first matching layout, keeping the
// offset it was written in.
func ParseCalendarDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range calendarDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}
