package validation_test

import (
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"episolve-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name          string `json:"name" validate:"required,not_blank,max=100"`
	Email         string `json:"email" validate:"required,max=254,email"`
	Message       string `json:"message" validate:"required,min=10,max=2000"`
	PreferredDate string `json:"preferredDate" validate:"omitempty,max=50,calendar_date"`
}

func valid() sample {
	return sample{Name: "Ada", Email: "ada@example.com", Message: "Hello there, team"}
}

func TestValidStructPasses(t *testing.T) {
	v := validation.New()
	assert.NoError(t, v.Struct(valid()))
}

func TestViolationsUseJSONNamesAndMessages(t *testing.T) {
	v := validation.New()
	s := valid()
	s.Name = "   "
	s.Email = "not-an-email"
	s.Message = "short"

	violations := validation.Violations(v.Struct(s))
	require.Len(t, violations, 3)

	byField := map[string]validation.FieldViolation{}
	for _, fv := range violations {
		byField[fv.Field] = fv
	}
	assert.Equal(t, "not_blank", byField["name"].Code)
	assert.Equal(t, "Name is required", byField["name"].Message)
	assert.Equal(t, "Invalid email address", byField["email"].Message)
	assert.Equal(t, "min", byField["message"].Code)
	assert.Equal(t, "Message must be at least 10 characters", byField["message"].Message)
}

func TestLengthCountsRunes(t *testing.T) {
	v := validation.New()
	s := valid()
	s.Name = strings.Repeat("é", 100)
	assert.NoError(t, v.Struct(s))

	s.Name = strings.Repeat("é", 101)
	violations := validation.Violations(v.Struct(s))
	require.Len(t, violations, 1)
	assert.Equal(t, "Name too long", violations[0].Message)
}

func TestCalendarDate(t *testing.T) {
	v := validation.New()
	for _, ok := range []string{"", "2025-01-02", "2025-01-02T10:30:00Z", "2025-01-02T10:30"} {
		s := valid()
		s.PreferredDate = ok
		assert.NoError(t, v.Struct(s), ok)
	}

	for _, bad := range []string{"tomorrow", "2025-13-01", "02/01/2025"} {
		s := valid()
		s.PreferredDate = bad
		violations := validation.Violations(v.Struct(s))
		require.Len(t, violations, 1, bad)
		assert.Equal(t, "calendar_date", violations[0].Code)
	}
}

func TestParseCalendarDateKeepsDay(t *testing.T) {
	d, ok := validation.ParseCalendarDate("2025-01-02")
	require.True(t, ok)
	assert.Equal(t, 2, d.Day())

	d, ok = validation.ParseCalendarDate("2025-01-02T23:30:00-05:00")
	require.True(t, ok)
	assert.Equal(t, 2, d.Day())
}

func TestViolationsForNonValidatorError(t *testing.T) {
	violations := validation.Violations(errors.New("unexpected EOF"))
	require.Len(t, violations, 1)
	assert.Equal(t, "body", violations[0].Field)
	assert.Equal(t, "unexpected EOF", violations[0].Message)
	assert.Nil(t, validation.Violations(nil))
}

func TestDecodeViolations(t *testing.T) {
	var target struct {
		Name string `json:"name"`
	}

	err := json.Unmarshal([]byte(`{"name": 42}`), &target)
	violations := validation.DecodeViolations(err)
	require.Len(t, violations, 1)
	assert.Equal(t, "name", violations[0].Field)
	assert.Equal(t, "type", violations[0].Code)
	assert.Equal(t, "Name must be a number", violations[0].Message)

	err = json.Unmarshal([]byte(`{"name":`), &target)
	violations = validation.DecodeViolations(err)
	require.Len(t, violations, 1)
	assert.Equal(t, "body", violations[0].Field)
	assert.Equal(t, "Request body must be valid JSON", violations[0].Message)

	violations = validation.DecodeViolations(io.EOF)
	assert.Equal(t, "required", violations[0].Code)
}
