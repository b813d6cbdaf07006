package security

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMaskEmail(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"jane@example.com", "j***@example.com"},
		{"j@example.com", "***@example.com"},
		{"ab", "***"},
		{"not-an-email", "n***"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskEmail(tt.in))
		})
	}
}

func TestSecurityLogger_Events(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sl := NewSecurityLoggerWithZap(zap.New(core), "episolve-backend", "test")

	sl.LogRateLimitTriggered(context.Background(), "10.0.0.1", "curl/8", "req-1", "/send-contact-email")
	sl.LogValidationFailed(context.Background(), "10.0.0.2", "req-2", "/subscribe-newsletter", []string{"email"})

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "rate_limit_triggered", entries[0].Message)
	assert.Equal(t, "10.0.0.1", entries[0].ContextMap()["ip"])
	assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])

	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, "validation_failed", entries[1].Message)
	assert.Contains(t, entries[1].ContextMap()["details"], `"fields":["email"]`)
}

func TestSecurityLogger_NilIsNoop(t *testing.T) {
	var sl *SecurityLogger
	assert.NotPanics(t, func() {
		sl.LogRateLimitTriggered(context.Background(), "ip", "ua", "id", "/x")
		_ = sl.Sync()
	})
}
