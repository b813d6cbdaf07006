package email

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"episolve-backend/pkg/security"
)

// NoopSender logs sends but does not deliver them. Used when no provider key is configured.
type NoopSender struct {
	log *slog.Logger
}

func NewNoopSender(log *slog.Logger) *NoopSender {
	return &NoopSender{log: log}
}

func (s *NoopSender) Send(_ context.Context, msg Message) (Result, error) {
	s.log.Info("noop_email_send", "to", MaskedRecipients(msg.To), "subject", msg.Subject)
	return Result{
		MessageID: fmt.Sprintf("noop-%d", time.Now().UnixNano()),
		SentAt:    time.Now(),
	}, nil
}

// MaskedRecipients is the log-safe form of a recipient list.
func MaskedRecipients(to []string) []string {
	masked := make([]string, len(to))
	for i, addr := range to {
		masked[i] = security.MaskEmail(addr)
	}
	return masked
}
