package email

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/resend/resend-go/v2"
)

// ResendSender sends emails via the Resend API.
type ResendSender struct {
	client *resend.Client
}

// NewResendSender creates a sender whose HTTP calls are capped at timeout.
func NewResendSender(apiKey string, timeout time.Duration) *ResendSender {
	httpClient := &http.Client{Timeout: timeout}
	return &ResendSender{client: resend.NewCustomClient(httpClient, apiKey)}
}

// WithBaseURL points the sender at another API host (tests, regional endpoints).
func (s *ResendSender) WithBaseURL(raw string) (*ResendSender, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("resend base url: %w", err)
	}
	s.client.BaseURL = u
	return s, nil
}

// Send submits one email and returns the Resend message ID.
func (s *ResendSender) Send(ctx context.Context, msg Message) (Result, error) {
	if len(msg.To) == 0 {
		return Result{}, errors.New("resend: at least one recipient is required")
	}

	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
	}
	if msg.ReplyTo != "" {
		params.ReplyTo = msg.ReplyTo
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return Result{}, fmt.Errorf("resend send failed: %w", err)
	}

	return Result{
		MessageID: sent.Id,
		SentAt:    time.Now(),
	}, nil
}
