package email

import (
	"context"
	"time"
)

// Message is one transactional email handed to the gateway.
type Message struct {
	From    string   // e.g. "Episolve <onboarding@resend.dev>"
	To      []string // Recipient addresses
	Subject string
	HTML    string // Rendered body; user values already escaped
	ReplyTo string
}

// Result is the gateway's acknowledgement of an accepted message.
type Result struct {
	MessageID string
	SentAt    time.Time
}

// Sender delivers a single email through an external provider.
type Sender interface {
	Send(ctx context.Context, msg Message) (Result, error)
}
