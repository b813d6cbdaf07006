package domain

import (
	"context"
	"errors"
	"strings"
	"time"
)

var ErrSubscriberNotFound = errors.New("subscriber not found")

// SubscribeRequest is the newsletter signup payload.
type SubscribeRequest struct {
	Email string `json:"email" validate:"required,max=255,email"`
}

func (r *SubscribeRequest) Normalize() {
	r.Email = NormalizeEmail(r.Email)
}

// NormalizeEmail produces the natural key for newsletter_subscribers.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SubscriptionState is derived from the stored row.
type SubscriptionState string

const (
	StateUnknown  SubscriptionState = "unknown"
	StateActive   SubscriptionState = "active"
	StateInactive SubscriptionState = "inactive"
)

// SubscriptionOutcome names the transition a Subscribe call performed.
type SubscriptionOutcome string

const (
	SubscriptionCreated       SubscriptionOutcome = "created"        // unknown -> active
	SubscriptionReactivated   SubscriptionOutcome = "reactivated"    // inactive -> active
	SubscriptionAlreadyActive SubscriptionOutcome = "already_active" // active -> active
)

// SendsWelcome reports whether the outcome entitles the address to a welcome email.
func (o SubscriptionOutcome) SendsWelcome() bool {
	return o == SubscriptionCreated || o == SubscriptionReactivated
}

type NewsletterSubscriber struct {
	ID             string     `json:"id"`
	Email          string     `json:"email"`
	SubscribedAt   time.Time  `json:"subscribed_at"`
	UnsubscribedAt *time.Time `json:"unsubscribed_at,omitempty"`
}

func (s *NewsletterSubscriber) State() SubscriptionState {
	if s == nil {
		return StateUnknown
	}
	if s.UnsubscribedAt != nil {
		return StateInactive
	}
	return StateActive
}

// SubscriberRepository stores one row per email address.
type SubscriberRepository interface {
	// Subscribe atomically moves the address to active and reports which
	// transition happened. sub.ID is used only when a row is inserted.
	Subscribe(ctx context.Context, sub *NewsletterSubscriber) (SubscriptionOutcome, error)
	GetByEmail(ctx context.Context, email string) (*NewsletterSubscriber, error)
	// Unsubscribe marks an active address inactive. Not exposed over HTTP.
	Unsubscribe(ctx context.Context, email string, at time.Time) error
}

type NewsletterUsecase interface {
	Subscribe(ctx context.Context, req *SubscribeRequest) (SubscriptionOutcome, error)
}
