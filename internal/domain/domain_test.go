package domain

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSubscriberState(t *testing.T) {
	var missing *NewsletterSubscriber
	assert.Equal(t, StateUnknown, missing.State())

	sub := &NewsletterSubscriber{Email: "a@example.com", SubscribedAt: time.Now()}
	assert.Equal(t, StateActive, sub.State())

	at := time.Now()
	sub.UnsubscribedAt = &at
	assert.Equal(t, StateInactive, sub.State())
}

func TestOutcomeSendsWelcome(t *testing.T) {
	assert.True(t, SubscriptionCreated.SendsWelcome())
	assert.True(t, SubscriptionReactivated.SendsWelcome())
	assert.False(t, SubscriptionAlreadyActive.SendsWelcome())
}

func TestNormalize(t *testing.T) {
	req := SubscribeRequest{Email: "  Ada@Example.COM "}
	req.Normalize()
	assert.Equal(t, "ada@example.com", req.Email)

	contact := ContactRequest{Name: "  Ada ", Message: "\n hello world \t", Phone: " 123 "}
	contact.Normalize()
	assert.Equal(t, "Ada", contact.Name)
	assert.Equal(t, "hello world", contact.Message)
	assert.Equal(t, " 123 ", contact.Phone)
}

func TestRequestIDFrom(t *testing.T) {
	assert.Equal(t, "", RequestIDFrom(context.Background()))
	ctx := context.WithValue(context.Background(), KeyRequestID, "req-1")
	assert.Equal(t, "req-1", RequestIDFrom(ctx))
}
