package usecase

import (
	"context"
	"time"

	"episolve-backend/pkg/apperror"
	"episolve-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// Config carries the notification addresses and the per-call deadlines shared by the form usecases.
type Config struct {
	SenderFrom   string // user-facing confirmations and welcome mail
	WebsiteFrom  string // internal notifications
	AdminTo      string
	StoreTimeout time.Duration
	EmailTimeout time.Duration
}

const (
	defaultStoreTimeout = 5 * time.Second
	defaultEmailTimeout = 10 * time.Second
)

func (c Config) withDefaults() Config {
	if c.StoreTimeout <= 0 {
		c.StoreTimeout = defaultStoreTimeout
	}
	if c.EmailTimeout <= 0 {
		c.EmailTimeout = defaultEmailTimeout
	}
	return c
}

func (c Config) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.StoreTimeout)
}

// validateRequest runs the struct rules and maps failures to a 400 with field details.
func validateRequest(v *validator.Validate, req interface{}, message string) error {
	if err := v.Struct(req); err != nil {
		return apperror.Validation(message, validation.Violations(err))
	}
	return nil
}
