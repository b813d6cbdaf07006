package usecase

import (
	"context"
	"fmt"
	"time"

	"episolve-backend/internal/domain"
	"episolve-backend/pkg/apperror"
	"episolve-backend/pkg/email"
	"episolve-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type newsletterUsecase struct {
	repo     domain.SubscriberRepository
	validate *validator.Validate
	notifier *notifier
	cfg      Config
}

func NewNewsletterUsecase(repo domain.SubscriberRepository, sender email.Sender, validate *validator.Validate, cfg Config) domain.NewsletterUsecase {
	cfg = cfg.withDefaults()
	return &newsletterUsecase{
		repo:     repo,
		validate: validate,
		notifier: newNotifier(sender, cfg.EmailTimeout),
		cfg:      cfg,
	}
}

// Subscribe activates the address and sends a welcome email on unknown->active
// and inactive->active. An already active address is left untouched.
func (uc *newsletterUsecase) Subscribe(ctx context.Context, req *domain.SubscribeRequest) (domain.SubscriptionOutcome, error) {
	req.Normalize()
	if err := validateRequest(uc.validate, req, "Invalid email address"); err != nil {
		return "", err
	}

	storeCtx, cancel := uc.cfg.storeContext(ctx)
	defer cancel()
	outcome, err := uc.repo.Subscribe(storeCtx, &domain.NewsletterSubscriber{
		ID:           uuid.NewString(),
		Email:        req.Email,
		SubscribedAt: time.Now().UTC(),
	})
	if err != nil {
		return "", apperror.Internal(fmt.Errorf("save subscription: %w", err))
	}
	logger.Log.Info("newsletter_subscription", "outcome", string(outcome), "request_id", domain.RequestIDFrom(ctx))

	if !outcome.SendsWelcome() {
		return outcome, nil
	}

	html, err := email.RenderWelcome()
	if err != nil {
		logger.Log.Error("welcome_render_failed", "error", err)
		return outcome, nil
	}
	uc.notifier.dispatch(ctx, outgoing{kind: "newsletter_welcome", msg: email.Message{
		From:    uc.cfg.SenderFrom,
		To:      []string{req.Email},
		Subject: "Welcome to Episolve Insights",
		HTML:    html,
	}})

	return outcome, nil
}
