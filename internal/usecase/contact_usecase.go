package usecase

import (
	"context"
	"fmt"
	"time"

	"episolve-backend/internal/domain"
	"episolve-backend/pkg/apperror"
	"episolve-backend/pkg/email"
	"episolve-backend/pkg/htmlsafe"
	"episolve-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type contactUsecase struct {
	repo     domain.ContactRepository
	validate *validator.Validate
	notifier *notifier
	cfg      Config
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(repo domain.ContactRepository, sender email.Sender, validate *validator.Validate, cfg Config) domain.ContactUsecase {
	cfg = cfg.withDefaults()
	return &contactUsecase{
		repo:     repo,
		validate: validate,
		notifier: newNotifier(sender, cfg.EmailTimeout),
		cfg:      cfg,
	}
}

func (uc *contactUsecase) Submit(ctx context.Context, req *domain.ContactRequest) (*domain.ContactSubmission, error) {
	req.Normalize()
	if err := validateRequest(uc.validate, req, "Invalid input"); err != nil {
		return nil, err
	}

	submission := &domain.ContactSubmission{
		ID:              uuid.NewString(),
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Company:         req.Company,
		ServiceInterest: req.Service,
		Message:         req.Message,
		CreatedAt:       time.Now().UTC(),
	}

	storeCtx, cancel := uc.cfg.storeContext(ctx)
	defer cancel()
	if err := uc.repo.Create(storeCtx, submission); err != nil {
		return nil, apperror.Internal(fmt.Errorf("store contact submission: %w", err))
	}
	logger.Log.Info("contact_submission_stored", "id", submission.ID, "request_id", domain.RequestIDFrom(ctx))

	view := email.ContactView{
		Name:    htmlsafe.Escape(submission.Name),
		Email:   htmlsafe.Escape(submission.Email),
		Phone:   htmlsafe.EscapeOptional(submission.Phone),
		Company: htmlsafe.EscapeOptional(submission.Company),
		Service: htmlsafe.EscapeOptional(submission.ServiceInterest),
		Message: htmlsafe.Escape(submission.Message),
	}

	userHTML, err := email.RenderContactUser(view)
	if err != nil {
		logger.Log.Error("email_render_failed", "id", submission.ID, "error", err)
		return submission, nil
	}
	adminHTML, err := email.RenderContactAdmin(view)
	if err != nil {
		logger.Log.Error("email_render_failed", "id", submission.ID, "error", err)
		return submission, nil
	}

	uc.notifier.dispatch(ctx,
		outgoing{kind: "contact_user", msg: email.Message{
			From:    uc.cfg.SenderFrom,
			To:      []string{submission.Email},
			Subject: "We've received your message - Episolve",
			HTML:    userHTML,
		}},
		outgoing{kind: "contact_admin", msg: email.Message{
			From:    uc.cfg.WebsiteFrom,
			To:      []string{uc.cfg.AdminTo},
			Subject: "New Contact Form Submission from " + view.Name,
			HTML:    adminHTML,
			ReplyTo: submission.Email,
		}},
	)

	return submission, nil
}
