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
	"episolve-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// DateNotSpecified is shown when a booking has no preferred date.
const DateNotSpecified = "Not specified"

type bookingUsecase struct {
	repo     domain.BookingRepository
	validate *validator.Validate
	notifier *notifier
	cfg      Config
}

func NewBookingUsecase(repo domain.BookingRepository, sender email.Sender, validate *validator.Validate, cfg Config) domain.BookingUsecase {
	cfg = cfg.withDefaults()
	return &bookingUsecase{
		repo:     repo,
		validate: validate,
		notifier: newNotifier(sender, cfg.EmailTimeout),
		cfg:      cfg,
	}
}

// FormatPreferredDate renders a date as "Thursday, January 2, 2025" in the
// offset it was written in. Empty or unparseable input yields DateNotSpecified.
func FormatPreferredDate(raw string) string {
	if raw == "" {
		return DateNotSpecified
	}
	d, ok := validation.ParseCalendarDate(raw)
	if !ok {
		return DateNotSpecified
	}
	return d.Format("Monday, January 2, 2006")
}

func (uc *bookingUsecase) Book(ctx context.Context, req *domain.BookingRequest) (*domain.ConsultationBooking, error) {
	req.Normalize()
	if err := validateRequest(uc.validate, req, "Invalid input"); err != nil {
		return nil, err
	}

	booking := &domain.ConsultationBooking{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Company:       req.Company,
		PreferredDate: req.PreferredDate,
		Message:       req.Message,
		CreatedAt:     time.Now().UTC(),
	}

	storeCtx, cancel := uc.cfg.storeContext(ctx)
	defer cancel()
	if err := uc.repo.Create(storeCtx, booking); err != nil {
		return nil, apperror.Internal(fmt.Errorf("store consultation booking: %w", err))
	}
	logger.Log.Info("consultation_booking_stored", "id", booking.ID, "request_id", domain.RequestIDFrom(ctx))

	view := email.BookingView{
		Name:          htmlsafe.Escape(booking.Name),
		Email:         htmlsafe.Escape(booking.Email),
		Phone:         htmlsafe.EscapeOptional(booking.Phone),
		Company:       htmlsafe.EscapeOptional(booking.Company),
		PreferredDate: htmlsafe.Escape(FormatPreferredDate(booking.PreferredDate)),
		Message:       htmlsafe.EscapeOptional(booking.Message),
	}

	userHTML, err := email.RenderBookingUser(view)
	if err != nil {
		logger.Log.Error("email_render_failed", "id", booking.ID, "error", err)
		return booking, nil
	}
	adminHTML, err := email.RenderBookingAdmin(view)
	if err != nil {
		logger.Log.Error("email_render_failed", "id", booking.ID, "error", err)
		return booking, nil
	}

	uc.notifier.dispatch(ctx,
		outgoing{kind: "booking_user", msg: email.Message{
			From:    uc.cfg.SenderFrom,
			To:      []string{booking.Email},
			Subject: "Your Strategic Audit Booking - Episolve",
			HTML:    userHTML,
		}},
		outgoing{kind: "booking_admin", msg: email.Message{
			From:    uc.cfg.WebsiteFrom,
			To:      []string{uc.cfg.AdminTo},
			Subject: "New Strategic Audit Booking from " + view.Name,
			HTML:    adminHTML,
			ReplyTo: booking.Email,
		}},
	)

	return booking, nil
}
