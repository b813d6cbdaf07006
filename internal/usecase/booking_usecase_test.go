package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"episolve-backend/internal/domain"
	"episolve-backend/internal/usecase"
	"episolve-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFormatPreferredDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2025-01-02", "Thursday, January 2, 2025"},
		{"2024-02-29", "Thursday, February 29, 2024"},
		{"2025-01-02T23:30:00-08:00", "Thursday, January 2, 2025"},
		{"", usecase.DateNotSpecified},
		{"next week", usecase.DateNotSpecified},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, usecase.FormatPreferredDate(tt.in), tt.in)
	}
}

func TestBookingBook(t *testing.T) {
	t.Run("Should render the formatted date in both emails", func(t *testing.T) {
		repo := new(MockBookingRepo)
		sender := new(MockSender)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.ConsultationBooking) bool {
			return b.PreferredDate == "2025-01-02"
		})).Return(nil).Once()
		sender.On("Send", mock.Anything, mock.Anything).Return(okResult(), nil).Twice()

		uc := usecase.NewBookingUsecase(repo, sender, validate, testConfig())
		_, err := uc.Book(context.Background(), &domain.BookingRequest{
			Name:          "Grace Hopper",
			Email:         "grace@example.com",
			Company:       "Navy",
			PreferredDate: "2025-01-02",
			Message:       "Compiler audit",
		})
		require.NoError(t, err)
		repo.AssertExpectations(t)
		sender.AssertExpectations(t)

		user, ok := sender.to("grace@example.com")
		require.True(t, ok)
		assert.Equal(t, "Your Strategic Audit Booking - Episolve", user.Subject)
		assert.Contains(t, user.HTML, "Thursday, January 2, 2025")
		assert.Contains(t, user.HTML, "Additional Notes:</strong> Compiler audit")

		admin, ok := sender.to(adminInbox)
		require.True(t, ok)
		assert.Equal(t, "New Strategic Audit Booking from Grace Hopper", admin.Subject)
		assert.Contains(t, admin.HTML, "Thursday, January 2, 2025")
		assert.Equal(t, "grace@example.com", admin.ReplyTo)
	})

	t.Run("Should render Not specified when the date is omitted", func(t *testing.T) {
		repo := new(MockBookingRepo)
		sender := new(MockSender)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)
		sender.On("Send", mock.Anything, mock.Anything).Return(okResult(), nil)

		uc := usecase.NewBookingUsecase(repo, sender, validate, testConfig())
		_, err := uc.Book(context.Background(), &domain.BookingRequest{Name: "Grace", Email: "grace@example.com"})
		require.NoError(t, err)

		msgs := sender.sent()
		require.Len(t, msgs, 2)
		for _, msg := range msgs {
			assert.Contains(t, msg.HTML, "Preferred Date:</strong> Not specified")
			assert.NotContains(t, msg.HTML, "Additional Notes")
		}
	})

	t.Run("Should reject an unparseable date", func(t *testing.T) {
		repo := new(MockBookingRepo)
		sender := new(MockSender)
		uc := usecase.NewBookingUsecase(repo, sender, validate, testConfig())

		_, err := uc.Book(context.Background(), &domain.BookingRequest{
			Name: "Grace", Email: "grace@example.com", PreferredDate: "someday",
		})
		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should escape notes", func(t *testing.T) {
		repo := new(MockBookingRepo)
		sender := new(MockSender)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)
		sender.On("Send", mock.Anything, mock.Anything).Return(okResult(), nil)

		uc := usecase.NewBookingUsecase(repo, sender, validate, testConfig())
		_, err := uc.Book(context.Background(), &domain.BookingRequest{
			Name: "Grace", Email: "grace@example.com", Message: "<script>steal()</script>",
		})
		require.NoError(t, err)
		for _, msg := range sender.sent() {
			assert.Contains(t, msg.HTML, "&lt;script&gt;steal()&lt;/script&gt;")
			assert.NotContains(t, msg.HTML, "<script>")
		}
	})

	t.Run("Should not email when storage fails", func(t *testing.T) {
		repo := new(MockBookingRepo)
		sender := new(MockSender)
		repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("timeout"))

		uc := usecase.NewBookingUsecase(repo, sender, validate, testConfig())
		_, err := uc.Book(context.Background(), &domain.BookingRequest{Name: "Grace", Email: "grace@example.com"})

		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusInternalServerError, appErr.Code)
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})
}
