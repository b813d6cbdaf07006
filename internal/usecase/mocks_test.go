package usecase_test

import (
	"context"
	"time"

	"episolve-backend/internal/domain"
	"episolve-backend/internal/usecase"
	"episolve-backend/pkg/email"
	"episolve-backend/pkg/validation"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockContactRepo struct {
	mock.Mock
}

func (m *MockContactRepo) Create(ctx context.Context, s *domain.ContactSubmission) error {
	return m.Called(ctx, s).Error(0)
}

type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, b *domain.ConsultationBooking) error {
	return m.Called(ctx, b).Error(0)
}

type MockSubscriberRepo struct {
	mock.Mock
}

func (m *MockSubscriberRepo) Subscribe(ctx context.Context, sub *domain.NewsletterSubscriber) (domain.SubscriptionOutcome, error) {
	args := m.Called(ctx, sub)
	return args.Get(0).(domain.SubscriptionOutcome), args.Error(1)
}

func (m *MockSubscriberRepo) GetByEmail(ctx context.Context, email string) (*domain.NewsletterSubscriber, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NewsletterSubscriber), args.Error(1)
}

func (m *MockSubscriberRepo) Unsubscribe(ctx context.Context, email string, at time.Time) error {
	return m.Called(ctx, email, at).Error(0)
}

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg email.Message) (email.Result, error) {
	args := m.Called(ctx, msg)
	return args.Get(0).(email.Result), args.Error(1)
}

// sent returns every message the sender was asked to deliver, in call order.
func (m *MockSender) sent() []email.Message {
	var out []email.Message
	for _, c := range m.Calls {
		if c.Method == "Send" {
			out = append(out, c.Arguments.Get(1).(email.Message))
		}
	}
	return out
}

// to returns the single sent message addressed to addr.
func (m *MockSender) to(addr string) (email.Message, bool) {
	for _, msg := range m.sent() {
		for _, rcpt := range msg.To {
			if rcpt == addr {
				return msg, true
			}
		}
	}
	return email.Message{}, false
}

func okResult() email.Result {
	return email.Result{MessageID: "msg_1", SentAt: time.Now()}
}

const adminInbox = "contact@episolve.com"

func testConfig() usecase.Config {
	return usecase.Config{
		SenderFrom:   "Episolve <onboarding@resend.dev>",
		WebsiteFrom:  "Episolve Website <onboarding@resend.dev>",
		AdminTo:      adminInbox,
		StoreTimeout: time.Second,
		EmailTimeout: time.Second,
	}
}

var validate = validation.New()
