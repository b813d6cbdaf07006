package domain

import (
	"context"
	"strings"
	"time"
)

// BookingRequest is the consultation-booking dialog payload.
type BookingRequest struct {
	Name          string `json:"name" validate:"required,not_blank,max=100"`
	Email         string `json:"email" validate:"required,max=254,email"`
	Phone         string `json:"phone" validate:"omitempty,max=20"`
	Company       string `json:"company" validate:"omitempty,max=100"`
	PreferredDate string `json:"preferredDate" validate:"omitempty,max=50,calendar_date"`
	Message       string `json:"message" validate:"omitempty,max=2000"`
}

func (r *BookingRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.PreferredDate = strings.TrimSpace(r.PreferredDate)
}

// ConsultationBooking is the stored row in consultation_bookings.
// PreferredDate keeps the string as received.
type ConsultationBooking struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	Company       string    `json:"company,omitempty"`
	PreferredDate string    `json:"preferred_date,omitempty"`
	Message       string    `json:"message,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type BookingRepository interface {
	Create(ctx context.Context, booking *ConsultationBooking) error
}

type BookingUsecase interface {
	Book(ctx context.Context, req *BookingRequest) (*ConsultationBooking, error)
}
