package domain

import (
	"context"
	"strings"
	"time"
)

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name    string `json:"name" validate:"required,not_blank,max=100"`
	Email   string `json:"email" validate:"required,max=254,email"`
	Phone   string `json:"phone" validate:"omitempty,max=20"`
	Company string `json:"company" validate:"omitempty,max=100"`
	Service string `json:"service" validate:"omitempty,max=100"`
	Message string `json:"message" validate:"required,min=10,max=2000"`
}

// Normalize trims the fields whose bounds apply to the trimmed value.
func (r *ContactRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Message = strings.TrimSpace(r.Message)
}

// ContactSubmission is the stored row in contact_submissions. Empty optional fields are stored as NULL.
type ContactSubmission struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone,omitempty"`
	Company         string    `json:"company,omitempty"`
	ServiceInterest string    `json:"service_interest,omitempty"`
	Message         string    `json:"message"`
	CreatedAt       time.Time `json:"created_at"`
}

// ContactRepository is append-only.
type ContactRepository interface {
	Create(ctx context.Context, submission *ContactSubmission) error
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// Submit stores the submission, then notifies the submitter and the admin inbox.
	Submit(ctx context.Context, req *ContactRequest) (*ContactSubmission, error)
}
