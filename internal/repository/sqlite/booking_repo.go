package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"episolve-backend/internal/domain"
)

type bookingRepo struct {
	db *sql.DB
}

// NewBookingRepository returns a BookingRepository backed by SQLite.
func NewBookingRepository(db *sql.DB) domain.BookingRepository {
	return &bookingRepo{db: db}
}

func (r *bookingRepo) Create(ctx context.Context, b *domain.ConsultationBooking) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO consultation_bookings (id, name, email, phone, company, preferred_date, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.Name, b.Email,
		nullIfEmpty(b.Phone), nullIfEmpty(b.Company), nullIfEmpty(b.PreferredDate), nullIfEmpty(b.Message),
		formatTime(b.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert consultation booking: %w", err)
	}
	return nil
}
