package postgres

import (
	"context"
	"fmt"

	"episolve-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type bookingRepo struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) domain.BookingRepository {
	return &bookingRepo{db: db}
}

func (r *bookingRepo) Create(ctx context.Context, b *domain.ConsultationBooking) error {
	query := `INSERT INTO consultation_bookings (id, name, email, phone, company, preferred_date, message, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		b.ID, b.Name, b.Email,
		nullIfEmpty(b.Phone), nullIfEmpty(b.Company), nullIfEmpty(b.PreferredDate), nullIfEmpty(b.Message),
		b.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert consultation booking: %w", err)
	}
	return nil
}
