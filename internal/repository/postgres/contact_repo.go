package postgres

import (
	"context"
	"fmt"

	"episolve-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type contactRepo struct {
	db *pgxpool.Pool
}

func NewContactRepository(db *pgxpool.Pool) domain.ContactRepository {
	return &contactRepo{db: db}
}

func (r *contactRepo) Create(ctx context.Context, s *domain.ContactSubmission) error {
	query := `INSERT INTO contact_submissions (id, name, email, phone, company, service_interest, message, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		s.ID, s.Name, s.Email,
		nullIfEmpty(s.Phone), nullIfEmpty(s.Company), nullIfEmpty(s.ServiceInterest),
		s.Message, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contact submission: %w", err)
	}
	return nil
}
