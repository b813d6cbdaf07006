package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"episolve-backend/internal/domain"
)

type contactRepo struct {
	db *sql.DB
}

// NewContactRepository returns a ContactRepository backed by SQLite.
func NewContactRepository(db *sql.DB) domain.ContactRepository {
	return &contactRepo{db: db}
}

func (r *contactRepo) Create(ctx context.Context, s *domain.ContactSubmission) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO contact_submissions (id, name, email, phone, company, service_interest, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Name, s.Email,
		nullIfEmpty(s.Phone), nullIfEmpty(s.Company), nullIfEmpty(s.ServiceInterest),
		s.Message, formatTime(s.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert contact submission: %w", err)
	}
	return nil
}
