package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"episolve-backend/internal/domain"
)

type subscriberRepo struct {
	db *sql.DB
}

// NewSubscriberRepository returns a SubscriberRepository backed by SQLite.
// The database must be opened with IMMEDIATE transactions (see database.OpenSQLite).
func NewSubscriberRepository(db *sql.DB) domain.SubscriberRepository {
	return &subscriberRepo{db: db}
}

func (r *subscriberRepo) Subscribe(ctx context.Context, sub *domain.NewsletterSubscriber) (domain.SubscriptionOutcome, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin subscribe: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO newsletter_subscribers (id, email, subscribed_at)
		VALUES (?, ?, ?)
		ON CONFLICT (email) DO NOTHING`,
		sub.ID, sub.Email, formatTime(sub.SubscribedAt))
	if err != nil {
		return "", fmt.Errorf("insert subscriber: %w", err)
	}
	outcome := domain.SubscriptionCreated

	if n, _ := res.RowsAffected(); n == 0 {
		res, err = tx.ExecContext(ctx, `
			UPDATE newsletter_subscribers
			SET unsubscribed_at = NULL, subscribed_at = ?
			WHERE email = ? AND unsubscribed_at IS NOT NULL`,
			formatTime(sub.SubscribedAt), sub.Email)
		if err != nil {
			return "", fmt.Errorf("reactivate subscriber: %w", err)
		}
		outcome = domain.SubscriptionAlreadyActive
		if n, _ := res.RowsAffected(); n == 1 {
			outcome = domain.SubscriptionReactivated
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit subscribe: %w", err)
	}
	return outcome, nil
}

func (r *subscriberRepo) GetByEmail(ctx context.Context, email string) (*domain.NewsletterSubscriber, error) {
	var (
		sub            domain.NewsletterSubscriber
		subscribedAt   string
		unsubscribedAt sql.NullString
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, subscribed_at, unsubscribed_at FROM newsletter_subscribers WHERE email = ?`,
		email,
	).Scan(&sub.ID, &sub.Email, &subscribedAt, &unsubscribedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSubscriberNotFound
		}
		return nil, fmt.Errorf("get subscriber: %w", err)
	}

	if sub.SubscribedAt, err = parseTime(subscribedAt); err != nil {
		return nil, fmt.Errorf("parse subscribed_at: %w", err)
	}
	if unsubscribedAt.Valid {
		t, err := parseTime(unsubscribedAt.String)
		if err != nil {
			return nil, fmt.Errorf("parse unsubscribed_at: %w", err)
		}
		sub.UnsubscribedAt = &t
	}
	return &sub, nil
}

func (r *subscriberRepo) Unsubscribe(ctx context.Context, email string, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE newsletter_subscribers SET unsubscribed_at = ? WHERE email = ? AND unsubscribed_at IS NULL`,
		formatTime(at), email)
	if err != nil {
		return fmt.Errorf("unsubscribe: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByEmail(ctx, email); err != nil {
			return err
		}
	}
	return nil
}
