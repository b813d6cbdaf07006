package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"episolve-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type subscriberRepo struct {
	db *pgxpool.Pool
}

func NewSubscriberRepository(db *pgxpool.Pool) domain.SubscriberRepository {
	return &subscriberRepo{db: db}
}

// Subscribe relies on the unique email constraint for the insert and on the
// row lock taken by the conditional UPDATE, so concurrent calls for one
// address produce one row and at most one reactivation.
func (r *subscriberRepo) Subscribe(ctx context.Context, sub *domain.NewsletterSubscriber) (domain.SubscriptionOutcome, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("begin subscribe: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`INSERT INTO newsletter_subscribers (id, email, subscribed_at)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (email) DO NOTHING`,
		sub.ID, sub.Email, sub.SubscribedAt)
	if err != nil {
		return "", fmt.Errorf("insert subscriber: %w", err)
	}
	outcome := domain.SubscriptionCreated

	if tag.RowsAffected() == 0 {
		tag, err = tx.Exec(ctx,
			`UPDATE newsletter_subscribers
			 SET unsubscribed_at = NULL, subscribed_at = $2
			 WHERE email = $1 AND unsubscribed_at IS NOT NULL`,
			sub.Email, sub.SubscribedAt)
		if err != nil {
			return "", fmt.Errorf("reactivate subscriber: %w", err)
		}
		outcome = domain.SubscriptionAlreadyActive
		if tag.RowsAffected() == 1 {
			outcome = domain.SubscriptionReactivated
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("commit subscribe: %w", err)
	}
	return outcome, nil
}

func (r *subscriberRepo) GetByEmail(ctx context.Context, email string) (*domain.NewsletterSubscriber, error) {
	query := `SELECT id, email, subscribed_at, unsubscribed_at FROM newsletter_subscribers WHERE email = $1`
	var sub domain.NewsletterSubscriber
	err := r.db.QueryRow(ctx, query, email).Scan(&sub.ID, &sub.Email, &sub.SubscribedAt, &sub.UnsubscribedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSubscriberNotFound
		}
		return nil, fmt.Errorf("get subscriber: %w", err)
	}
	return &sub, nil
}

func (r *subscriberRepo) Unsubscribe(ctx context.Context, email string, at time.Time) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE newsletter_subscribers SET unsubscribed_at = $2
		 WHERE email = $1 AND unsubscribed_at IS NULL`,
		email, at)
	if err != nil {
		return fmt.Errorf("unsubscribe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.GetByEmail(ctx, email); err != nil {
			return err
		}
	}
	return nil
}
