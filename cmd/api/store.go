package main

import (
	"context"
	"fmt"

	"episolve-backend/config"
	"episolve-backend/internal/domain"
	"episolve-backend/internal/repository/postgres"
	"episolve-backend/internal/repository/sqlite"
	"episolve-backend/internal/usecase"
	"episolve-backend/pkg/database"
	"episolve-backend/pkg/logger"
)

type repositories struct {
	contact    domain.ContactRepository
	booking    domain.BookingRepository
	subscriber domain.SubscriberRepository
	ping       usecase.Pinger
	close      func()
}

// openRepositories picks Postgres for postgres:// URLs and SQLite for
// anything else, running migrations first when enabled.
func openRepositories(ctx context.Context, cfg *config.Config) (*repositories, error) {
	if database.IsPostgresURL(cfg.DBUrl) {
		if cfg.RunMigrations {
			if err := database.MigratePostgres(ctx, cfg.DBUrl); err != nil {
				return nil, fmt.Errorf("migrate postgres: %w", err)
			}
		}
		pool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
		if err != nil {
			return nil, err
		}
		logger.Log.Info("Using postgres store")
		return &repositories{
			contact:    postgres.NewContactRepository(pool),
			booking:    postgres.NewBookingRepository(pool),
			subscriber: postgres.NewSubscriberRepository(pool),
			ping:       pool.Ping,
			close:      pool.Close,
		}, nil
	}

	path := database.SQLitePath(cfg.DBUrl)
	db, err := database.OpenSQLite(path)
	if err != nil {
		return nil, err
	}
	if cfg.RunMigrations {
		if err := database.MigrateSQLite(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate sqlite: %w", err)
		}
	}
	logger.Log.Info("Using sqlite store", "path", path)
	return &repositories{
		contact:    sqlite.NewContactRepository(db),
		booking:    sqlite.NewBookingRepository(db),
		subscriber: sqlite.NewSubscriberRepository(db),
		ping:       db.PingContext,
		close:      func() { _ = db.Close() },
	}, nil
}
