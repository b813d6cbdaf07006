package database

import (
	"database/sql"
	"fmt"
	"strings"

	"episolve-backend/pkg/logger"

	_ "modernc.org/sqlite"
)

// sqlitePragmas: WAL, 5s busy wait, and IMMEDIATE transactions so a writer
// takes the lock at BEGIN instead of failing on upgrade.
const sqlitePragmas = "_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)&_txlock=immediate"

// IsPostgresURL reports whether a DATABASE_URL targets Postgres rather than a SQLite file.
func IsPostgresURL(url string) bool {
	return strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://")
}

// SQLitePath strips an optional sqlite:// or file: scheme.
func SQLitePath(url string) string {
	url = strings.TrimPrefix(url, "sqlite://")
	return strings.TrimPrefix(url, "file:")
}

// OpenSQLite opens (creating if needed) the database file at path.
func OpenSQLite(path string) (*sql.DB, error) {
	dsn := path + "?" + sqlitePragmas
	if strings.Contains(path, "?") {
		dsn = path + "&" + sqlitePragmas
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(8)
	db.SetMaxIdleConns(8)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite database unreachable: %w", err)
	}

	logger.Log.Info("Database connection established", "driver", "sqlite", "path", path)
	return db, nil
}
