package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/yigit/coursedesk/internal/client/migrations"

	_ "modernc.org/sqlite"
)

// DBTX is the database/sql surface used by SQLiteStorage
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SQLiteStorage persists the session of one profile in a SQLite database.
// Each profile plays the role of a browser tab.
type SQLiteStorage struct {
	db      DBTX
	profile string
}

// NewSQLiteStorage wraps an already migrated database
func NewSQLiteStorage(db DBTX, profile string) *SQLiteStorage {
	return &SQLiteStorage{db: db, profile: profile}
}

// OpenSQLiteStorage opens dsn, applies the embedded migrations and returns the
// storage together with the handle the caller must close.
func OpenSQLiteStorage(ctx context.Context, dsn, profile string) (*SQLiteStorage, *sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open session database: %w", err)
	}
	// ":memory:" databases are per connection
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return NewSQLiteStorage(db, profile), db, nil
}

// RunMigrations applies the embedded goose migrations
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to migrate session database: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM session WHERE profile = ? AND key = ?`, s.profile, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStorage) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO session (profile, key, value) VALUES (?, ?, ?)
		ON CONFLICT(profile, key) DO UPDATE SET value = excluded.value
	`, s.profile, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStorage) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session WHERE profile = ? AND key = ?`, s.profile, key)
	if err != nil {
		return fmt.Errorf("failed to remove session[%s]: %w", key, err)
	}
	return nil
}
