// Package localstore persists small pieces of client state (bearer token,
// dark-mode flag) in a local sqlite database so they survive restarts.
package localstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/exlpro/invoice-cli/internal/client/localstore/migrations"
	"github.com/exlpro/invoice-cli/internal/dbx"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// Well-known settings keys.
const (
	KeyToken    = "token"
	KeyDarkMode = "dark_mode"
)

// Settings is a small key/value store for persisted client state.
type Settings interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// Store owns the sqlite handle and exposes the settings repository.
type Store struct {
	db       *sql.DB
	Settings Settings
}

// RunMigrations applies the embedded goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if needed) the local database at dsn and applies
// migrations.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, Settings: NewSQLiteSettings(db)}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SQLiteSettings implements Settings over a sqlite handle.
type SQLiteSettings struct {
	db dbx.DBTX
}

func NewSQLiteSettings(db dbx.DBTX) *SQLiteSettings {
	return &SQLiteSettings{db: db}
}

// Get returns the stored value for key, or "" when the key is absent.
func (r *SQLiteSettings) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get settings[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteSettings) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set settings[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteSettings) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM settings WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete settings[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteSettings) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM settings`)
	if err != nil {
		return fmt.Errorf("failed to clear settings: %w", err)
	}
	return nil
}
