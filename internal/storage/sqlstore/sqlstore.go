// Package sqlstore provides a database/sql implementation of the storage.Store interface.
// It runs on SQLite (pure Go driver) or PostgreSQL (pgx) behind the same queries.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	_ "modernc.org/sqlite"             // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/splitbot/internal/storage"
)

// Ensure SQLStore implements storage.Store
var _ storage.Store = (*SQLStore)(nil)

// SQLStore implements storage.Store on top of database/sql.
type SQLStore struct {
	db      *sql.DB
	dialect dialect
}

// Open picks a backend from dsn. URLs starting with postgres:// or postgresql://
// connect to PostgreSQL, anything else is treated as a SQLite file path.
func Open(ctx context.Context, dsn string) (*SQLStore, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return openPostgres(ctx, dsn)
	}
	return New(dsn)
}

// New creates a new SQLite-backed store with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open(sqliteDialect.driver, dbPath+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite allows a single writer; one connection keeps transactions serialized.
	db.SetMaxOpenConns(1)

	return initStore(context.Background(), db, sqliteDialect)
}

func openPostgres(ctx context.Context, url string) (*SQLStore, error) {
	db, err := sql.Open(postgresDialect.driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return initStore(ctx, db, postgresDialect)
}

func initStore(ctx context.Context, db *sql.DB, d dialect) (*SQLStore, error) {
	if err := runMigrations(ctx, db, d); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return &SQLStore{db: db, dialect: d}, nil
}

// Close closes the database connection.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

// WithTx runs fn inside a transaction, committing only if fn succeeds.
func (s *SQLStore) WithTx(ctx context.Context, fn func(tx storage.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	// No-op after a successful commit; covers error returns and panics otherwise.
	defer tx.Rollback()

	if err := fn(&txn{tx: tx, dialect: s.dialect}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// txn implements storage.Tx on a single *sql.Tx.
type txn struct {
	tx      *sql.Tx
	dialect dialect
}

var _ storage.Tx = (*txn)(nil)

func (t *txn) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return t.tx.ExecContext(ctx, t.dialect.rebind(query), args...)
}

func (t *txn) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return t.tx.QueryContext(ctx, t.dialect.rebind(query), args...)
}

func (t *txn) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return t.tx.QueryRowContext(ctx, t.dialect.rebind(query), args...)
}
