package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLDB is the database interface used by all stores.
type SQLDB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// Compile-time check that *sql.DB satisfies SQLDB.
var _ SQLDB = (*sql.DB)(nil)

// InitDB initializes the database schema.
// PRE: db is a valid database connection
// POST: All tables are created, WAL mode enabled
func InitDB(db *sql.DB) error {
	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	// Enable foreign key enforcement
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS team (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS session (
		id TEXT PRIMARY KEY,
		day TEXT NOT NULL,
		session_date TEXT NOT NULL DEFAULT '',
		pole TEXT NOT NULL DEFAULT '',
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		location TEXT NOT NULL DEFAULT '',
		staff TEXT NOT NULL DEFAULT '[]',
		note TEXT NOT NULL DEFAULT '',
		team_id TEXT,
		FOREIGN KEY (team_id) REFERENCES team(id)
	);

	CREATE INDEX IF NOT EXISTS idx_session_day ON session(day);
	CREATE INDEX IF NOT EXISTS idx_session_date ON session(session_date);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
