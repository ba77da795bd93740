package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the snapshot schema if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS snapshots (
			key TEXT PRIMARY KEY,
			payload BLOB NOT NULL,
			saved_at INTEGER NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	// Index for the cache status listing, newest first
	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_snapshots_saved_at
		ON snapshots(saved_at)
	`)
	return err
}
