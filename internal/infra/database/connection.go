package database

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // local store driver
)

// NewDBConnection opens the local sqlite file, creating its directory if
// needed, and applies the pragmas the schema depends on.
func NewDBConnection(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// One interactive user, one writer: a single connection keeps
	// SQLITE_BUSY out of the picture.
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, pragma := range []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, err
		}
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// InitSchema creates the tables on first launch. Schema changes beyond
// that are out of scope; there is no migration tooling.
func InitSchema(ctx context.Context, db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS contacts (
		id               TEXT PRIMARY KEY,
		name             TEXT NOT NULL DEFAULT '',
		email            TEXT UNIQUE COLLATE NOCASE,
		organization     TEXT NOT NULL DEFAULT '',
		job_title        TEXT NOT NULL DEFAULT '',
		category         TEXT NOT NULL,
		status           TEXT NOT NULL,
		phone            TEXT NOT NULL DEFAULT '',
		website          TEXT NOT NULL DEFAULT '',
		city             TEXT NOT NULL DEFAULT '',
		state            TEXT NOT NULL DEFAULT '',
		country          TEXT NOT NULL DEFAULT '',
		owner            TEXT NOT NULL DEFAULT '',
		application      TEXT NOT NULL DEFAULT '',
		product_interest TEXT NOT NULL DEFAULT '',
		extra            TEXT NOT NULL DEFAULT '{}',
		created_at       TIMESTAMP NOT NULL,
		updated_at       TIMESTAMP NOT NULL,
		archived_at      TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS notes (
		id         TEXT PRIMARY KEY,
		contact_id TEXT NOT NULL REFERENCES contacts(id) ON DELETE CASCADE,
		body       TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_notes_contact ON notes(contact_id, created_at);
	CREATE INDEX IF NOT EXISTS idx_contacts_updated ON contacts(updated_at);
	`

	_, err := db.ExecContext(ctx, schema)
	return err
}
