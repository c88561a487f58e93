package db

import (
	"database/sql"
	"fmt"
)

const baseSchema = `
CREATE TABLE IF NOT EXISTS notice_snapshots (
  id INTEGER PRIMARY KEY,
  source TEXT NOT NULL,
  fetched_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS notices (
  id INTEGER PRIMARY KEY,
  snapshot_id INTEGER NOT NULL,
  position INTEGER NOT NULL,
  title TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  date TEXT NOT NULL,
  FOREIGN KEY (snapshot_id) REFERENCES notice_snapshots(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_notices_snapshot_position ON notices(snapshot_id, position);

CREATE TABLE IF NOT EXISTS status_checks (
  id TEXT PRIMARY KEY,
  client_name TEXT NOT NULL,
  timestamp TEXT NOT NULL
);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}
	if err := runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

func runMigrations(db *sql.DB) error {
	// Migration 1: status checks are listed oldest first
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_status_checks_timestamp ON status_checks(timestamp)`); err != nil {
		return fmt.Errorf("create idx_status_checks_timestamp: %w", err)
	}
	return nil
}
