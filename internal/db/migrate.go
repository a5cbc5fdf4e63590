package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent so the
// full list is replayed on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS cycles (
		id            TEXT PRIMARY KEY,
		target_minute INTEGER NOT NULL CHECK(target_minute BETWEEN 0 AND 59),
		started_at    TEXT NOT NULL,
		ends_at       TEXT NOT NULL,
		completed_at  TEXT,
		status        TEXT NOT NULL DEFAULT 'running'
		              CHECK(status IN ('running','completed','abandoned')),
		created_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_cycles_status ON cycles(status)`,
	`CREATE INDEX IF NOT EXISTS idx_cycles_started ON cycles(started_at)`,

	`ALTER TABLE cycles ADD COLUMN note TEXT NOT NULL DEFAULT ''`,
}
