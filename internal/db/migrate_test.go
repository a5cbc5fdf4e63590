package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesCyclesTable(t *testing.T) {
	db := openTestDB(t)

	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='cycles'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "cycles", name)

	for _, idx := range []string{"idx_cycles_status", "idx_cycles_started"} {
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_AddsNoteColumn(t *testing.T) {
	db := openTestDB(t)

	rows, err := db.Query(`PRAGMA table_info(cycles)`)
	require.NoError(t, err)
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var (
			cid       int
			name      string
			colType   string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		require.NoError(t, rows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &pk))
		columns = append(columns, name)
	}
	require.NoError(t, rows.Err())
	assert.Contains(t, columns, "note")
}

func TestMigrate_RejectsOutOfRangeMinute(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO cycles (id, target_minute, started_at, ends_at, status, created_at)
		VALUES ('c1', 60, '2026-03-14T10:00:00Z', '2026-03-14T11:00:00Z', 'running', '2026-03-14T10:00:00Z')`)
	assert.Error(t, err)
}

func TestMigrate_RejectsUnknownStatus(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO cycles (id, target_minute, started_at, ends_at, status, created_at)
		VALUES ('c1', 30, '2026-03-14T10:00:00Z', '2026-03-14T10:30:00Z', 'paused', '2026-03-14T10:00:00Z')`)
	assert.Error(t, err)
}

func TestOpenDB_CreatesDirectory(t *testing.T) {
	path := t.TempDir() + "/nested/dir/countdown.db"
	db, err := OpenDB(path)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM cycles`).Scan(&n))
	assert.Zero(t, n)
}
