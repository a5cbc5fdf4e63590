package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/countdown/internal/db"
	"github.com/alexanderramin/countdown/internal/domain"
)

// SQLiteCycleRepo implements CycleRepo on a *sql.DB or a *sql.Tx.
type SQLiteCycleRepo struct {
	db db.DBTX
}

func NewSQLiteCycleRepo(db db.DBTX) *SQLiteCycleRepo {
	return &SQLiteCycleRepo{db: db}
}

const cycleColumns = `id, target_minute, started_at, ends_at, completed_at, status, note, created_at`

func (r *SQLiteCycleRepo) Create(ctx context.Context, c *domain.Cycle) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("validating cycle: %w", err)
	}
	query := `INSERT INTO cycles (` + cycleColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.TargetMinute,
		formatTime(c.StartedAt),
		formatTime(c.EndsAt),
		nullableTimeToString(c.CompletedAt),
		string(c.Status),
		c.Note,
		formatTime(c.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting cycle: %w", err)
	}
	return nil
}

func (r *SQLiteCycleRepo) GetByID(ctx context.Context, id string) (*domain.Cycle, error) {
	query := `SELECT ` + cycleColumns + ` FROM cycles WHERE id = ?`
	return r.scanCycle(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteCycleRepo) GetRunning(ctx context.Context) (*domain.Cycle, error) {
	query := `SELECT ` + cycleColumns + ` FROM cycles
		WHERE status = 'running'
		ORDER BY started_at DESC, created_at DESC
		LIMIT 1`
	return r.scanCycle(r.db.QueryRowContext(ctx, query))
}

func (r *SQLiteCycleRepo) ListRecent(ctx context.Context, limit int) ([]*domain.Cycle, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	query := `SELECT ` + cycleColumns + ` FROM cycles
		ORDER BY started_at DESC, created_at DESC
		LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent cycles: %w", err)
	}
	defer rows.Close()
	return r.scanCycles(rows)
}

func (r *SQLiteCycleRepo) ListByStatus(ctx context.Context, status domain.CycleStatus) ([]*domain.Cycle, error) {
	query := `SELECT ` + cycleColumns + ` FROM cycles WHERE status = ? ORDER BY started_at`
	rows, err := r.db.QueryContext(ctx, query, string(status))
	if err != nil {
		return nil, fmt.Errorf("listing cycles by status: %w", err)
	}
	defer rows.Close()
	return r.scanCycles(rows)
}

func (r *SQLiteCycleRepo) Update(ctx context.Context, c *domain.Cycle) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("validating cycle: %w", err)
	}
	query := `UPDATE cycles
		SET target_minute = ?, started_at = ?, ends_at = ?, completed_at = ?, status = ?, note = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		c.TargetMinute,
		formatTime(c.StartedAt),
		formatTime(c.EndsAt),
		nullableTimeToString(c.CompletedAt),
		string(c.Status),
		c.Note,
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating cycle: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking updated cycle: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("cycle %s: %w", c.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteCycleRepo) DeleteBefore(ctx context.Context, t time.Time) (int64, error) {
	query := `DELETE FROM cycles WHERE status != 'running' AND started_at < ?`
	res, err := r.db.ExecContext(ctx, query, formatTime(t))
	if err != nil {
		return 0, fmt.Errorf("deleting old cycles: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting deleted cycles: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteCycleRepo) scanCycle(row *sql.Row) (*domain.Cycle, error) {
	c, err := scanCycleRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("cycle: %w", ErrNotFound)
		}
		return nil, err
	}
	return c, nil
}

func (r *SQLiteCycleRepo) scanCycles(rows *sql.Rows) ([]*domain.Cycle, error) {
	var cycles []*domain.Cycle
	for rows.Next() {
		c, err := scanCycleRow(rows)
		if err != nil {
			return nil, err
		}
		cycles = append(cycles, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cycles: %w", err)
	}
	return cycles, nil
}

func scanCycleRow(row rowScanner) (*domain.Cycle, error) {
	var c domain.Cycle
	var status, startedAt, endsAt, createdAt string
	var completedAt sql.NullString

	err := row.Scan(&c.ID, &c.TargetMinute, &startedAt, &endsAt, &completedAt, &status, &c.Note, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning cycle: %w", err)
	}

	c.Status = domain.CycleStatus(status)
	c.CompletedAt = parseNullableTime(completedAt)
	if c.StartedAt, err = time.Parse(timeLayout, startedAt); err != nil {
		return nil, fmt.Errorf("parsing started_at: %w", err)
	}
	if c.EndsAt, err = time.Parse(timeLayout, endsAt); err != nil {
		return nil, fmt.Errorf("parsing ends_at: %w", err)
	}
	if c.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &c, nil
}
