package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/countdown/internal/countdown"
	"github.com/alexanderramin/countdown/internal/domain"
)

// ErrNoActiveCycle is returned when no countdown cycle has been started yet.
var ErrNoActiveCycle = errors.New("no active countdown cycle")

// Frame is one rendered sample of the countdown.
type Frame struct {
	Target           countdown.TargetMinute
	Now              time.Time
	EndsAt           time.Time
	RemainingSeconds int
	RemainingMinutes int
	Bar              string
	CycleID          string

	// CompletedCycleID is set on the tick that finished a cycle; the
	// frame itself already describes the next cycle.
	CompletedCycleID string
	// Resumed is set by Start when a cycle left running by an earlier
	// process was picked up again.
	Resumed bool
}

// NewFrame samples the countdown toward end at now. EndsAt is reported in
// the location of now.
func NewFrame(target countdown.TargetMinute, now, end time.Time) Frame {
	remaining := countdown.RemainingSeconds(end, now)
	return Frame{
		Target:           target,
		Now:              now,
		EndsAt:           end.In(now.Location()),
		RemainingSeconds: remaining,
		RemainingMinutes: countdown.RemainingMinutes(remaining),
		Bar:              countdown.ProgressBar(remaining),
	}
}

// Completed reports whether this tick finished a cycle.
func (f Frame) Completed() bool {
	return f.CompletedCycleID != ""
}

// TimerService drives the hourly countdown: it keeps the active cycle,
// samples the clock and records finished cycles.
type TimerService interface {
	Start(ctx context.Context) (Frame, error)
	Tick(ctx context.Context) (Frame, error)
	SetTarget(ctx context.Context, target countdown.TargetMinute) error
	Target() countdown.TargetMinute
	Active() (*domain.Cycle, error)
	Stop(ctx context.Context) error
}

// HistorySummary counts recorded cycles by outcome.
type HistorySummary struct {
	Completed    int
	Abandoned    int
	Running      int
	TotalCounted time.Duration
}

type HistoryService interface {
	Recent(ctx context.Context, limit int) ([]*domain.Cycle, error)
	Summary(ctx context.Context) (HistorySummary, error)
	Prune(ctx context.Context, olderThan time.Duration) (int64, error)
}
