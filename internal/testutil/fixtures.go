package testutil

import (
	"sync"
	"time"

	"github.com/alexanderramin/countdown/internal/countdown"
	"github.com/alexanderramin/countdown/internal/domain"
	"github.com/google/uuid"
)

// Cycle options
type CycleOption func(*domain.Cycle)

func WithCycleStatus(s domain.CycleStatus) CycleOption {
	return func(c *domain.Cycle) {
		c.Status = s
	}
}

func WithCompletedAt(t time.Time) CycleOption {
	return func(c *domain.Cycle) {
		c.CompletedAt = &t
	}
}

func WithCycleNote(note string) CycleOption {
	return func(c *domain.Cycle) {
		c.Note = note
	}
}

// NewTestCycle builds a running cycle started at startedAt whose end is the
// next occurrence of targetMinute. Finished cycles without WithCompletedAt
// complete at their end.
func NewTestCycle(targetMinute int, startedAt time.Time, opts ...CycleOption) *domain.Cycle {
	startedAt = startedAt.UTC().Truncate(time.Second)
	c := &domain.Cycle{
		ID:           uuid.New().String(),
		TargetMinute: targetMinute,
		StartedAt:    startedAt,
		EndsAt:       countdown.NextOccurrence(countdown.TargetMinute(targetMinute), startedAt),
		Status:       domain.CycleRunning,
		CreatedAt:    startedAt,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.Status.IsFinished() && c.CompletedAt == nil {
		end := c.EndsAt
		c.CompletedAt = &end
	}
	return c
}

// FakeClock is a countdown.Clock whose time only moves when told to.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewFakeClock(now time.Time) *FakeClock {
	return &FakeClock{now: now}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set jumps the clock to t.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}
