package domain

import (
	"fmt"
	"time"
)

// Cycle is one countdown toward a target minute, from the moment it was
// started until the target timestamp (or until it was abandoned).
type Cycle struct {
	ID           string
	TargetMinute int
	StartedAt    time.Time
	EndsAt       time.Time
	CompletedAt  *time.Time
	Status       CycleStatus
	Note         string
	CreatedAt    time.Time
}

// Validate checks the invariants a persisted cycle must hold.
func (c *Cycle) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("cycle ID is required")
	}
	if c.TargetMinute < 0 || c.TargetMinute > 59 {
		return fmt.Errorf("target minute %d must be within 0-59", c.TargetMinute)
	}
	if c.EndsAt.Before(c.StartedAt) {
		return fmt.Errorf("cycle ends at %s before it starts at %s",
			c.EndsAt.Format(time.RFC3339), c.StartedAt.Format(time.RFC3339))
	}
	if !c.Status.IsValid() {
		return fmt.Errorf("unknown cycle status %q", c.Status)
	}
	if c.Status.IsFinished() && c.CompletedAt == nil {
		return fmt.Errorf("%s cycle has no completion time", c.Status)
	}
	return nil
}

// IsRunning reports whether the cycle is still counting down.
func (c *Cycle) IsRunning() bool {
	return c.Status == CycleRunning
}

// Complete marks the cycle as finished at t.
func (c *Cycle) Complete(t time.Time) {
	c.Status = CycleCompleted
	c.CompletedAt = &t
}

// Abandon marks the cycle as stopped before its target was reached.
func (c *Cycle) Abandon(t time.Time) {
	c.Status = CycleAbandoned
	c.CompletedAt = &t
}

// Duration is the planned length of the countdown.
func (c *Cycle) Duration() time.Duration {
	return c.EndsAt.Sub(c.StartedAt)
}

// ShortID returns the first 8 characters of the ID for display.
func (c *Cycle) ShortID() string {
	if len(c.ID) >= 8 {
		return c.ID[:8]
	}
	return c.ID
}
