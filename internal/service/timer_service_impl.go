package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/countdown/internal/countdown"
	"github.com/alexanderramin/countdown/internal/db"
	"github.com/alexanderramin/countdown/internal/domain"
	"github.com/alexanderramin/countdown/internal/repository"
	"github.com/google/uuid"
)

type timerService struct {
	mu       sync.Mutex
	clock    countdown.Clock
	cycles   repository.CycleRepo
	uow      db.UnitOfWork
	observer UseCaseObserver

	target countdown.TargetMinute
	note   string
	active *domain.Cycle
	// adopted is set while active was resumed from the store instead of
	// created here. Another process may still be counting it down.
	adopted bool
}

// NewTimerService returns a TimerService counting down to target. note is
// stored with every cycle it records.
func NewTimerService(
	target countdown.TargetMinute,
	note string,
	clock countdown.Clock,
	cycles repository.CycleRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) TimerService {
	if clock == nil {
		clock = countdown.SystemClock{}
	}
	return &timerService{
		clock:    clock,
		cycles:   cycles,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
		target:   target,
		note:     note,
	}
}

func (s *timerService) Target() countdown.TargetMinute {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.target
}

func (s *timerService) Active() (*domain.Cycle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return nil, ErrNoActiveCycle
	}
	c := *s.active
	return &c, nil
}

func (s *timerService) Start(ctx context.Context) (frame Frame, err error) {
	startedAt := time.Now()
	fields := map[string]any{"target_minute": s.Target().Int()}
	defer func() {
		fields["resumed"] = frame.Resumed
		observe(ctx, s.observer, "timer.start", startedAt, fields, &err)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	resumed, err := s.adoptRunning(ctx, now)
	if err != nil {
		return Frame{}, err
	}

	frame, err = s.tickLocked(ctx, now)
	frame.Resumed = resumed
	return frame, err
}

// adoptRunning resumes a persisted cycle left running by an earlier
// process when it still matches the target and has not ended. Any other
// running cycle is abandoned.
func (s *timerService) adoptRunning(ctx context.Context, now time.Time) (bool, error) {
	if s.active != nil {
		return false, nil
	}
	running, err := s.cycles.ListByStatus(ctx, domain.CycleRunning)
	if err != nil {
		return false, fmt.Errorf("loading running cycles: %w", err)
	}

	var resume *domain.Cycle
	for i := len(running) - 1; i >= 0; i-- {
		c := running[i]
		if resume == nil && c.TargetMinute == s.target.Int() && c.EndsAt.After(now) {
			resume = c
			continue
		}
		c.Abandon(now)
		if err := s.cycles.Update(ctx, c); err != nil {
			return false, fmt.Errorf("abandoning stale cycle: %w", err)
		}
	}
	if resume == nil {
		return false, nil
	}
	s.active = resume
	s.adopted = true
	return true, nil
}

func (s *timerService) Tick(ctx context.Context) (Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tickLocked(ctx, s.clock.Now())
}

func (s *timerService) tickLocked(ctx context.Context, now time.Time) (Frame, error) {
	if s.active == nil {
		next := s.newCycle(now, now)
		if err := s.cycles.Create(ctx, next); err != nil {
			return Frame{}, fmt.Errorf("starting cycle: %w", err)
		}
		s.active = next
		s.adopted = false
	}

	completed := ""
	if countdown.RemainingSeconds(s.active.EndsAt, now) <= 0 {
		finished, err := s.handOver(ctx, now)
		if err != nil {
			return Frame{}, err
		}
		completed = finished
	}

	frame := s.frame(now)
	frame.CompletedCycleID = completed
	return frame, nil
}

// handOver completes the active cycle and starts the next one in a single
// transaction. The next target is computed from the later of now and the
// finished cycle's end so that a tick landing in the final sub-second
// cannot produce the same end again.
func (s *timerService) handOver(ctx context.Context, now time.Time) (id string, err error) {
	startedAt := time.Now()
	fields := map[string]any{"target_minute": s.target.Int()}
	defer func() { observe(ctx, s.observer, "timer.cycle_complete", startedAt, fields, &err) }()

	done := *s.active
	done.Complete(now)

	from := now
	if end := done.EndsAt.In(now.Location()); from.Before(end) {
		from = end
	}
	next := s.newCycle(now, from)
	fields["cycle_id"] = done.ID
	fields["next_ends_at"] = next.EndsAt.Format(time.RFC3339)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txCycles := repository.NewSQLiteCycleRepo(tx)
		if err := txCycles.Update(ctx, &done); err != nil {
			return err
		}
		return txCycles.Create(ctx, next)
	})
	if err != nil {
		return "", fmt.Errorf("completing cycle: %w", err)
	}

	s.active = next
	s.adopted = false
	return done.ID, nil
}

func (s *timerService) SetTarget(ctx context.Context, target countdown.TargetMinute) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"target_minute": target.Int()}
	defer func() { observe(ctx, s.observer, "timer.set_target", startedAt, fields, &err) }()

	if _, err = countdown.NewTargetMinute(target.Int()); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	fields["previous_minute"] = s.target.Int()
	if target == s.target {
		return nil
	}
	if err = s.abandonLocked(ctx); err != nil {
		return err
	}
	s.target = target
	return nil
}

func (s *timerService) Stop(ctx context.Context) (err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() { observe(ctx, s.observer, "timer.stop", startedAt, fields, &err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return nil
	}
	fields["cycle_id"] = s.active.ID
	fields["adopted"] = s.adopted
	return s.abandonLocked(ctx)
}

// abandonLocked marks the active cycle abandoned. An adopted cycle is only
// released, since the process that created it may still be running.
func (s *timerService) abandonLocked(ctx context.Context) error {
	if s.active == nil {
		return nil
	}
	if s.adopted {
		s.active, s.adopted = nil, false
		return nil
	}
	stopped := *s.active
	stopped.Abandon(s.clock.Now())
	if err := s.cycles.Update(ctx, &stopped); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.active = nil
			return nil
		}
		return fmt.Errorf("abandoning cycle: %w", err)
	}
	s.active = nil
	return nil
}

func (s *timerService) newCycle(now, from time.Time) *domain.Cycle {
	return &domain.Cycle{
		ID:           uuid.New().String(),
		TargetMinute: s.target.Int(),
		StartedAt:    now,
		EndsAt:       countdown.NextOccurrence(s.target, from),
		Status:       domain.CycleRunning,
		Note:         s.note,
		CreatedAt:    now,
	}
}

func (s *timerService) frame(now time.Time) Frame {
	f := NewFrame(s.target, now, s.active.EndsAt)
	f.CycleID = s.active.ID
	return f
}
