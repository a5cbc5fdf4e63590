package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/countdown/internal/countdown"
	"github.com/alexanderramin/countdown/internal/domain"
	"github.com/alexanderramin/countdown/internal/repository"
)

type historyService struct {
	cycles   repository.CycleRepo
	clock    countdown.Clock
	observer UseCaseObserver
}

func NewHistoryService(cycles repository.CycleRepo, clock countdown.Clock, observers ...UseCaseObserver) HistoryService {
	if clock == nil {
		clock = countdown.SystemClock{}
	}
	return &historyService{
		cycles:   cycles,
		clock:    clock,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *historyService) Recent(ctx context.Context, limit int) (cycles []*domain.Cycle, err error) {
	startedAt := time.Now()
	fields := map[string]any{"limit": limit}
	defer func() {
		fields["count"] = len(cycles)
		observe(ctx, s.observer, "history.recent", startedAt, fields, &err)
	}()

	cycles, err = s.cycles.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	return cycles, nil
}

func (s *historyService) Summary(ctx context.Context) (sum HistorySummary, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() {
		fields["completed"] = sum.Completed
		fields["abandoned"] = sum.Abandoned
		fields["running"] = sum.Running
		observe(ctx, s.observer, "history.summary", startedAt, fields, &err)
	}()

	for _, status := range []domain.CycleStatus{domain.CycleCompleted, domain.CycleAbandoned, domain.CycleRunning} {
		cycles, err := s.cycles.ListByStatus(ctx, status)
		if err != nil {
			return HistorySummary{}, fmt.Errorf("summarising history: %w", err)
		}
		switch status {
		case domain.CycleCompleted:
			sum.Completed = len(cycles)
			for _, c := range cycles {
				sum.TotalCounted += c.Duration()
			}
		case domain.CycleAbandoned:
			sum.Abandoned = len(cycles)
		case domain.CycleRunning:
			sum.Running = len(cycles)
		}
	}
	return sum, nil
}

func (s *historyService) Prune(ctx context.Context, olderThan time.Duration) (n int64, err error) {
	startedAt := time.Now()
	fields := map[string]any{"older_than": olderThan.String()}
	defer func() {
		fields["deleted"] = n
		observe(ctx, s.observer, "history.prune", startedAt, fields, &err)
	}()

	if olderThan <= 0 {
		return 0, fmt.Errorf("prune age must be positive, got %s", olderThan)
	}
	n, err = s.cycles.DeleteBefore(ctx, s.clock.Now().Add(-olderThan))
	if err != nil {
		return 0, fmt.Errorf("pruning history: %w", err)
	}
	return n, nil
}
