package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/countdown/internal/domain"
)

type CycleRepo interface {
	Create(ctx context.Context, c *domain.Cycle) error
	GetByID(ctx context.Context, id string) (*domain.Cycle, error)
	// GetRunning returns the most recently started running cycle.
	GetRunning(ctx context.Context) (*domain.Cycle, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.Cycle, error)
	ListByStatus(ctx context.Context, status domain.CycleStatus) ([]*domain.Cycle, error)
	Update(ctx context.Context, c *domain.Cycle) error
	// DeleteBefore removes finished cycles started before t and returns
	// how many rows were deleted. Running cycles are kept.
	DeleteBefore(ctx context.Context, t time.Time) (int64, error)
}
