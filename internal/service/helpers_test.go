package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/countdown/internal/countdown"
	"github.com/alexanderramin/countdown/internal/db"
	"github.com/alexanderramin/countdown/internal/repository"
	"github.com/alexanderramin/countdown/internal/testutil"
)

var t0 = time.Date(2026, 3, 14, 10, 15, 0, 0, time.UTC)

type timerFixture struct {
	clock  *testutil.FakeClock
	cycles *repository.SQLiteCycleRepo
	uow    db.UnitOfWork
	obs    *recordingObserver
	svc    TimerService
}

func newTimerFixture(t *testing.T, target countdown.TargetMinute) *timerFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	f := &timerFixture{
		clock:  testutil.NewFakeClock(t0),
		cycles: repository.NewSQLiteCycleRepo(database),
		uow:    testutil.NewTestUoW(database),
		obs:    &recordingObserver{},
	}
	f.svc = NewTimerService(target, "", f.clock, f.cycles, f.uow, f.obs)
	return f
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
}

func (o *recordingObserver) names() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	names := make([]string, 0, len(o.events))
	for _, e := range o.events {
		names = append(names, e.Name)
	}
	return names
}

func (o *recordingObserver) last(name string) (UseCaseEvent, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i := len(o.events) - 1; i >= 0; i-- {
		if o.events[i].Name == name {
			return o.events[i], true
		}
	}
	return UseCaseEvent{}, false
}

func repositoryFor(database *sql.DB) *repository.SQLiteCycleRepo {
	return repository.NewSQLiteCycleRepo(database)
}
