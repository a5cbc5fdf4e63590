package cli

import (
	"bytes"
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/alexanderramin/countdown/internal/config"
	"github.com/alexanderramin/countdown/internal/countdown"
	"github.com/alexanderramin/countdown/internal/repository"
	"github.com/alexanderramin/countdown/internal/service"
	"github.com/alexanderramin/countdown/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
)

var t0 = time.Date(2026, 3, 14, 10, 15, 0, 0, time.UTC)

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)

func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

// cliFixture is an App backed by an in-memory DB plus handles for
// inspecting what commands recorded.
type cliFixture struct {
	app    *App
	clock  *testutil.FakeClock
	cycles *repository.SQLiteCycleRepo
	opened int
}

func newCLIFixture(t *testing.T) *cliFixture {
	t.Helper()
	database := testutil.NewTestDB(t)

	f := &cliFixture{
		clock:  testutil.NewFakeClock(t0),
		cycles: repository.NewSQLiteCycleRepo(database),
	}
	uow := testutil.NewTestUoW(database)

	f.app = &App{
		Config: config.Config{
			Refresh: config.MinRefresh,
			History: true,
			DBPath:  "countdown-test.db",
		},
		Clock: f.clock,
		Open: func(cfg config.Config) (*Services, error) {
			f.opened++
			return &Services{
				NewTimer: func(target countdown.TargetMinute, note string) service.TimerService {
					return service.NewTimerService(target, note, f.app.Clock, f.cycles, uow)
				},
				History: service.NewHistoryService(f.cycles, f.app.Clock),
				Close:   func() error { return nil },
			}, nil
		},
		PromptTarget: func() (countdown.TargetMinute, error) {
			t.Fatal("unexpected prompt")
			return 0, nil
		},
		RunProgram: func(ctx context.Context, m tea.Model) (tea.Model, error) {
			t.Fatal("unexpected full-screen run")
			return m, nil
		},
	}
	return f
}

// executeCmd runs the root command with args and returns everything it
// wrote to stdout and stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := NewRootCmd(app)
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stripANSI(buf.String()), err
}
