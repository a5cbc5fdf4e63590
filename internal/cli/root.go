package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/countdown/internal/config"
	"github.com/alexanderramin/countdown/internal/countdown"
	"github.com/alexanderramin/countdown/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// ErrNoTarget is returned when no target minute is configured and none can
// be prompted for.
var ErrNoTarget = errors.New("no target minute configured (use --minute or COUNTDOWN_TARGET_MINUTE)")

// Services are opened after flags are parsed, since flags can move the
// history database.
type Services struct {
	NewTimer func(target countdown.TargetMinute, note string) service.TimerService
	History  service.HistoryService
	Close    func() error
}

// App holds configuration and the collaborators used by CLI commands.
type App struct {
	Config config.Config
	Clock  countdown.Clock

	// Open builds the services for the effective configuration.
	Open func(cfg config.Config) (*Services, error)

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool
	// PromptTarget asks the user for a target minute.
	PromptTarget func() (countdown.TargetMinute, error)
	// RunProgram runs the full-screen countdown view.
	RunProgram func(ctx context.Context, m tea.Model) (tea.Model, error)
}

// NewRootCmd creates the top-level "countdown" command and registers all
// subcommands against the provided App. Running it without a subcommand
// starts the countdown.
func NewRootCmd(app *App) *cobra.Command {
	app.setDefaults()

	var cycles int
	root := &cobra.Command{
		Use:   "countdown",
		Short: "Count down to a minute of the hour with a terminal progress bar",
		Long: `countdown shows the time left until the next occurrence of a target
minute-of-hour as a 30-cell bar. Each # stands for about two minutes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.Config.ApplyFlags(cmd.Flags())
		},
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCountdown(cmd, app, cycles)
		},
	}
	config.RegisterFlags(root.PersistentFlags())
	addRunFlags(root, &cycles)

	root.AddCommand(
		newRunCmd(app),
		newNextCmd(app),
		newHistoryCmd(app),
	)

	return root
}

func (app *App) setDefaults() {
	if app.Clock == nil {
		app.Clock = countdown.SystemClock{}
	}
	if app.IsInteractive == nil {
		app.IsInteractive = func() bool { return false }
	}
	if app.PromptTarget == nil {
		app.PromptTarget = promptTargetMinute
	}
	if app.RunProgram == nil {
		app.RunProgram = func(ctx context.Context, m tea.Model) (tea.Model, error) {
			return tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
		}
	}
}

// resolveTarget returns the configured target minute, prompting for one
// on an interactive terminal.
func (app *App) resolveTarget(allowPrompt bool) (countdown.TargetMinute, error) {
	if m, ok := app.Config.Target(); ok {
		return m, nil
	}
	if !allowPrompt || !app.IsInteractive() {
		return 0, ErrNoTarget
	}
	m, err := app.PromptTarget()
	if err != nil {
		return 0, err
	}
	app.Config.SetTarget(m)
	return m, nil
}

func (app *App) open() (*Services, error) {
	if app.Open == nil {
		return nil, fmt.Errorf("countdown services are not configured")
	}
	svcs, err := app.Open(app.Config)
	if err != nil {
		return nil, fmt.Errorf("opening services: %w", err)
	}
	return svcs, nil
}
