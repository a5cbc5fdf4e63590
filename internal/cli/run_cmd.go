package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/countdown/internal/service"
	"github.com/spf13/cobra"
)

func newRunCmd(app *App) *cobra.Command {
	var cycles int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the countdown (default command)",
		Example: `  countdown run --minute 30
  countdown run -m 0 --plain --cycles 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCountdown(cmd, app, cycles)
		},
	}
	addRunFlags(cmd, &cycles)

	return cmd
}

func addRunFlags(cmd *cobra.Command, cycles *int) {
	cmd.Flags().IntVar(cycles, "cycles", 0, "Exit after this many targets are reached (0 runs until interrupted)")
}

// runCountdown drives the countdown until interrupted or until maxCycles
// targets have been reached.
func runCountdown(cmd *cobra.Command, app *App, maxCycles int) (err error) {
	if maxCycles < 0 {
		return fmt.Errorf("--cycles must not be negative")
	}
	target, err := app.resolveTarget(true)
	if err != nil {
		return err
	}

	svcs, err := app.open()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := svcs.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing services: %w", cerr)
		}
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	timer := svcs.NewTimer(target, app.Config.Note)
	defer func() {
		// The run context is usually canceled by now.
		if serr := timer.Stop(context.Background()); serr != nil && err == nil {
			err = serr
		}
	}()

	if app.Config.Plain || !app.IsInteractive() {
		return runPlain(ctx, cmd.OutOrStdout(), timer, app.Config.Refresh, maxCycles)
	}

	final, err := app.RunProgram(ctx, newTimerModel(ctx, timer, app.Config.Refresh, maxCycles))
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("running countdown view: %w", err)
	}
	if m, ok := final.(timerModel); ok && m.err != nil {
		return m.err
	}
	return nil
}

// resumeNote describes a cycle picked up from an earlier run, or returns ""
// when f did not resume one.
func resumeNote(timer service.TimerService, f service.Frame) string {
	if !f.Resumed {
		return ""
	}
	c, err := timer.Active()
	if err != nil || !c.IsRunning() {
		return ""
	}
	return fmt.Sprintf("Resumed cycle %s to %s (started %s)",
		c.ShortID(), f.EndsAt.Format("15:04"), c.StartedAt.In(f.Now.Location()).Format("15:04"))
}

// interrupted reports whether err only reflects ctx being canceled.
func interrupted(ctx context.Context, err error) bool {
	return ctx.Err() != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded))
}
