package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/countdown/internal/cli/formatter"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// ErrHistoryDisabled is returned by history commands when recording is off.
var ErrHistoryDisabled = errors.New("history is disabled (unset --no-history or COUNTDOWN_HISTORY)")

const defaultHistoryLimit = 10

func newHistoryCmd(app *App) *cobra.Command {
	var limit int
	var pruneDays int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded countdown cycles",
		Example: `  countdown history
  countdown history --limit 50
  countdown history --prune 30`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if !app.Config.History {
				return ErrHistoryDisabled
			}
			if limit < 0 {
				return fmt.Errorf("--limit must not be negative")
			}
			if cmd.Flags().Changed("prune") && pruneDays <= 0 {
				return fmt.Errorf("--prune must be a positive number of days")
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
			out := cmd.OutOrStdout()

			if pruneDays > 0 {
				n, err := svcs.History.Prune(ctx, time.Duration(pruneDays)*24*time.Hour)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Pruned %s older than %d days.\n",
					pluralCycles(n), pruneDays)
				return nil
			}

			cycles, err := svcs.History.Recent(ctx, limit)
			if err != nil {
				return err
			}
			sum, err := svcs.History.Summary(ctx)
			if err != nil {
				return err
			}
			fmt.Fprint(out, formatter.FormatHistory(cycles, sum, app.Clock.Now()))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", defaultHistoryLimit, "Number of cycles to show (0 for all)")
	cmd.Flags().IntVar(&pruneDays, "prune", 0, "Delete finished cycles that started more than this many days ago")

	return cmd
}

func pluralCycles(n int64) string {
	if n == 1 {
		return "1 cycle"
	}
	return humanize.Comma(n) + " cycles"
}
