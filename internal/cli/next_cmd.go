package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/countdown/internal/cli/formatter"
	"github.com/alexanderramin/countdown/internal/countdown"
	"github.com/alexanderramin/countdown/internal/service"
	"github.com/spf13/cobra"
)

// nextView is the --json shape of the next command.
type nextView struct {
	TargetMinute     int       `json:"target_minute"`
	Now              time.Time `json:"now"`
	EndsAt           time.Time `json:"ends_at"`
	RemainingSeconds int       `json:"remaining_seconds"`
	RemainingMinutes int       `json:"remaining_minutes"`
	Bar              string    `json:"bar"`
}

func newNextView(f service.Frame) nextView {
	return nextView{
		TargetMinute:     f.Target.Int(),
		Now:              f.Now,
		EndsAt:           f.EndsAt,
		RemainingSeconds: f.RemainingSeconds,
		RemainingMinutes: f.RemainingMinutes,
		Bar:              f.Bar,
	}
}

func newNextCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Print the next target time and bar once",
		Example: `  countdown next -m 30
  countdown next -m 0 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := app.resolveTarget(!asJSON)
			if err != nil {
				return err
			}

			now := app.Clock.Now()
			frame := service.NewFrame(target, now, countdown.NextOccurrence(target, now))

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(newNextView(frame)); err != nil {
					return fmt.Errorf("encoding frame: %w", err)
				}
				return nil
			}

			fmt.Fprint(out, formatter.FormatFrame(frame))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the frame as JSON")

	return cmd
}
