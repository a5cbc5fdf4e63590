package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/countdown/internal/domain"
	"github.com/alexanderramin/countdown/internal/service"
	"github.com/dustin/go-humanize"
)

// FormatHistory renders recorded cycles, newest first, followed by a
// summary line. now anchors the relative start times.
func FormatHistory(cycles []*domain.Cycle, sum service.HistorySummary, now time.Time) string {
	var b strings.Builder

	b.WriteString(Header("Countdown History"))
	b.WriteString("\n\n")

	if len(cycles) == 0 {
		b.WriteString(Dim("  No cycles recorded yet."))
		b.WriteString("\n")
		return b.String()
	}

	headers := []string{"ID", "TARGET", "STARTED", "LENGTH", "STATUS", "NOTE"}
	rows := make([][]string, 0, len(cycles))
	for _, c := range cycles {
		note := Dim("--")
		if c.Note != "" {
			note = StyleFg.Render(c.Note)
		}
		rows = append(rows, []string{
			Dim(c.ShortID()),
			StylePurple.Render(fmt.Sprintf(":%02d", c.TargetMinute)),
			StyleFg.Render(humanize.RelTime(c.StartedAt, now, "ago", "from now")),
			StyleFg.Render(FormatMinutes(int(c.Duration().Round(time.Minute).Minutes()))),
			CycleStatusPill(c.Status),
			note,
		})
	}
	b.WriteString(RenderTable(headers, rows))

	b.WriteString("\n")
	b.WriteString(FormatSummary(sum))
	b.WriteString("\n")
	return b.String()
}

// FormatSummary renders cycle counts by outcome on one line.
func FormatSummary(sum service.HistorySummary) string {
	parts := []string{
		StyleGreen.Render(fmt.Sprintf("%d completed", sum.Completed)),
		StyleDim.Render(fmt.Sprintf("%d abandoned", sum.Abandoned)),
		StyleBlue.Render(fmt.Sprintf("%d running", sum.Running)),
		StyleFg.Render(FormatMinutes(int(sum.TotalCounted.Minutes())) + " counted down"),
	}
	return strings.Join(parts, Dim(" · "))
}
