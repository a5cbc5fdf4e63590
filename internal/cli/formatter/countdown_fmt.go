package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/countdown/internal/service"
)

const clockLayout = "15:04"

// FormatFrameLine renders one frame on a single line, for the plain
// refreshing display:
//
//	[########......................] 15:00 until 10:30
func FormatFrameLine(f service.Frame) string {
	return fmt.Sprintf("%s %s %s",
		RenderBar(f.Bar, f.RemainingMinutes),
		Bold(FormatRemaining(f.RemainingSeconds)),
		Dim("until "+f.EndsAt.Format(clockLayout)),
	)
}

// FormatFrame renders the full countdown panel used by the interactive view
// and the next command.
func FormatFrame(f service.Frame) string {
	var b strings.Builder

	b.WriteString(Header("Next " + f.Target.String()))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  %s  %s\n", Dim("Target   "), StyleFg.Render(f.EndsAt.Format(clockLayout))))
	b.WriteString(fmt.Sprintf("  %s  %s\n", Dim("Remaining"),
		UrgencyStyle(f.RemainingMinutes).Bold(true).Render(FormatRemaining(f.RemainingSeconds))))
	b.WriteString(fmt.Sprintf("  %s  %s\n", Dim("Rounded  "), StyleFg.Render(FormatMinutes(f.RemainingMinutes))))
	b.WriteString("\n  ")
	b.WriteString(RenderBar(f.Bar, f.RemainingMinutes))
	b.WriteString("\n")

	return b.String()
}

// FormatCompletion announces a finished cycle.
func FormatCompletion(f service.Frame) string {
	return StyleGreen.Bold(true).Render("✔ "+f.Target.String()+" reached") +
		Dim(" · next at "+f.EndsAt.Format(clockLayout))
}
