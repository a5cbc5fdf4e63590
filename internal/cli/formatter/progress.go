package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/countdown/internal/countdown"
)

// RenderBar colors a bar produced by countdown.ProgressBar: brackets and
// empty cells dimmed, filled cells in the urgency color. Text that is not
// a bracketed bar is returned unchanged.
func RenderBar(bar string, remainingMinutes int) string {
	if len(bar) < 2 || bar[0] != '[' || bar[len(bar)-1] != ']' {
		return bar
	}
	inner := bar[1 : len(bar)-1]
	filled := strings.IndexByte(inner, countdown.EmptyChar)
	if filled < 0 {
		filled = len(inner)
	}

	var b strings.Builder
	b.WriteString(StyleDim.Render("["))
	if filled > 0 {
		b.WriteString(UrgencyStyle(remainingMinutes).Render(inner[:filled]))
	}
	if filled < len(inner) {
		b.WriteString(StyleDim.Render(inner[filled:]))
	}
	b.WriteString(StyleDim.Render("]"))
	return b.String()
}

// FormatRemaining renders seconds as "MM:SS", or "H:MM:SS" from an hour
// up. Negative input renders as "00:00".
func FormatRemaining(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
