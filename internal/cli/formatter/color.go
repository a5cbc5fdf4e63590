package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/countdown/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Urgency thresholds in remaining minutes.
const (
	urgentMinutes  = 5
	warningMinutes = 20
)

// UrgencyStyle picks the bar color for the remaining minutes: green with
// plenty of time left, yellow within 20 minutes, red within 5.
func UrgencyStyle(remainingMinutes int) lipgloss.Style {
	switch {
	case remainingMinutes <= urgentMinutes:
		return StyleRed
	case remainingMinutes <= warningMinutes:
		return StyleYellow
	default:
		return StyleGreen
	}
}

// CycleStatusPill returns a colored indicator for a recorded cycle.
func CycleStatusPill(status domain.CycleStatus) string {
	switch status {
	case domain.CycleRunning:
		return StyleBlue.Render("● Running")
	case domain.CycleCompleted:
		return StyleGreen.Render("✔ Completed")
	case domain.CycleAbandoned:
		return StyleDim.Render("✖ Abandoned")
	default:
		return StyleDim.Render(string(status))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
