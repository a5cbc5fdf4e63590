package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/countdown/internal/cli/formatter"
	"github.com/alexanderramin/countdown/internal/countdown"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// countdownHuhTheme returns a huh theme using the formatter palette.
func countdownHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// newTargetForm builds the form asking for a target minute. The entered
// text is written to value.
func newTargetForm(value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Target minute").
				Description("Minute of the hour to count down to (0-59)").
				Placeholder("30").
				Value(value).
				Validate(validateTargetMinute),
		),
	).WithTheme(countdownHuhTheme()).WithShowHelp(false)
}

// promptTargetMinute asks for a target minute on the terminal.
func promptTargetMinute() (countdown.TargetMinute, error) {
	var value string
	if err := newTargetForm(&value).Run(); err != nil {
		return 0, fmt.Errorf("reading target minute: %w", err)
	}
	return countdown.ParseTargetMinute(strings.TrimSpace(value))
}

// validateTargetMinute accepts an integer in [0, 59].
func validateTargetMinute(s string) error {
	if _, err := countdown.ParseTargetMinute(s); err != nil {
		return fmt.Errorf("enter a minute between 0 and 59")
	}
	return nil
}
