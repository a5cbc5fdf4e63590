package formatter

import (
	"testing"

	"github.com/alexanderramin/countdown/internal/countdown"
	"github.com/stretchr/testify/assert"
)

func TestRenderBar_KeepsText(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
	}{
		{"full", 3600},
		{"partial", 961},
		{"empty", 0},
		{"urgent", 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := countdown.ProgressBar(tt.seconds)
			got := RenderBar(bar, countdown.RemainingMinutes(tt.seconds))
			assert.Equal(t, bar, stripANSI(got))
		})
	}
}

func TestRenderBar_PassesThroughNonBar(t *testing.T) {
	assert.Equal(t, "", RenderBar("", 10))
	assert.Equal(t, "hello", RenderBar("hello", 10))
	assert.Equal(t, "[", RenderBar("[", 10))
}

func TestUrgencyStyle(t *testing.T) {
	assert.Equal(t, StyleRed.GetForeground(), UrgencyStyle(0).GetForeground())
	assert.Equal(t, StyleRed.GetForeground(), UrgencyStyle(5).GetForeground())
	assert.Equal(t, StyleYellow.GetForeground(), UrgencyStyle(6).GetForeground())
	assert.Equal(t, StyleYellow.GetForeground(), UrgencyStyle(20).GetForeground())
	assert.Equal(t, StyleGreen.GetForeground(), UrgencyStyle(21).GetForeground())
}

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{-30, "00:00"},
		{59, "00:59"},
		{961, "16:01"},
		{3599, "59:59"},
		{3600, "1:00:00"},
		{3661, "1:01:01"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRemaining(tt.seconds))
		})
	}
}
