package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/countdown/internal/domain"
	"github.com/alexanderramin/countdown/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestFormatHistory_Empty(t *testing.T) {
	got := stripANSI(FormatHistory(nil, service.HistorySummary{}, time.Now()))
	assert.Contains(t, got, "COUNTDOWN HISTORY")
	assert.Contains(t, got, "No cycles recorded yet.")
}

func TestFormatHistory_Rows(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	start := now.Add(-2 * time.Hour)
	cycles := []*domain.Cycle{
		{
			ID:           "0f8fad5b-d9cb-469f-a165-70867728950e",
			TargetMinute: 30,
			StartedAt:    start,
			EndsAt:       start.Add(20 * time.Minute),
			Status:       domain.CycleCompleted,
			Note:         "standup",
		},
		{
			ID:           "7c9e6679-7425-40de-944b-e07fc1f90ae7",
			TargetMinute: 5,
			StartedAt:    now.Add(-3 * time.Minute),
			EndsAt:       now.Add(5 * time.Minute),
			Status:       domain.CycleRunning,
		},
	}
	sum := service.HistorySummary{Completed: 1, Running: 1, TotalCounted: 20 * time.Minute}

	got := stripANSI(FormatHistory(cycles, sum, now))

	assert.Contains(t, got, "0f8fad5b")
	assert.Contains(t, got, ":30")
	assert.Contains(t, got, ":05")
	assert.Contains(t, got, "2 hours ago")
	assert.Contains(t, got, "3 minutes ago")
	assert.Contains(t, got, "20m")
	assert.Contains(t, got, "✔ Completed")
	assert.Contains(t, got, "● Running")
	assert.Contains(t, got, "standup")
	assert.Contains(t, got, "1 completed · 0 abandoned · 1 running · 20m counted down")
}
