package countdown

import (
	"math"
	"strings"
	"time"
)

const (
	// BarCells is the number of cells between the brackets.
	BarCells = 30
	// MinutesPerCell is how much remaining time one filled cell stands for.
	MinutesPerCell = 2

	FillChar  = '#'
	EmptyChar = '.'
)

// NextOccurrence returns the next time whose minute equals target, with
// seconds and nanoseconds zeroed. A current minute equal to target counts
// as already passed, so the result moves to the following hour.
func NextOccurrence(target TargetMinute, now time.Time) time.Time {
	base := now
	if now.Minute() >= int(target) {
		base = now.Add(time.Hour)
	}
	y, mo, d := base.Date()
	return time.Date(y, mo, d, base.Hour(), int(target), 0, 0, base.Location())
}

// RemainingSeconds returns the whole seconds from now until end, truncated
// toward zero. The result is negative when end is already in the past.
func RemainingSeconds(end, now time.Time) int {
	return int(end.Sub(now) / time.Second)
}

// RemainingMinutes converts seconds to minutes, rounding any leftover
// seconds up. Non-positive input yields a non-positive result.
func RemainingMinutes(remainingSeconds int) int {
	minutes := remainingSeconds / 60
	if remainingSeconds%60 > 0 {
		minutes++
	}
	return minutes
}

// FilledCells returns how many cells of the bar are filled for the given
// remaining seconds, clamped to [0, BarCells].
func FilledCells(remainingSeconds int) int {
	minutes := RemainingMinutes(remainingSeconds)
	filled := int(math.Round(float64(minutes) / MinutesPerCell))
	switch {
	case filled < 0:
		return 0
	case filled > BarCells:
		return BarCells
	}
	return filled
}

// ProgressBar renders remaining time as "[" + fill + empty + "]".
//
//	960s -> [########......................]
//	961s -> [#########.....................]
//
// The result is always BarCells+2 characters wide.
func ProgressBar(remainingSeconds int) string {
	filled := FilledCells(remainingSeconds)

	var b strings.Builder
	b.Grow(BarCells + 2)
	b.WriteByte('[')
	b.WriteString(strings.Repeat(string(FillChar), filled))
	b.WriteString(strings.Repeat(string(EmptyChar), BarCells-filled))
	b.WriteByte(']')
	return b.String()
}
