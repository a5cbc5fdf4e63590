package countdown

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidTargetMinute indicates a target minute outside [0, 59].
var ErrInvalidTargetMinute = errors.New("invalid target minute")

const (
	MinTargetMinute = 0
	MaxTargetMinute = 59
)

// TargetMinute is the minute-of-hour the countdown runs toward, every hour.
type TargetMinute int

// NewTargetMinute validates m and returns it as a TargetMinute.
func NewTargetMinute(m int) (TargetMinute, error) {
	if m < MinTargetMinute || m > MaxTargetMinute {
		return 0, fmt.Errorf("%w: %d is outside %d-%d", ErrInvalidTargetMinute, m, MinTargetMinute, MaxTargetMinute)
	}
	return TargetMinute(m), nil
}

// ParseTargetMinute parses a decimal minute such as "30" or " 05 ".
func ParseTargetMinute(s string) (TargetMinute, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidTargetMinute)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidTargetMinute, s)
	}
	return NewTargetMinute(n)
}

// Int returns the minute as a plain int.
func (t TargetMinute) Int() int {
	return int(t)
}

// Shift moves the target by delta minutes, wrapping around the hour.
func (t TargetMinute) Shift(delta int) TargetMinute {
	m := (int(t) + delta) % 60
	if m < 0 {
		m += 60
	}
	return TargetMinute(m)
}

// String renders the minute as ":MM".
func (t TargetMinute) String() string {
	return fmt.Sprintf(":%02d", int(t))
}
