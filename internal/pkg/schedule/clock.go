// Package schedule implements weekly recurring interval arithmetic for clinic
// planning: clock-time parsing, day-of-week normalization, interval set
// algebra, cross-scope conflict detection and free-window planning. Everything
// in this package is pure and operates on value types; callers supply the
// corpus and receive fresh results on every call.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay is minutes since midnight, always within [0, MinutesPerDay).
// Intervals never wrap past midnight, so minute arithmetic stays closed
// within a single day.
type TimeOfDay int

const MinutesPerDay = 24 * 60

// ParseTimeOfDay accepts "HH:MM" or "HH:MM:SS". Seconds are validated and
// discarded; the engine works at minute granularity.
func ParseTimeOfDay(text string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(text), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, text)
	}
	for _, p := range parts {
		if len(p) != 2 {
			return 0, fmt.Errorf("%w: %q", ErrMalformedTime, text)
		}
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, text)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, text)
	}
	if len(parts) == 3 {
		seconds, err := strconv.Atoi(parts[2])
		if err != nil || seconds < 0 || seconds > 59 {
			return 0, fmt.Errorf("%w: %q", ErrMalformedTime, text)
		}
	}
	return TimeOfDay(hours*60 + minutes), nil
}

// Format renders the canonical "HH:MM" form regardless of the input shape.
func (t TimeOfDay) Format() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

func (t TimeOfDay) Add(minutes int) (TimeOfDay, error) {
	result := int(t) + minutes
	if result < 0 || result >= MinutesPerDay {
		return 0, fmt.Errorf("%w: %s + %dm", ErrOutOfRange, t.Format(), minutes)
	}
	return TimeOfDay(result), nil
}

func (t TimeOfDay) Sub(minutes int) (TimeOfDay, error) {
	return t.Add(-minutes)
}

// CompareTimes returns -1, 0 or 1.
func CompareTimes(a, b TimeOfDay) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
