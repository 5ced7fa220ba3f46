package schedule

import "fmt"

// WeeklyInterval is a recurring time range anchored to a day of week, with no
// calendar date. Immutable once constructed; every algebra operation consumes
// it by value. Intervals on different days never interact.
type WeeklyInterval struct {
	Day   Weekday   `json:"day"`
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

// NewWeeklyInterval validates start < end. Wrapping past midnight is not a
// thing in this model: a schema that runs into the next day must be entered as
// two intervals.
func NewWeeklyInterval(day Weekday, start, end TimeOfDay) (WeeklyInterval, error) {
	if start >= end {
		return WeeklyInterval{}, fmt.Errorf("%w: %s %s-%s", ErrInvalidInterval, day, start.Format(), end.Format())
	}
	return WeeklyInterval{Day: day, Start: start, End: end}, nil
}

// Overlaps uses half-open semantics: 09:00-10:00 and 10:00-11:00 touch but do
// not overlap.
func (iv WeeklyInterval) Overlaps(other WeeklyInterval) bool {
	return iv.Day == other.Day && iv.Start < other.End && other.Start < iv.End
}

// Intersect returns the common sub-range, used to compute
// "physician available AND room open". The second return is false when the
// days differ or the ranges only touch.
func (iv WeeklyInterval) Intersect(other WeeklyInterval) (WeeklyInterval, bool) {
	if iv.Day != other.Day {
		return WeeklyInterval{}, false
	}
	start := maxTime(iv.Start, other.Start)
	end := minTime(iv.End, other.End)
	if start >= end {
		return WeeklyInterval{}, false
	}
	return WeeklyInterval{Day: iv.Day, Start: start, End: end}, true
}

// ContainsTime reports whether t falls inside the interval. The end bound is
// exclusive, consistent with Overlaps.
func (iv WeeklyInterval) ContainsTime(t TimeOfDay) bool {
	return iv.Start <= t && t < iv.End
}

// ContainsRange reports whether other fits entirely inside iv on the same day.
// Used to validate that a manually typed slot fits a computed free segment.
func (iv WeeklyInterval) ContainsRange(other WeeklyInterval) bool {
	return iv.Day == other.Day && iv.Start <= other.Start && other.End <= iv.End
}

// Minutes is the interval length.
func (iv WeeklyInterval) Minutes() int {
	return int(iv.End - iv.Start)
}

func (iv WeeklyInterval) String() string {
	return fmt.Sprintf("%s %s-%s", iv.Day, iv.Start.Format(), iv.End.Format())
}

func minTime(a, b TimeOfDay) TimeOfDay {
	if a < b {
		return a
	}
	return b
}

func maxTime(a, b TimeOfDay) TimeOfDay {
	if a > b {
		return a
	}
	return b
}
