package schedule

import "sort"

// IntersectSets intersects two weekly schedules pairwise per day and collects
// every non-empty result. Inputs are assumed internally non-overlapping per
// operand (enforce with ValidateNoInternalOverlap before calling), so no
// deduplication is needed. Output order is arbitrary; callers that need
// determinism sort with SortIntervals.
func IntersectSets(a, b []WeeklyInterval) []WeeklyInterval {
	var result []WeeklyInterval
	for _, left := range a {
		for _, right := range b {
			if common, ok := left.Intersect(right); ok {
				result = append(result, common)
			}
		}
	}
	return result
}

// Subtract removes every occupied range from the available set and returns the
// remaining free segments, disjoint per day. An occupied interval that only
// partially covers an available one truncates it rather than removing it; an
// available interval untouched by any occupied interval passes through
// unchanged.
func Subtract(available, occupied []WeeklyInterval) []WeeklyInterval {
	var free []WeeklyInterval
	for _, av := range available {
		blockers := make([]WeeklyInterval, 0, len(occupied))
		for _, oc := range occupied {
			if av.Overlaps(oc) {
				blockers = append(blockers, oc)
			}
		}
		if len(blockers) == 0 {
			free = append(free, av)
			continue
		}
		sort.Slice(blockers, func(i, j int) bool { return blockers[i].Start < blockers[j].Start })

		// Sweep left to right, emitting the gap before each blocker and the
		// tail after the last one.
		cursor := av.Start
		for _, oc := range blockers {
			if oc.Start > cursor {
				free = append(free, WeeklyInterval{Day: av.Day, Start: cursor, End: oc.Start})
			}
			cursor = maxTime(cursor, oc.End)
			if cursor >= av.End {
				break
			}
		}
		if cursor < av.End {
			free = append(free, WeeklyInterval{Day: av.Day, Start: cursor, End: av.End})
		}
	}
	return free
}

// InternalOverlap is a collision between two intervals submitted together in
// the same batch. Unlike cross-scope conflicts it is never confirmable: the
// submission itself is inconsistent.
type InternalOverlap struct {
	A WeeklyInterval `json:"a"`
	B WeeklyInterval `json:"b"`
}

// ValidateNoInternalOverlap checks one caller-supplied batch against itself
// and reports every overlapping pair. It must run, and its findings must be
// surfaced, before any cross-scope conflict check.
func ValidateNoInternalOverlap(set []WeeklyInterval) []InternalOverlap {
	ordered := make([]WeeklyInterval, len(set))
	copy(ordered, set)
	SortIntervals(ordered)

	var overlaps []InternalOverlap
	for i := 0; i < len(ordered); i++ {
		for j := i + 1; j < len(ordered); j++ {
			if ordered[j].Day != ordered[i].Day || ordered[j].Start >= ordered[i].End {
				break
			}
			if ordered[i].Overlaps(ordered[j]) {
				overlaps = append(overlaps, InternalOverlap{A: ordered[i], B: ordered[j]})
			}
		}
	}
	return overlaps
}

// SortIntervals orders a set by (day, start, end) in place.
func SortIntervals(set []WeeklyInterval) {
	sort.Slice(set, func(i, j int) bool {
		if set[i].Day != set[j].Day {
			return set[i].Day < set[j].Day
		}
		if set[i].Start != set[j].Start {
			return set[i].Start < set[j].Start
		}
		return set[i].End < set[j].End
	})
}
