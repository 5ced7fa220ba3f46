package schedule

// FreeSegment is a weekly interval known to be free for a specific
// (physician, room) pair. Segments are computed fresh on every planning
// request and never cached: the occupancy corpus may change between requests
// and the authoritative check happens again at commit time.
type FreeSegment struct {
	WeeklyInterval
	PhysicianID string `json:"physicianId"`
	RoomID      string `json:"roomId"`
}

// PlanFreeWindows answers "which weekly windows can this physician be booked
// into this room": intersect the physician's availability with the room's
// operating hours, then subtract everything already scheduled for either of
// them. Empty availability or room hours yield an empty plan, not an error;
// "nothing configured" is a valid state the caller renders as such.
func PlanFreeWindows(availability, roomHours []WeeklyInterval, existing []ScopedInterval, physicianID, roomID string) []FreeSegment {
	candidate := IntersectSets(availability, roomHours)
	if len(candidate) == 0 {
		return nil
	}

	occupied := make([]WeeklyInterval, 0, len(existing))
	for _, e := range existing {
		occupied = append(occupied, e.WeeklyInterval)
	}

	free := Subtract(candidate, occupied)
	SortIntervals(free)

	segments := make([]FreeSegment, 0, len(free))
	for _, iv := range free {
		segments = append(segments, FreeSegment{
			WeeklyInterval: iv,
			PhysicianID:    physicianID,
			RoomID:         roomID,
		})
	}
	return segments
}

// FitsWithinFreeSegments reports whether a manually typed range is fully
// contained in some free segment on the same day. Touching a segment boundary
// is fine; crossing it is not.
func FitsWithinFreeSegments(proposed WeeklyInterval, free []FreeSegment) bool {
	for _, seg := range free {
		if seg.ContainsRange(proposed) {
			return true
		}
	}
	return false
}

// ExpandSlots cuts each free segment into back-to-back slots of slotMinutes.
// A trailing remainder shorter than the slot length is discarded. Returns nil
// when slotMinutes is not positive.
func ExpandSlots(free []FreeSegment, slotMinutes int) []WeeklyInterval {
	if slotMinutes <= 0 {
		return nil
	}
	var slots []WeeklyInterval
	for _, seg := range free {
		for start := seg.Start; int(start)+slotMinutes <= int(seg.End); start += TimeOfDay(slotMinutes) {
			slots = append(slots, WeeklyInterval{
				Day:   seg.Day,
				Start: start,
				End:   start + TimeOfDay(slotMinutes),
			})
		}
	}
	return slots
}
