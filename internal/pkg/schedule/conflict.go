package schedule

// ScopedInterval is a weekly interval annotated with the scope that owns it:
// one row of an existing schema (recurring booking) or of physician
// availability. RoomID may be empty for availability rows that are not bound
// to a room.
type ScopedInterval struct {
	WeeklyInterval
	ID          string `json:"id,omitempty"`
	RoomID      string `json:"roomId,omitempty"`
	PhysicianID string `json:"physicianId"`
	CenterID    string `json:"centerId"`
	SpecialtyID string `json:"specialtyId,omitempty"`
}

// ConflictKind classifies a cross-scope overlap. The engine only classifies;
// whether a kind blocks or merely warns is the caller's policy.
type ConflictKind string

const (
	// ConflictSameRoom: two schemas claim the same room at the same time,
	// regardless of physician.
	ConflictSameRoom ConflictKind = "SAME_ROOM"
	// ConflictSamePhysicianSameCenter: one physician in two rooms of the same
	// center at once.
	ConflictSamePhysicianSameCenter ConflictKind = "SAME_PHYSICIAN_SAME_CENTER"
	// ConflictSamePhysicianOtherCenter is the most severe class: a physician
	// cannot be physically present at two centers simultaneously.
	ConflictSamePhysicianOtherCenter ConflictKind = "SAME_PHYSICIAN_OTHER_CENTER"
)

// ConflictRecord pairs a candidate interval with an existing one it overlaps.
// Records are data, not errors: an empty result means no conflicts.
type ConflictRecord struct {
	Candidate ScopedInterval `json:"candidate"`
	Existing  ScopedInterval `json:"existing"`
	Kind      ConflictKind   `json:"kind"`
}

// DetectConflicts finds every overlapping (candidate, existing) pair and
// classifies it. Entries of exclude are existing IDs to skip, which lets an
// edit re-check against everything except the schema being edited. Pairs that
// share neither room nor physician are not conflicts and never appear in the
// output.
func DetectConflicts(candidates, existing []ScopedInterval, exclude map[string]struct{}) []ConflictRecord {
	var records []ConflictRecord
	for _, c := range candidates {
		for _, e := range existing {
			if _, skip := exclude[e.ID]; skip && e.ID != "" {
				continue
			}
			if !c.Overlaps(e.WeeklyInterval) {
				continue
			}
			kind, ok := classify(c, e)
			if !ok {
				continue
			}
			records = append(records, ConflictRecord{Candidate: c, Existing: e, Kind: kind})
		}
	}
	return records
}

func classify(c, e ScopedInterval) (ConflictKind, bool) {
	if c.RoomID != "" && c.RoomID == e.RoomID {
		return ConflictSameRoom, true
	}
	if c.PhysicianID != "" && c.PhysicianID == e.PhysicianID {
		if c.CenterID == e.CenterID {
			return ConflictSamePhysicianSameCenter, true
		}
		return ConflictSamePhysicianOtherCenter, true
	}
	return "", false
}
