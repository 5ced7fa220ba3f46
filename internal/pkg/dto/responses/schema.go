package responses

import "citaplan-service/internal/pkg/schedule"

type Schema struct {
	ID string `json:"id"`
	WeeklyInterval
	RoomID      string `json:"roomId"`
	PhysicianID string `json:"physicianId"`
	CenterID    string `json:"centerId"`
	SpecialtyID string `json:"specialtyId,omitempty"`
}

func NewSchema(si schedule.ScopedInterval) Schema {
	return Schema{
		ID:             si.ID,
		WeeklyInterval: NewWeeklyInterval(si.WeeklyInterval),
		RoomID:         si.RoomID,
		PhysicianID:    si.PhysicianID,
		CenterID:       si.CenterID,
		SpecialtyID:    si.SpecialtyID,
	}
}

type InternalOverlap struct {
	A WeeklyInterval `json:"a"`
	B WeeklyInterval `json:"b"`
}

func NewInternalOverlap(ov schedule.InternalOverlap) InternalOverlap {
	return InternalOverlap{A: NewWeeklyInterval(ov.A), B: NewWeeklyInterval(ov.B)}
}

// Conflict is one classified cross-scope collision. RequiresConfirmation is
// the caller-facing severity decision: cross-center conflicts demand a second
// explicit confirmation step, the other kinds a milder confirm.
type Conflict struct {
	Kind                 string `json:"kind"`
	Candidate            Schema `json:"candidate"`
	Existing             Schema `json:"existing"`
	RequiresConfirmation bool   `json:"requiresConfirmation"`
}

func NewConflict(rec schedule.ConflictRecord) Conflict {
	return Conflict{
		Kind:                 string(rec.Kind),
		Candidate:            NewSchema(rec.Candidate),
		Existing:             NewSchema(rec.Existing),
		RequiresConfirmation: rec.Kind == schedule.ConflictSamePhysicianOtherCenter,
	}
}

// SchemaValidation reports everything found in one pass so the UI can show
// all problems at once. InternalOverlaps non-empty means the submission is
// rejected outright; Conflicts are data the operator may confirm through.
type SchemaValidation struct {
	InternalOverlaps []InternalOverlap `json:"internalOverlaps,omitempty"`
	Conflicts        []Conflict        `json:"conflicts,omitempty"`
}

type SchemasCreated struct {
	Created   []Schema   `json:"created"`
	Conflicts []Conflict `json:"conflicts,omitempty"`
}
