package requests

// SchemaEntry is one candidate weekly interval of a schema submission. RoomID
// may differ per entry: a schema batch can spread one physician across rooms.
type SchemaEntry struct {
	WeeklyInterval
	RoomID      string `json:"roomId" validate:"required"`
	SpecialtyID string `json:"specialtyId,omitempty"`
}

// ValidateSchemas runs the full validation pipeline without persisting:
// normalization, internal-overlap check, cross-scope conflict detection.
type ValidateSchemas struct {
	PhysicianID        string        `json:"physicianId" validate:"required"`
	CenterID           string        `json:"centerId" validate:"required"`
	Entries            []SchemaEntry `json:"entries" validate:"required,min=1,dive"`
	ExcludeScheduleIDs []string      `json:"excludeScheduleIds,omitempty"`
}

// CreateSchemas persists a batch after re-running validation. Confirmed must
// be true when the previous validation reported confirmable conflicts;
// internal overlaps are never confirmable.
type CreateSchemas struct {
	PhysicianID        string        `json:"physicianId" validate:"required"`
	CenterID           string        `json:"centerId" validate:"required"`
	Entries            []SchemaEntry `json:"entries" validate:"required,min=1,dive"`
	ExcludeScheduleIDs []string      `json:"excludeScheduleIds,omitempty"`
	Confirmed          bool          `json:"confirmed,omitempty"`
}
