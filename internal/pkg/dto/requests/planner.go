package requests

type PlanFreeWindows struct {
	PhysicianID string `json:"physicianId" validate:"required"`
	RoomID      string `json:"roomId" validate:"required"`
	SlotMinutes int    `json:"slotMinutes,omitempty" validate:"gte=0,lte=480"`
}

// FitCheck validates one manually typed range against the computed free
// windows for the pair.
type FitCheck struct {
	PhysicianID string         `json:"physicianId" validate:"required"`
	RoomID      string         `json:"roomId" validate:"required"`
	Proposed    WeeklyInterval `json:"proposed" validate:"required"`
}
