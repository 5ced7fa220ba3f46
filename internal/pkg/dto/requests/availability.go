package requests

// ReplaceAvailability swaps a physician's whole weekly availability set.
type ReplaceAvailability struct {
	CenterID string           `json:"centerId" validate:"required"`
	Entries  []WeeklyInterval `json:"entries" validate:"required,min=1,dive"`
}

// AvailabilityCheck warns about cross-center collisions before an
// availability edit is saved. The corpus checked against is the physician's
// full commitment everywhere, not just the editing center.
type AvailabilityCheck struct {
	CenterID string           `json:"centerId" validate:"required"`
	Entries  []WeeklyInterval `json:"entries" validate:"required,min=1,dive"`
}
