package requests

// WeeklyInterval is the raw shape every boundary accepts: day tokens may be
// Spanish or English, accented or not, and times may carry seconds. The
// controllers normalize through the schedule package before anything else
// touches the values.
type WeeklyInterval struct {
	Day   string `json:"day" validate:"required"`
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}
