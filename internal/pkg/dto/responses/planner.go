package responses

import "citaplan-service/internal/pkg/schedule"

// WeeklyInterval always renders canonical day names and "HH:MM" times,
// whatever shape the input arrived in.
type WeeklyInterval struct {
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}

func NewWeeklyInterval(iv schedule.WeeklyInterval) WeeklyInterval {
	return WeeklyInterval{
		Day:   iv.Day.String(),
		Start: iv.Start.Format(),
		End:   iv.End.Format(),
	}
}

type FreeSegment struct {
	WeeklyInterval
	PhysicianID string `json:"physicianId"`
	RoomID      string `json:"roomId"`
}

func NewFreeSegment(seg schedule.FreeSegment) FreeSegment {
	return FreeSegment{
		WeeklyInterval: NewWeeklyInterval(seg.WeeklyInterval),
		PhysicianID:    seg.PhysicianID,
		RoomID:         seg.RoomID,
	}
}

type PlanFreeWindows struct {
	FreeSegments []FreeSegment    `json:"freeSegments"`
	Slots        []WeeklyInterval `json:"slots,omitempty"`
}

type FitCheck struct {
	Fits bool `json:"fits"`
}
