package models

import (
	"citaplan-service/internal/pkg/schedule"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Availability is one weekly interval a physician declared workable at a
// center. A physician's availability spans centers; queries filter by
// centerId when only one matters.
type Availability struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	PhysicianID string             `bson:"physicianId"`
	CenterID    string             `bson:"centerId"`
	Day         string             `bson:"day"`
	Start       string             `bson:"start"`
	End         string             `bson:"end"`
	TimeModel   `bson:",inline"`
}

func (a *Availability) ToWeeklyInterval() (schedule.WeeklyInterval, error) {
	day, err := schedule.ParseWeekday(a.Day)
	if err != nil {
		return schedule.WeeklyInterval{}, err
	}
	start, err := schedule.ParseTimeOfDay(a.Start)
	if err != nil {
		return schedule.WeeklyInterval{}, err
	}
	end, err := schedule.ParseTimeOfDay(a.End)
	if err != nil {
		return schedule.WeeklyInterval{}, err
	}
	return schedule.NewWeeklyInterval(day, start, end)
}
