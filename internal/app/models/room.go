package models

import (
	"citaplan-service/internal/pkg/schedule"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RoomHour struct {
	Day   string `bson:"day"`
	Start string `bson:"start"`
	End   string `bson:"end"`
}

// Room carries the weekly opening hours the planner intersects availability
// against. RoomID is the business key used across schemas; the Mongo _id is
// internal.
type Room struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	RoomID       string             `bson:"roomId"`
	CenterID     string             `bson:"centerId"`
	Name         string             `bson:"name"`
	OpeningHours []RoomHour         `bson:"openingHours"`
	TimeModel    `bson:",inline"`
}

func (h RoomHour) ToWeeklyInterval() (schedule.WeeklyInterval, error) {
	day, err := schedule.ParseWeekday(h.Day)
	if err != nil {
		return schedule.WeeklyInterval{}, err
	}
	start, err := schedule.ParseTimeOfDay(h.Start)
	if err != nil {
		return schedule.WeeklyInterval{}, err
	}
	end, err := schedule.ParseTimeOfDay(h.End)
	if err != nil {
		return schedule.WeeklyInterval{}, err
	}
	return schedule.NewWeeklyInterval(day, start, end)
}
