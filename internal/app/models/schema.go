package models

import (
	"citaplan-service/internal/pkg/schedule"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Schema is one persisted weekly schema entry. Day and times are stored in
// their raw submitted form and re-normalized on every read, so rows written
// by older tools with different day tokens still parse.
type Schema struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	PhysicianID string             `bson:"physicianId"`
	CenterID    string             `bson:"centerId"`
	RoomID      string             `bson:"roomId"`
	SpecialtyID string             `bson:"specialtyId,omitempty"`
	Day         string             `bson:"day"`
	Start       string             `bson:"start"`
	End         string             `bson:"end"`
	TimeModel   `bson:",inline"`
}

func (s *Schema) ToScopedInterval() (schedule.ScopedInterval, error) {
	day, err := schedule.ParseWeekday(s.Day)
	if err != nil {
		return schedule.ScopedInterval{}, err
	}
	start, err := schedule.ParseTimeOfDay(s.Start)
	if err != nil {
		return schedule.ScopedInterval{}, err
	}
	end, err := schedule.ParseTimeOfDay(s.End)
	if err != nil {
		return schedule.ScopedInterval{}, err
	}
	iv, err := schedule.NewWeeklyInterval(day, start, end)
	if err != nil {
		return schedule.ScopedInterval{}, err
	}
	return schedule.ScopedInterval{
		WeeklyInterval: iv,
		ID:             s.ID.Hex(),
		RoomID:         s.RoomID,
		PhysicianID:    s.PhysicianID,
		CenterID:       s.CenterID,
		SpecialtyID:    s.SpecialtyID,
	}, nil
}
