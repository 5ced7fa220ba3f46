package planner

import (
	"context"
	"testing"

	"citaplan-service/internal/app/contracts"
	"citaplan-service/internal/app/models"
	"citaplan-service/internal/pkg/constvars"
	"citaplan-service/internal/pkg/dto/requests"
	"citaplan-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeAvailabilityRepository struct {
	rows []*models.Availability
}

func (f *fakeAvailabilityRepository) ReplaceForPhysician(_ context.Context, _, _ string, _ []*models.Availability) error {
	return nil
}

func (f *fakeAvailabilityRepository) FindByPhysician(_ context.Context, physicianID string) ([]*models.Availability, error) {
	var out []*models.Availability
	for _, row := range f.rows {
		if row.PhysicianID == physicianID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeAvailabilityRepository) FindByPhysicianAndCenter(_ context.Context, physicianID, centerID string) ([]*models.Availability, error) {
	var out []*models.Availability
	for _, row := range f.rows {
		if row.PhysicianID == physicianID && row.CenterID == centerID {
			out = append(out, row)
		}
	}
	return out, nil
}

type fakeRoomRepository struct {
	rooms map[string]*models.Room
}

func (f *fakeRoomRepository) FindByRoomID(_ context.Context, roomID string) (*models.Room, error) {
	return f.rooms[roomID], nil
}

type fakeSchemaRepository struct {
	rows []*models.Schema
}

func (f *fakeSchemaRepository) InsertSchemas(_ context.Context, _ []*models.Schema) ([]string, error) {
	return nil, nil
}

func (f *fakeSchemaRepository) FindByPhysicianOrRoom(_ context.Context, physicianID string, roomIDs []string) ([]*models.Schema, error) {
	rooms := map[string]struct{}{}
	for _, id := range roomIDs {
		rooms[id] = struct{}{}
	}
	var out []*models.Schema
	for _, row := range f.rows {
		_, roomMatch := rooms[row.RoomID]
		if row.PhysicianID == physicianID || roomMatch {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeSchemaRepository) FindByID(_ context.Context, _ string) (*models.Schema, error) {
	return nil, nil
}

func (f *fakeSchemaRepository) FindWithFilter(_ context.Context, _ contracts.SchemaFilter, _, _ int) ([]*models.Schema, int, error) {
	return nil, 0, nil
}

func (f *fakeSchemaRepository) DeleteByID(_ context.Context, _ string) error {
	return nil
}

func availabilityRow(physicianID, day, start, end string) *models.Availability {
	return &models.Availability{
		ID:          primitive.NewObjectID(),
		PhysicianID: physicianID,
		CenterID:    "center-1",
		Day:         day,
		Start:       start,
		End:         end,
	}
}

func testRoom(roomID string, hours ...models.RoomHour) *models.Room {
	return &models.Room{
		ID:           primitive.NewObjectID(),
		RoomID:       roomID,
		CenterID:     "center-1",
		Name:         "Consulta " + roomID,
		OpeningHours: hours,
	}
}

func newTestUsecase(avail *fakeAvailabilityRepository, rooms *fakeRoomRepository, schemas *fakeSchemaRepository) PlannerUsecase {
	return NewPlannerUsecase(avail, rooms, schemas, zap.NewNop())
}

func TestPlannerUsecase_PlanFreeWindows(t *testing.T) {
	avail := &fakeAvailabilityRepository{rows: []*models.Availability{
		availabilityRow("phys-1", "MONDAY", "08:00", "12:00"),
	}}
	rooms := &fakeRoomRepository{rooms: map[string]*models.Room{
		"room-1": testRoom("room-1", models.RoomHour{Day: "LUNES", Start: "09:00", End: "17:00"}),
	}}
	schemas := &fakeSchemaRepository{rows: []*models.Schema{
		{
			ID:          primitive.NewObjectID(),
			PhysicianID: "phys-1",
			CenterID:    "center-1",
			RoomID:      "room-1",
			Day:         "MONDAY",
			Start:       "10:00",
			End:         "10:30",
		},
	}}
	uc := newTestUsecase(avail, rooms, schemas)

	t.Run("booking splits the overlap window", func(t *testing.T) {
		result, err := uc.PlanFreeWindows(context.Background(), &requests.PlanFreeWindows{
			PhysicianID: "phys-1",
			RoomID:      "room-1",
		})
		require.NoError(t, err)
		require.Len(t, result.FreeSegments, 2)

		assert.Equal(t, "MONDAY", result.FreeSegments[0].Day)
		assert.Equal(t, "09:00", result.FreeSegments[0].Start)
		assert.Equal(t, "10:00", result.FreeSegments[0].End)
		assert.Equal(t, "10:30", result.FreeSegments[1].Start)
		assert.Equal(t, "12:00", result.FreeSegments[1].End)

		assert.Equal(t, "phys-1", result.FreeSegments[0].PhysicianID)
		assert.Equal(t, "room-1", result.FreeSegments[0].RoomID)
		assert.Empty(t, result.Slots)
	})

	t.Run("slot expansion discards remainders", func(t *testing.T) {
		result, err := uc.PlanFreeWindows(context.Background(), &requests.PlanFreeWindows{
			PhysicianID: "phys-1",
			RoomID:      "room-1",
			SlotMinutes: 40,
		})
		require.NoError(t, err)
		// The 60-minute window yields one 40-minute slot, the 90-minute
		// window two. Remainders are dropped.
		require.Len(t, result.Slots, 3)
		assert.Equal(t, "09:00", result.Slots[0].Start)
		assert.Equal(t, "09:40", result.Slots[0].End)
		assert.Equal(t, "10:30", result.Slots[1].Start)
		assert.Equal(t, "11:10", result.Slots[1].End)
		assert.Equal(t, "11:10", result.Slots[2].Start)
		assert.Equal(t, "11:50", result.Slots[2].End)
	})

	t.Run("unknown room", func(t *testing.T) {
		_, err := uc.PlanFreeWindows(context.Background(), &requests.PlanFreeWindows{
			PhysicianID: "phys-1",
			RoomID:      "room-missing",
		})
		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("physician without availability gets an empty plan", func(t *testing.T) {
		result, err := uc.PlanFreeWindows(context.Background(), &requests.PlanFreeWindows{
			PhysicianID: "phys-unknown",
			RoomID:      "room-1",
		})
		require.NoError(t, err)
		assert.Empty(t, result.FreeSegments)
		assert.Empty(t, result.Slots)
	})

	t.Run("unreadable room hours are skipped", func(t *testing.T) {
		mixedRooms := &fakeRoomRepository{rooms: map[string]*models.Room{
			"room-2": testRoom("room-2",
				models.RoomHour{Day: "FESTIVO", Start: "09:00", End: "17:00"},
				models.RoomHour{Day: "LUNES", Start: "09:00", End: "11:00"},
			),
		}}
		result, err := newTestUsecase(avail, mixedRooms, &fakeSchemaRepository{}).PlanFreeWindows(
			context.Background(), &requests.PlanFreeWindows{
				PhysicianID: "phys-1",
				RoomID:      "room-2",
			})
		require.NoError(t, err)
		require.Len(t, result.FreeSegments, 1)
		assert.Equal(t, "09:00", result.FreeSegments[0].Start)
		assert.Equal(t, "11:00", result.FreeSegments[0].End)
	})
}

func TestPlannerUsecase_FitCheck(t *testing.T) {
	avail := &fakeAvailabilityRepository{rows: []*models.Availability{
		availabilityRow("phys-1", "MONDAY", "08:00", "12:00"),
	}}
	rooms := &fakeRoomRepository{rooms: map[string]*models.Room{
		"room-1": testRoom("room-1", models.RoomHour{Day: "MONDAY", Start: "09:00", End: "17:00"}),
	}}
	schemas := &fakeSchemaRepository{}
	uc := newTestUsecase(avail, rooms, schemas)

	t.Run("fits inside a free segment", func(t *testing.T) {
		result, err := uc.FitCheck(context.Background(), &requests.FitCheck{
			PhysicianID: "phys-1",
			RoomID:      "room-1",
			Proposed:    requests.WeeklyInterval{Day: "MONDAY", Start: "09:30", End: "10:30"},
		})
		require.NoError(t, err)
		assert.True(t, result.Fits)
	})

	t.Run("does not fit outside room hours", func(t *testing.T) {
		result, err := uc.FitCheck(context.Background(), &requests.FitCheck{
			PhysicianID: "phys-1",
			RoomID:      "room-1",
			Proposed:    requests.WeeklyInterval{Day: "MONDAY", Start: "08:00", End: "09:30"},
		})
		require.NoError(t, err)
		assert.False(t, result.Fits)
	})

	t.Run("malformed proposal", func(t *testing.T) {
		_, err := uc.FitCheck(context.Background(), &requests.FitCheck{
			PhysicianID: "phys-1",
			RoomID:      "room-1",
			Proposed:    requests.WeeklyInterval{Day: "MONDAY", Start: "9am", End: "10:00"},
		})
		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})
}
