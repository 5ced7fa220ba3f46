package schemas

import (
	"context"
	"errors"
	"testing"
	"time"

	"citaplan-service/internal/app/config"
	"citaplan-service/internal/app/contracts"
	"citaplan-service/internal/app/models"
	"citaplan-service/internal/pkg/constvars"
	"citaplan-service/internal/pkg/dto/requests"
	"citaplan-service/internal/pkg/exceptions"
	"citaplan-service/internal/pkg/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeSchemaRepository struct {
	rows     []*models.Schema
	inserted []*models.Schema
	findErr  error
}

func (f *fakeSchemaRepository) InsertSchemas(_ context.Context, schemas []*models.Schema) ([]string, error) {
	ids := make([]string, len(schemas))
	for i, schema := range schemas {
		schema.ID = primitive.NewObjectID()
		ids[i] = schema.ID.Hex()
	}
	f.inserted = append(f.inserted, schemas...)
	f.rows = append(f.rows, schemas...)
	return ids, nil
}

func (f *fakeSchemaRepository) FindByPhysicianOrRoom(_ context.Context, physicianID string, roomIDs []string) ([]*models.Schema, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
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

func (f *fakeSchemaRepository) FindByID(_ context.Context, schemaID string) (*models.Schema, error) {
	for _, row := range f.rows {
		if row.ID.Hex() == schemaID {
			return row, nil
		}
	}
	return nil, nil
}

func (f *fakeSchemaRepository) FindWithFilter(_ context.Context, filter contracts.SchemaFilter, page, pageSize int) ([]*models.Schema, int, error) {
	return f.rows, len(f.rows), nil
}

func (f *fakeSchemaRepository) DeleteByID(_ context.Context, schemaID string) error {
	for i, row := range f.rows {
		if row.ID.Hex() == schemaID {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return exceptions.ErrSchemaNotFound(errors.New("no documents"))
}

type fakeLockerService struct {
	denyKeys map[string]bool
	locked   []string
	released []string
}

func (f *fakeLockerService) TryLock(_ context.Context, key string, _ time.Duration) (bool, string, error) {
	if f.denyKeys[key] {
		return false, "", nil
	}
	f.locked = append(f.locked, key)
	return true, "lock-" + key, nil
}

func (f *fakeLockerService) Unlock(_ context.Context, key, _ string) error {
	f.released = append(f.released, key)
	return nil
}

func (f *fakeLockerService) Refresh(_ context.Context, _, _ string, _ time.Duration) error {
	return nil
}

type fakeEventQueue struct {
	published []contracts.ScheduleEvent
}

func (f *fakeEventQueue) Publish(_ context.Context, event contracts.ScheduleEvent) error {
	f.published = append(f.published, event)
	return nil
}

func storedSchema(physicianID, centerID, roomID, day, start, end string) *models.Schema {
	return &models.Schema{
		ID:          primitive.NewObjectID(),
		PhysicianID: physicianID,
		CenterID:    centerID,
		RoomID:      roomID,
		Day:         day,
		Start:       start,
		End:         end,
	}
}

func newTestUsecase(repo *fakeSchemaRepository, lockSvc *fakeLockerService, queue *fakeEventQueue) SchemaUsecase {
	cfg := &config.InternalConfig{}
	cfg.App.CommitLockTTLInSeconds = 15
	return NewSchemaUsecase(repo, lockSvc, queue, cfg, zap.NewNop())
}

func TestSchemaUsecase_Validate(t *testing.T) {
	t.Run("clean batch reports nothing", func(t *testing.T) {
		repo := &fakeSchemaRepository{rows: []*models.Schema{
			storedSchema("phys-2", "center-1", "room-1", "MONDAY", "08:00", "10:00"),
		}}
		uc := newTestUsecase(repo, &fakeLockerService{}, &fakeEventQueue{})

		result, err := uc.Validate(context.Background(), &requests.ValidateSchemas{
			PhysicianID: "phys-1",
			CenterID:    "center-1",
			Entries: []requests.SchemaEntry{
				{WeeklyInterval: requests.WeeklyInterval{Day: "LUNES", Start: "10:00", End: "12:00"}, RoomID: "room-1"},
			},
		})
		require.NoError(t, err)
		assert.Empty(t, result.InternalOverlaps)
		assert.Empty(t, result.Conflicts)
	})

	t.Run("same room overlap is flagged", func(t *testing.T) {
		repo := &fakeSchemaRepository{rows: []*models.Schema{
			storedSchema("phys-2", "center-1", "room-1", "MONDAY", "09:00", "11:00"),
		}}
		uc := newTestUsecase(repo, &fakeLockerService{}, &fakeEventQueue{})

		result, err := uc.Validate(context.Background(), &requests.ValidateSchemas{
			PhysicianID: "phys-1",
			CenterID:    "center-1",
			Entries: []requests.SchemaEntry{
				{WeeklyInterval: requests.WeeklyInterval{Day: "MONDAY", Start: "10:00", End: "12:00"}, RoomID: "room-1"},
			},
		})
		require.NoError(t, err)
		require.Len(t, result.Conflicts, 1)
		assert.Equal(t, string(schedule.ConflictSameRoom), result.Conflicts[0].Kind)
		assert.False(t, result.Conflicts[0].RequiresConfirmation)
	})

	t.Run("cross center overlap requires confirmation", func(t *testing.T) {
		repo := &fakeSchemaRepository{rows: []*models.Schema{
			storedSchema("phys-1", "center-2", "room-9", "MONDAY", "09:00", "11:00"),
		}}
		uc := newTestUsecase(repo, &fakeLockerService{}, &fakeEventQueue{})

		result, err := uc.Validate(context.Background(), &requests.ValidateSchemas{
			PhysicianID: "phys-1",
			CenterID:    "center-1",
			Entries: []requests.SchemaEntry{
				{WeeklyInterval: requests.WeeklyInterval{Day: "MONDAY", Start: "10:00", End: "12:00"}, RoomID: "room-1"},
			},
		})
		require.NoError(t, err)
		require.Len(t, result.Conflicts, 1)
		assert.Equal(t, string(schedule.ConflictSamePhysicianOtherCenter), result.Conflicts[0].Kind)
		assert.True(t, result.Conflicts[0].RequiresConfirmation)
	})

	t.Run("excluded schedule ids are skipped", func(t *testing.T) {
		existing := storedSchema("phys-1", "center-1", "room-1", "MONDAY", "09:00", "11:00")
		repo := &fakeSchemaRepository{rows: []*models.Schema{existing}}
		uc := newTestUsecase(repo, &fakeLockerService{}, &fakeEventQueue{})

		result, err := uc.Validate(context.Background(), &requests.ValidateSchemas{
			PhysicianID: "phys-1",
			CenterID:    "center-1",
			Entries: []requests.SchemaEntry{
				{WeeklyInterval: requests.WeeklyInterval{Day: "MONDAY", Start: "09:00", End: "11:00"}, RoomID: "room-1"},
			},
			ExcludeScheduleIDs: []string{existing.ID.Hex()},
		})
		require.NoError(t, err)
		assert.Empty(t, result.Conflicts)
	})

	t.Run("malformed entries are aggregated into one error", func(t *testing.T) {
		uc := newTestUsecase(&fakeSchemaRepository{}, &fakeLockerService{}, &fakeEventQueue{})

		_, err := uc.Validate(context.Background(), &requests.ValidateSchemas{
			PhysicianID: "phys-1",
			CenterID:    "center-1",
			Entries: []requests.SchemaEntry{
				{WeeklyInterval: requests.WeeklyInterval{Day: "Funday", Start: "25:99", End: "12:00"}, RoomID: "room-1"},
				{WeeklyInterval: requests.WeeklyInterval{Day: "MONDAY", Start: "10:00", End: "12:00"}, RoomID: "room-1"},
			},
		})
		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Contains(t, customErr.ClientMessage, "entries[0].day")
		assert.Contains(t, customErr.ClientMessage, "entries[0].start")
	})
}

func TestSchemaUsecase_Create(t *testing.T) {
	t.Run("internal overlap rejects the batch", func(t *testing.T) {
		repo := &fakeSchemaRepository{}
		uc := newTestUsecase(repo, &fakeLockerService{}, &fakeEventQueue{})

		_, err := uc.Create(context.Background(), &requests.CreateSchemas{
			PhysicianID: "phys-1",
			CenterID:    "center-1",
			Entries: []requests.SchemaEntry{
				{WeeklyInterval: requests.WeeklyInterval{Day: "MONDAY", Start: "09:00", End: "12:00"}, RoomID: "room-1"},
				{WeeklyInterval: requests.WeeklyInterval{Day: "MONDAY", Start: "11:00", End: "13:00"}, RoomID: "room-1"},
			},
		})
		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusUnprocessableEntity, customErr.StatusCode)
		assert.Empty(t, repo.inserted)
	})

	t.Run("unconfirmed conflicts block the commit", func(t *testing.T) {
		repo := &fakeSchemaRepository{rows: []*models.Schema{
			storedSchema("phys-1", "center-2", "room-9", "MONDAY", "09:00", "11:00"),
		}}
		uc := newTestUsecase(repo, &fakeLockerService{}, &fakeEventQueue{})

		_, err := uc.Create(context.Background(), &requests.CreateSchemas{
			PhysicianID: "phys-1",
			CenterID:    "center-1",
			Entries: []requests.SchemaEntry{
				{WeeklyInterval: requests.WeeklyInterval{Day: "MONDAY", Start: "10:00", End: "12:00"}, RoomID: "room-1"},
			},
		})
		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Empty(t, repo.inserted)
	})

	t.Run("confirmed conflicts commit and publish both events", func(t *testing.T) {
		repo := &fakeSchemaRepository{rows: []*models.Schema{
			storedSchema("phys-1", "center-2", "room-9", "MONDAY", "09:00", "11:00"),
		}}
		queue := &fakeEventQueue{}
		uc := newTestUsecase(repo, &fakeLockerService{}, queue)

		result, err := uc.Create(context.Background(), &requests.CreateSchemas{
			PhysicianID: "phys-1",
			CenterID:    "center-1",
			Entries: []requests.SchemaEntry{
				{WeeklyInterval: requests.WeeklyInterval{Day: "MONDAY", Start: "10:00", End: "12:00"}, RoomID: "room-1"},
			},
			Confirmed: true,
		})
		require.NoError(t, err)
		require.Len(t, result.Created, 1)
		assert.NotEmpty(t, result.Created[0].ID)
		require.Len(t, result.Conflicts, 1)

		require.Len(t, queue.published, 2)
		assert.Equal(t, contracts.EventSchemaCreated, queue.published[0].Type)
		assert.Equal(t, contracts.EventSchemaConflict, queue.published[1].Type)
		assert.Equal(t, []string{string(schedule.ConflictSamePhysicianOtherCenter)}, queue.published[1].ConflictKinds)
	})

	t.Run("clean commit stores canonical day and times", func(t *testing.T) {
		repo := &fakeSchemaRepository{}
		queue := &fakeEventQueue{}
		lockSvc := &fakeLockerService{}
		uc := newTestUsecase(repo, lockSvc, queue)

		result, err := uc.Create(context.Background(), &requests.CreateSchemas{
			PhysicianID: "phys-1",
			CenterID:    "center-1",
			Entries: []requests.SchemaEntry{
				{WeeklyInterval: requests.WeeklyInterval{Day: "miércoles", Start: "09:00:30", End: "12:00"}, RoomID: "room-1"},
			},
		})
		require.NoError(t, err)
		require.Len(t, repo.inserted, 1)
		assert.Equal(t, "WEDNESDAY", repo.inserted[0].Day)
		assert.Equal(t, "09:00", repo.inserted[0].Start)
		assert.Equal(t, "12:00", repo.inserted[0].End)
		assert.Equal(t, "WEDNESDAY", result.Created[0].Day)

		require.Len(t, lockSvc.locked, 1)
		assert.Equal(t, lockSvc.locked, lockSvc.released)
		require.Len(t, queue.published, 1)
		assert.Equal(t, contracts.EventSchemaCreated, queue.published[0].Type)
	})

	t.Run("busy room lock returns conflict status", func(t *testing.T) {
		lockSvc := &fakeLockerService{denyKeys: map[string]bool{
			"lock:schema-commit:room-1": true,
		}}
		repo := &fakeSchemaRepository{}
		uc := newTestUsecase(repo, lockSvc, &fakeEventQueue{})

		_, err := uc.Create(context.Background(), &requests.CreateSchemas{
			PhysicianID: "phys-1",
			CenterID:    "center-1",
			Entries: []requests.SchemaEntry{
				{WeeklyInterval: requests.WeeklyInterval{Day: "MONDAY", Start: "10:00", End: "12:00"}, RoomID: "room-1"},
			},
		})
		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Empty(t, repo.inserted)
	})

	t.Run("multi room batch locks rooms in sorted order", func(t *testing.T) {
		lockSvc := &fakeLockerService{}
		uc := newTestUsecase(&fakeSchemaRepository{}, lockSvc, &fakeEventQueue{})

		_, err := uc.Create(context.Background(), &requests.CreateSchemas{
			PhysicianID: "phys-1",
			CenterID:    "center-1",
			Entries: []requests.SchemaEntry{
				{WeeklyInterval: requests.WeeklyInterval{Day: "MONDAY", Start: "10:00", End: "12:00"}, RoomID: "room-b"},
				{WeeklyInterval: requests.WeeklyInterval{Day: "TUESDAY", Start: "10:00", End: "12:00"}, RoomID: "room-a"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{
			"lock:schema-commit:room-a",
			"lock:schema-commit:room-b",
		}, lockSvc.locked)
	})
}

func TestSchemaUsecase_Delete(t *testing.T) {
	t.Run("removes the stored schema", func(t *testing.T) {
		existing := storedSchema("phys-1", "center-1", "room-1", "MONDAY", "09:00", "11:00")
		repo := &fakeSchemaRepository{rows: []*models.Schema{existing}}
		uc := newTestUsecase(repo, &fakeLockerService{}, &fakeEventQueue{})

		require.NoError(t, uc.Delete(context.Background(), existing.ID.Hex()))
		assert.Empty(t, repo.rows)
	})

	t.Run("unknown id returns not found", func(t *testing.T) {
		repo := &fakeSchemaRepository{rows: []*models.Schema{
			storedSchema("phys-1", "center-1", "room-1", "MONDAY", "09:00", "11:00"),
		}}
		uc := newTestUsecase(repo, &fakeLockerService{}, &fakeEventQueue{})

		err := uc.Delete(context.Background(), primitive.NewObjectID().Hex())
		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		require.Len(t, repo.rows, 1)
	})
}
