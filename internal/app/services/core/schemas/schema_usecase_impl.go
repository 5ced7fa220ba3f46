package schemas

import (
	"context"
	"fmt"
	"sort"
	"time"

	"citaplan-service/internal/app/config"
	"citaplan-service/internal/app/contracts"
	"citaplan-service/internal/app/models"
	"citaplan-service/internal/pkg/constvars"
	"citaplan-service/internal/pkg/dto/requests"
	"citaplan-service/internal/pkg/dto/responses"
	"citaplan-service/internal/pkg/exceptions"
	"citaplan-service/internal/pkg/schedule"
	"citaplan-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type schemaUsecase struct {
	SchemaRepository contracts.SchemaRepository
	LockerService    contracts.LockerService
	EventQueue       contracts.EventQueue
	InternalConfig   *config.InternalConfig
	Log              *zap.Logger
}

func NewSchemaUsecase(
	schemaRepository contracts.SchemaRepository,
	lockerService contracts.LockerService,
	eventQueue contracts.EventQueue,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) SchemaUsecase {
	return &schemaUsecase{
		SchemaRepository: schemaRepository,
		LockerService:    lockerService,
		EventQueue:       eventQueue,
		InternalConfig:   internalConfig,
		Log:              logger,
	}
}

func (uc *schemaUsecase) Validate(ctx context.Context, request *requests.ValidateSchemas) (*responses.SchemaValidation, error) {
	candidates, err := uc.mapEntries(request.PhysicianID, request.CenterID, request.Entries)
	if err != nil {
		return nil, err
	}
	return uc.runPipeline(ctx, candidates, request.ExcludeScheduleIDs)
}

func (uc *schemaUsecase) Create(ctx context.Context, request *requests.CreateSchemas) (*responses.SchemasCreated, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	candidates, err := uc.mapEntries(request.PhysicianID, request.CenterID, request.Entries)
	if err != nil {
		return nil, err
	}

	// One commit at a time per room. Locks are taken in sorted order so two
	// batches spanning the same rooms cannot deadlock each other.
	lockTTL := time.Duration(uc.InternalConfig.App.CommitLockTTLInSeconds) * time.Second
	roomIDs := distinctRoomIDs(request.Entries)
	type heldLock struct{ key, value string }
	var held []heldLock
	defer func() {
		for _, lock := range held {
			if unlockErr := uc.LockerService.Unlock(ctx, lock.key, lock.value); unlockErr != nil {
				uc.Log.Error("schemaUsecase.Create failed releasing commit lock",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingRedisKey, lock.key),
					zap.Error(unlockErr),
				)
			}
		}
	}()
	for _, roomID := range roomIDs {
		key := fmt.Sprintf(constvars.RedisKeySchemaCommitLock, roomID)
		acquired, lockValue, lockErr := uc.LockerService.TryLock(ctx, key, lockTTL)
		if lockErr != nil {
			return nil, lockErr
		}
		if !acquired {
			return nil, exceptions.ErrCommitLockBusy(nil)
		}
		held = append(held, heldLock{key: key, value: lockValue})
	}

	// Validation runs again under the lock; the corpus may have changed
	// since the operator's preview.
	validation, err := uc.runPipeline(ctx, candidates, request.ExcludeScheduleIDs)
	if err != nil {
		return nil, err
	}
	if len(validation.InternalOverlaps) > 0 {
		first := validation.InternalOverlaps[0]
		return nil, exceptions.ErrInternalOverlap(fmt.Sprintf("%s %s-%s collides with %s %s-%s",
			first.A.Day, first.A.Start, first.A.End,
			first.B.Day, first.B.Start, first.B.End,
		))
	}
	if len(validation.Conflicts) > 0 && !request.Confirmed {
		return nil, exceptions.ErrConflictsUnconfirmed(len(validation.Conflicts))
	}

	rows := make([]*models.Schema, len(candidates))
	for i, candidate := range candidates {
		rows[i] = &models.Schema{
			PhysicianID: candidate.PhysicianID,
			CenterID:    candidate.CenterID,
			RoomID:      candidate.RoomID,
			SpecialtyID: candidate.SpecialtyID,
			Day:         candidate.Day.String(),
			Start:       candidate.Start.Format(),
			End:         candidate.End.Format(),
		}
	}
	insertedIDs, err := uc.SchemaRepository.InsertSchemas(ctx, rows)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("schemaUsecase.Create committed batch",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPhysicianIDKey, request.PhysicianID),
		zap.String(constvars.LoggingCenterIDKey, request.CenterID),
		zap.Int(constvars.LoggingConflictCountKey, len(validation.Conflicts)),
	)

	uc.publishEvents(ctx, request, insertedIDs, validation.Conflicts)

	created := make([]responses.Schema, len(candidates))
	for i, candidate := range candidates {
		candidate.ID = insertedIDs[i]
		created[i] = responses.NewSchema(candidate)
	}
	return &responses.SchemasCreated{
		Created:   created,
		Conflicts: validation.Conflicts,
	}, nil
}

func (uc *schemaUsecase) FindAll(ctx context.Context, filter contracts.SchemaFilter, page, pageSize int) ([]responses.Schema, *responses.Pagination, error) {
	rows, total, err := uc.SchemaRepository.FindWithFilter(ctx, filter, page, pageSize)
	if err != nil {
		return nil, nil, err
	}

	result := make([]responses.Schema, 0, len(rows))
	for _, row := range rows {
		scoped, parseErr := row.ToScopedInterval()
		if parseErr != nil {
			uc.logUnreadableRow(ctx, row, parseErr)
			continue
		}
		result = append(result, responses.NewSchema(scoped))
	}

	pagination := utils.BuildPaginationResponse(total, page, pageSize,
		uc.InternalConfig.App.BaseUrl+"/"+constvars.ResourceSchemas)
	return result, pagination, nil
}

func (uc *schemaUsecase) Delete(ctx context.Context, schemaID string) error {
	row, err := uc.SchemaRepository.FindByID(ctx, schemaID)
	if err != nil {
		return err
	}
	if row == nil {
		return exceptions.ErrSchemaNotFound(nil)
	}

	if err := uc.SchemaRepository.DeleteByID(ctx, schemaID); err != nil {
		return err
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("schemaUsecase.Delete removed schema",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("schema_id", schemaID),
		zap.String(constvars.LoggingPhysicianIDKey, row.PhysicianID),
		zap.String(constvars.LoggingRoomIDKey, row.RoomID),
	)
	return nil
}

// runPipeline executes the shared validation steps over already normalized
// candidates: internal-overlap check, corpus load, conflict detection.
func (uc *schemaUsecase) runPipeline(ctx context.Context, candidates []schedule.ScopedInterval, excludeIDs []string) (*responses.SchemaValidation, error) {
	intervals := make([]schedule.WeeklyInterval, len(candidates))
	for i, candidate := range candidates {
		intervals[i] = candidate.WeeklyInterval
	}

	validation := &responses.SchemaValidation{}
	for _, overlap := range schedule.ValidateNoInternalOverlap(intervals) {
		validation.InternalOverlaps = append(validation.InternalOverlaps, responses.NewInternalOverlap(overlap))
	}

	roomIDs := make([]string, 0, len(candidates))
	seen := map[string]struct{}{}
	for _, candidate := range candidates {
		if _, ok := seen[candidate.RoomID]; !ok {
			seen[candidate.RoomID] = struct{}{}
			roomIDs = append(roomIDs, candidate.RoomID)
		}
	}
	physicianID := ""
	if len(candidates) > 0 {
		physicianID = candidates[0].PhysicianID
	}

	rows, err := uc.SchemaRepository.FindByPhysicianOrRoom(ctx, physicianID, roomIDs)
	if err != nil {
		return nil, err
	}
	existing := make([]schedule.ScopedInterval, 0, len(rows))
	for _, row := range rows {
		scoped, parseErr := row.ToScopedInterval()
		if parseErr != nil {
			uc.logUnreadableRow(ctx, row, parseErr)
			continue
		}
		existing = append(existing, scoped)
	}

	exclude := make(map[string]struct{}, len(excludeIDs))
	for _, id := range excludeIDs {
		exclude[id] = struct{}{}
	}

	for _, record := range schedule.DetectConflicts(candidates, existing, exclude) {
		validation.Conflicts = append(validation.Conflicts, responses.NewConflict(record))
	}
	return validation, nil
}

func (uc *schemaUsecase) mapEntries(physicianID, centerID string, entries []requests.SchemaEntry) ([]schedule.ScopedInterval, error) {
	candidates := make([]schedule.ScopedInterval, 0, len(entries))
	var problems []string
	for i, entry := range entries {
		iv, entryProblems := utils.MapWeeklyInterval(entry.WeeklyInterval, fmt.Sprintf("entries[%d]", i))
		if len(entryProblems) > 0 {
			problems = append(problems, entryProblems...)
			continue
		}
		candidates = append(candidates, schedule.ScopedInterval{
			WeeklyInterval: iv,
			RoomID:         entry.RoomID,
			PhysicianID:    physicianID,
			CenterID:       centerID,
			SpecialtyID:    entry.SpecialtyID,
		})
	}
	if len(problems) > 0 {
		return nil, utils.BuildParseError(problems)
	}
	return candidates, nil
}

func (uc *schemaUsecase) publishEvents(ctx context.Context, request *requests.CreateSchemas, insertedIDs []string, conflicts []responses.Conflict) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	events := []contracts.ScheduleEvent{{
		Type:        contracts.EventSchemaCreated,
		PhysicianID: request.PhysicianID,
		CenterID:    request.CenterID,
		SchemaIDs:   insertedIDs,
	}}
	if len(conflicts) > 0 {
		kinds := make([]string, len(conflicts))
		for i, conflict := range conflicts {
			kinds[i] = conflict.Kind
		}
		events = append(events, contracts.ScheduleEvent{
			Type:          contracts.EventSchemaConflict,
			PhysicianID:   request.PhysicianID,
			CenterID:      request.CenterID,
			SchemaIDs:     insertedIDs,
			ConflictKinds: kinds,
		})
	}

	// Events trail the commit; a broker hiccup must not undo a saved batch.
	for _, event := range events {
		if err := uc.EventQueue.Publish(ctx, event); err != nil {
			uc.Log.Error("schemaUsecase failed publishing schedule event",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String("event_type", event.Type),
				zap.Error(err),
			)
		}
	}
}

func (uc *schemaUsecase) logUnreadableRow(ctx context.Context, row *models.Schema, err error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Warn("schemaUsecase skipping unreadable schema row",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("schema_id", row.ID.Hex()),
		zap.Error(err),
	)
}

func distinctRoomIDs(entries []requests.SchemaEntry) []string {
	seen := map[string]struct{}{}
	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		if _, ok := seen[entry.RoomID]; !ok {
			seen[entry.RoomID] = struct{}{}
			ids = append(ids, entry.RoomID)
		}
	}
	sort.Strings(ids)
	return ids
}
