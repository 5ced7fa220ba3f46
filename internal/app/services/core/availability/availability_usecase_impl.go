package availability

import (
	"context"
	"fmt"

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

type availabilityUsecase struct {
	AvailabilityRepository contracts.AvailabilityRepository
	SchemaRepository       contracts.SchemaRepository
	Log                    *zap.Logger
}

func NewAvailabilityUsecase(
	availabilityRepository contracts.AvailabilityRepository,
	schemaRepository contracts.SchemaRepository,
	logger *zap.Logger,
) AvailabilityUsecase {
	return &availabilityUsecase{
		AvailabilityRepository: availabilityRepository,
		SchemaRepository:       schemaRepository,
		Log:                    logger,
	}
}

func (uc *availabilityUsecase) Replace(ctx context.Context, physicianID string, request *requests.ReplaceAvailability) ([]responses.WeeklyInterval, error) {
	intervals, problems := utils.MapWeeklyIntervals(request.Entries, "entries")
	if len(problems) > 0 {
		return nil, utils.BuildParseError(problems)
	}

	if overlaps := schedule.ValidateNoInternalOverlap(intervals); len(overlaps) > 0 {
		first := overlaps[0]
		return nil, exceptions.ErrInternalOverlap(fmt.Sprintf("%s collides with %s", first.A, first.B))
	}

	rows := make([]*models.Availability, len(intervals))
	for i, iv := range intervals {
		rows[i] = &models.Availability{
			PhysicianID: physicianID,
			CenterID:    request.CenterID,
			Day:         iv.Day.String(),
			Start:       iv.Start.Format(),
			End:         iv.End.Format(),
		}
	}
	if err := uc.AvailabilityRepository.ReplaceForPhysician(ctx, physicianID, request.CenterID, rows); err != nil {
		return nil, err
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("availabilityUsecase.Replace swapped weekly set",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPhysicianIDKey, physicianID),
		zap.String(constvars.LoggingCenterIDKey, request.CenterID),
		zap.Int("entry_count", len(rows)),
	)

	result := make([]responses.WeeklyInterval, len(intervals))
	for i, iv := range intervals {
		result[i] = responses.NewWeeklyInterval(iv)
	}
	return result, nil
}

func (uc *availabilityUsecase) Check(ctx context.Context, physicianID string, request *requests.AvailabilityCheck) (*responses.SchemaValidation, error) {
	intervals, problems := utils.MapWeeklyIntervals(request.Entries, "entries")
	if len(problems) > 0 {
		return nil, utils.BuildParseError(problems)
	}

	validation := &responses.SchemaValidation{}
	for _, overlap := range schedule.ValidateNoInternalOverlap(intervals) {
		validation.InternalOverlaps = append(validation.InternalOverlaps, responses.NewInternalOverlap(overlap))
	}

	// Candidates carry no room so only the physician-level kinds can fire.
	// Schemas at the editing center are skipped: an availability window is
	// supposed to contain them, overlapping there is the normal case. What
	// the operator needs to see is hours already promised elsewhere.
	candidates := make([]schedule.ScopedInterval, len(intervals))
	for i, iv := range intervals {
		candidates[i] = schedule.ScopedInterval{
			WeeklyInterval: iv,
			PhysicianID:    physicianID,
			CenterID:       request.CenterID,
		}
	}

	rows, err := uc.SchemaRepository.FindByPhysicianOrRoom(ctx, physicianID, nil)
	if err != nil {
		return nil, err
	}
	existing := make([]schedule.ScopedInterval, 0, len(rows))
	for _, row := range rows {
		if row.CenterID == request.CenterID {
			continue
		}
		scoped, parseErr := row.ToScopedInterval()
		if parseErr != nil {
			uc.Log.Warn("availabilityUsecase skipping unreadable schema row",
				zap.String("schema_id", row.ID.Hex()),
				zap.Error(parseErr),
			)
			continue
		}
		existing = append(existing, scoped)
	}

	for _, record := range schedule.DetectConflicts(candidates, existing, nil) {
		validation.Conflicts = append(validation.Conflicts, responses.NewConflict(record))
	}
	return validation, nil
}
