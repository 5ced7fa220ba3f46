package planner

import (
	"context"

	"citaplan-service/internal/app/contracts"
	"citaplan-service/internal/pkg/constvars"
	"citaplan-service/internal/pkg/dto/requests"
	"citaplan-service/internal/pkg/dto/responses"
	"citaplan-service/internal/pkg/exceptions"
	"citaplan-service/internal/pkg/schedule"
	"citaplan-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type plannerUsecase struct {
	AvailabilityRepository contracts.AvailabilityRepository
	RoomRepository         contracts.RoomRepository
	SchemaRepository       contracts.SchemaRepository
	Log                    *zap.Logger
}

func NewPlannerUsecase(
	availabilityRepository contracts.AvailabilityRepository,
	roomRepository contracts.RoomRepository,
	schemaRepository contracts.SchemaRepository,
	logger *zap.Logger,
) PlannerUsecase {
	return &plannerUsecase{
		AvailabilityRepository: availabilityRepository,
		RoomRepository:         roomRepository,
		SchemaRepository:       schemaRepository,
		Log:                    logger,
	}
}

func (uc *plannerUsecase) PlanFreeWindows(ctx context.Context, request *requests.PlanFreeWindows) (*responses.PlanFreeWindows, error) {
	free, err := uc.computeFreeSegments(ctx, request.PhysicianID, request.RoomID)
	if err != nil {
		return nil, err
	}

	response := &responses.PlanFreeWindows{
		FreeSegments: make([]responses.FreeSegment, len(free)),
	}
	for i, segment := range free {
		response.FreeSegments[i] = responses.NewFreeSegment(segment)
	}

	if request.SlotMinutes > 0 {
		for _, slot := range schedule.ExpandSlots(free, request.SlotMinutes) {
			response.Slots = append(response.Slots, responses.NewWeeklyInterval(slot))
		}
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("plannerUsecase.PlanFreeWindows computed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPhysicianIDKey, request.PhysicianID),
		zap.String(constvars.LoggingRoomIDKey, request.RoomID),
		zap.Int("free_segments", len(free)),
	)
	return response, nil
}

func (uc *plannerUsecase) FitCheck(ctx context.Context, request *requests.FitCheck) (*responses.FitCheck, error) {
	proposed, problems := utils.MapWeeklyInterval(request.Proposed, "proposed")
	if len(problems) > 0 {
		return nil, utils.BuildParseError(problems)
	}

	free, err := uc.computeFreeSegments(ctx, request.PhysicianID, request.RoomID)
	if err != nil {
		return nil, err
	}

	return &responses.FitCheck{
		Fits: schedule.FitsWithinFreeSegments(proposed, free),
	}, nil
}

func (uc *plannerUsecase) computeFreeSegments(ctx context.Context, physicianID, roomID string) ([]schedule.FreeSegment, error) {
	// No availability rows is a valid state, not an error: the plan is
	// simply empty and the caller renders it as such.
	availabilityRows, err := uc.AvailabilityRepository.FindByPhysician(ctx, physicianID)
	if err != nil {
		return nil, err
	}
	availability := make([]schedule.WeeklyInterval, 0, len(availabilityRows))
	for _, row := range availabilityRows {
		iv, parseErr := row.ToWeeklyInterval()
		if parseErr != nil {
			uc.Log.Warn("plannerUsecase skipping unreadable availability row",
				zap.String("availability_id", row.ID.Hex()),
				zap.Error(parseErr),
			)
			continue
		}
		availability = append(availability, iv)
	}

	room, err := uc.RoomRepository.FindByRoomID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, exceptions.ErrRoomNotFound(nil)
	}
	roomHours := make([]schedule.WeeklyInterval, 0, len(room.OpeningHours))
	for _, hour := range room.OpeningHours {
		iv, parseErr := hour.ToWeeklyInterval()
		if parseErr != nil {
			uc.Log.Warn("plannerUsecase skipping unreadable room hour",
				zap.String(constvars.LoggingRoomIDKey, roomID),
				zap.Error(parseErr),
			)
			continue
		}
		roomHours = append(roomHours, iv)
	}

	rows, err := uc.SchemaRepository.FindByPhysicianOrRoom(ctx, physicianID, []string{roomID})
	if err != nil {
		return nil, err
	}
	existing := make([]schedule.ScopedInterval, 0, len(rows))
	for _, row := range rows {
		scoped, parseErr := row.ToScopedInterval()
		if parseErr != nil {
			uc.Log.Warn("plannerUsecase skipping unreadable schema row",
				zap.String("schema_id", row.ID.Hex()),
				zap.Error(parseErr),
			)
			continue
		}
		existing = append(existing, scoped)
	}

	return schedule.PlanFreeWindows(availability, roomHours, existing, physicianID, roomID), nil
}
