package planner

import (
	"context"

	"citaplan-service/internal/pkg/dto/requests"
	"citaplan-service/internal/pkg/dto/responses"
)

type PlannerUsecase interface {
	// PlanFreeWindows computes the weekly windows where the physician and
	// the room are both free: availability intersected with opening hours,
	// minus every stored schema touching either scope.
	PlanFreeWindows(ctx context.Context, request *requests.PlanFreeWindows) (*responses.PlanFreeWindows, error)
	FitCheck(ctx context.Context, request *requests.FitCheck) (*responses.FitCheck, error)
}
