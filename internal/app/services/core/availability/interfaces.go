package availability

import (
	"context"

	"citaplan-service/internal/pkg/dto/requests"
	"citaplan-service/internal/pkg/dto/responses"
)

type AvailabilityUsecase interface {
	// Replace swaps the physician's whole weekly availability at one center.
	Replace(ctx context.Context, physicianID string, request *requests.ReplaceAvailability) ([]responses.WeeklyInterval, error)
	// Check reports which stored schemas a proposed availability set would
	// collide with, before anything is saved.
	Check(ctx context.Context, physicianID string, request *requests.AvailabilityCheck) (*responses.SchemaValidation, error)
}
