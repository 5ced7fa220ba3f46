package contracts

import (
	"context"

	"citaplan-service/internal/app/models"
)

type AvailabilityRepository interface {
	// ReplaceForPhysician swaps the physician's whole weekly set at one
	// center in a single operation.
	ReplaceForPhysician(ctx context.Context, physicianID, centerID string, entries []*models.Availability) error
	FindByPhysician(ctx context.Context, physicianID string) ([]*models.Availability, error)
	FindByPhysicianAndCenter(ctx context.Context, physicianID, centerID string) ([]*models.Availability, error)
}
