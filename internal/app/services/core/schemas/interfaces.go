package schemas

import (
	"context"

	"citaplan-service/internal/app/contracts"
	"citaplan-service/internal/pkg/dto/requests"
	"citaplan-service/internal/pkg/dto/responses"
)

type SchemaUsecase interface {
	// Validate runs the full pipeline without persisting: normalization,
	// internal-overlap check, cross-scope conflict detection.
	Validate(ctx context.Context, request *requests.ValidateSchemas) (*responses.SchemaValidation, error)
	// Create re-runs validation under a per-room commit lock and persists
	// the batch. Confirmable conflicts pass only when Confirmed is set.
	Create(ctx context.Context, request *requests.CreateSchemas) (*responses.SchemasCreated, error)
	FindAll(ctx context.Context, filter contracts.SchemaFilter, page, pageSize int) ([]responses.Schema, *responses.Pagination, error)
	Delete(ctx context.Context, schemaID string) error
}
