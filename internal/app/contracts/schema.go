package contracts

import (
	"context"

	"citaplan-service/internal/app/models"
)

// SchemaFilter narrows listing queries. Empty fields are ignored.
type SchemaFilter struct {
	RoomID      string
	PhysicianID string
	CenterID    string
}

type SchemaRepository interface {
	InsertSchemas(ctx context.Context, schemas []*models.Schema) ([]string, error)
	// FindByPhysicianOrRoom loads the conflict corpus for a candidate batch:
	// every stored entry that shares a physician or touches one of the rooms.
	FindByPhysicianOrRoom(ctx context.Context, physicianID string, roomIDs []string) ([]*models.Schema, error)
	FindByID(ctx context.Context, schemaID string) (*models.Schema, error)
	FindWithFilter(ctx context.Context, filter SchemaFilter, page, pageSize int) ([]*models.Schema, int, error)
	DeleteByID(ctx context.Context, schemaID string) error
}
