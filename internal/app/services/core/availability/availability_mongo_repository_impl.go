package availability

import (
	"context"

	"citaplan-service/internal/app/contracts"
	"citaplan-service/internal/app/models"
	"citaplan-service/internal/pkg/constvars"
	"citaplan-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AvailabilityMongoRepository struct {
	Collection *mongo.Collection
}

func NewAvailabilityMongoRepository(db *mongo.Client, dbName string) contracts.AvailabilityRepository {
	return &AvailabilityMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.CollectionAvailability),
	}
}

func (repo *AvailabilityMongoRepository) ReplaceForPhysician(ctx context.Context, physicianID, centerID string, entries []*models.Availability) error {
	_, err := repo.Collection.DeleteMany(ctx, bson.M{
		"physicianId": physicianID,
		"centerId":    centerID,
	})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}

	if len(entries) == 0 {
		return nil
	}

	documents := make([]interface{}, len(entries))
	for i, entry := range entries {
		entry.SetCreatedAtUpdatedAt()
		documents[i] = entry
	}
	_, err = repo.Collection.InsertMany(ctx, documents)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *AvailabilityMongoRepository) FindByPhysician(ctx context.Context, physicianID string) ([]*models.Availability, error) {
	return repo.find(ctx, bson.M{"physicianId": physicianID})
}

func (repo *AvailabilityMongoRepository) FindByPhysicianAndCenter(ctx context.Context, physicianID, centerID string) ([]*models.Availability, error) {
	return repo.find(ctx, bson.M{"physicianId": physicianID, "centerId": centerID})
}

func (repo *AvailabilityMongoRepository) find(ctx context.Context, query bson.M) ([]*models.Availability, error) {
	cursor, err := repo.Collection.Find(ctx, query)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var rows []*models.Availability
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return rows, nil
}
