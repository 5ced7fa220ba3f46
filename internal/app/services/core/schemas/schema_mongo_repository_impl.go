package schemas

import (
	"context"

	"citaplan-service/internal/app/contracts"
	"citaplan-service/internal/app/models"
	"citaplan-service/internal/pkg/constvars"
	"citaplan-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SchemaMongoRepository struct {
	Collection *mongo.Collection
}

func NewSchemaMongoRepository(db *mongo.Client, dbName string) contracts.SchemaRepository {
	return &SchemaMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.CollectionSchemas),
	}
}

func (repo *SchemaMongoRepository) InsertSchemas(ctx context.Context, schemas []*models.Schema) ([]string, error) {
	documents := make([]interface{}, len(schemas))
	for i, schema := range schemas {
		schema.SetCreatedAtUpdatedAt()
		documents[i] = schema
	}

	result, err := repo.Collection.InsertMany(ctx, documents)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}

	ids := make([]string, len(result.InsertedIDs))
	for i, insertedID := range result.InsertedIDs {
		ids[i] = insertedID.(primitive.ObjectID).Hex()
	}
	return ids, nil
}

func (repo *SchemaMongoRepository) FindByPhysicianOrRoom(ctx context.Context, physicianID string, roomIDs []string) ([]*models.Schema, error) {
	clauses := []bson.M{}
	if physicianID != "" {
		clauses = append(clauses, bson.M{"physicianId": physicianID})
	}
	if len(roomIDs) > 0 {
		clauses = append(clauses, bson.M{"roomId": bson.M{"$in": roomIDs}})
	}
	if len(clauses) == 0 {
		return nil, nil
	}

	cursor, err := repo.Collection.Find(ctx, bson.M{"$or": clauses})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var schemas []*models.Schema
	if err := cursor.All(ctx, &schemas); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return schemas, nil
}

func (repo *SchemaMongoRepository) FindByID(ctx context.Context, schemaID string) (*models.Schema, error) {
	objectID, err := primitive.ObjectIDFromHex(schemaID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var schema models.Schema
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&schema)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &schema, nil
}

func (repo *SchemaMongoRepository) FindWithFilter(ctx context.Context, filter contracts.SchemaFilter, page, pageSize int) ([]*models.Schema, int, error) {
	query := bson.M{}
	if filter.RoomID != "" {
		query["roomId"] = filter.RoomID
	}
	if filter.PhysicianID != "" {
		query["physicianId"] = filter.PhysicianID
	}
	if filter.CenterID != "" {
		query["centerId"] = filter.CenterID
	}

	total, err := repo.Collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize)).
		SetSort(bson.D{{Key: "physicianId", Value: 1}, {Key: "day", Value: 1}, {Key: "start", Value: 1}})

	cursor, err := repo.Collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var schemas []*models.Schema
	if err := cursor.All(ctx, &schemas); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return schemas, int(total), nil
}

func (repo *SchemaMongoRepository) DeleteByID(ctx context.Context, schemaID string) error {
	objectID, err := primitive.ObjectIDFromHex(schemaID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	result, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrSchemaNotFound(mongo.ErrNoDocuments)
	}
	return nil
}
