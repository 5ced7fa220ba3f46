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

type RoomMongoRepository struct {
	Collection *mongo.Collection
}

func NewRoomMongoRepository(db *mongo.Client, dbName string) contracts.RoomRepository {
	return &RoomMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.CollectionRooms),
	}
}

func (repo *RoomMongoRepository) FindByRoomID(ctx context.Context, roomID string) (*models.Room, error) {
	var room models.Room
	err := repo.Collection.FindOne(ctx, bson.M{"roomId": roomID}).Decode(&room)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &room, nil
}
