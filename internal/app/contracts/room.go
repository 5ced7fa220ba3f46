package contracts

import (
	"context"

	"citaplan-service/internal/app/models"
)

type RoomRepository interface {
	FindByRoomID(ctx context.Context, roomID string) (*models.Room, error)
}
