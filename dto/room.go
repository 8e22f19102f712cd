package dto

import (
	"time"

	"github.com/google/uuid"
)

type RoomDto struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	TypeRoomID uuid.UUID `json:"typeRoomId"`
	LocationID uuid.UUID `json:"locationId"`
	CreatedAt  time.Time `json:"createdAt"`
}

type CreateRoomRequest struct {
	Name       string    `json:"name"`
	TypeRoomID uuid.UUID `json:"typeRoomId"`
	LocationID uuid.UUID `json:"locationId"`
}

type UpdateRoomRequest struct {
	Name       string    `json:"name"`
	TypeRoomID uuid.UUID `json:"typeRoomId"`
	LocationID uuid.UUID `json:"locationId"`
}

type RoomPaginationRequest struct {
	PaginationRequest
	TypeRoomID string `json:"typeRoomId,omitempty" form:"typeRoomId" binding:"omitempty,uuid"`
	LocationID string `json:"locationId,omitempty" form:"locationId" binding:"omitempty,uuid"`
}
