package dto

import (
	"time"

	"github.com/google/uuid"
)

type TypeRoomDto struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	PricePerHour float64   `json:"pricePerHour"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CreateTypeRoomRequest struct {
	Name         string  `json:"name"`
	PricePerHour float64 `json:"pricePerHour"`
}

type UpdateTypeRoomRequest struct {
	Name         string  `json:"name"`
	PricePerHour float64 `json:"pricePerHour"`
}

type TypeRoomPaginationRequest struct {
	PaginationRequest
}
