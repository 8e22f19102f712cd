package dto

import (
	"time"

	"github.com/google/uuid"
)

type LocationDto struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateLocationRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type UpdateLocationRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type LocationPaginationRequest struct {
	PaginationRequest
}
