package dto

import (
	"time"

	"github.com/google/uuid"
)

type ReviewDto struct {
	ID        uuid.UUID `json:"id"`
	RoomID    uuid.UUID `json:"roomId"`
	RoomName  string    `json:"roomName"`
	AccountID uuid.UUID `json:"accountId"`
	Comment   string    `json:"comment"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateReviewRequest struct {
	RoomID    uuid.UUID `json:"roomId"`
	AccountID uuid.UUID `json:"accountId"`
	Comment   string    `json:"comment"`
	Rating    int       `json:"rating"`
}

type UpdateReviewRequest struct {
	Comment string `json:"comment"`
	Rating  int    `json:"rating"`
}

type ReviewPaginationRequest struct {
	PaginationRequest
	RoomID    string `json:"roomId,omitempty" form:"roomId" binding:"omitempty,uuid"`
	AccountID string `json:"accountId,omitempty" form:"accountId" binding:"omitempty,uuid"`
	Rating    *int   `json:"rating,omitempty" form:"rating" binding:"omitempty,min=1,max=5"`
}
