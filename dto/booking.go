package dto

import (
	"time"

	"github.com/google/uuid"
)

type BookingDto struct {
	ID           uuid.UUID `json:"id"`
	RoomID       uuid.UUID `json:"roomId"`
	RoomName     string    `json:"roomName"`
	CheckInTime  time.Time `json:"checkInTime"`
	CheckOutTime time.Time `json:"checkOutTime"`
	AccountID    uuid.UUID `json:"accountId"`
	Status       int       `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CreateBookingRequest struct {
	RoomID       uuid.UUID `json:"roomId"`
	CheckInTime  time.Time `json:"checkInTime"`
	CheckOutTime time.Time `json:"checkOutTime"`
	AccountID    uuid.UUID `json:"accountId"`
}

type UpdateBookingRequest struct {
	CheckInTime  time.Time `json:"checkInTime"`
	CheckOutTime time.Time `json:"checkOutTime"`
	Status       int       `json:"status"`
}

type BookingPaginationRequest struct {
	PaginationRequest
	RoomID       string    `json:"roomId,omitempty" form:"roomId" binding:"omitempty,uuid"`
	AccountID    string    `json:"accountId,omitempty" form:"accountId" binding:"omitempty,uuid"`
	CheckInTime  time.Time `json:"checkInTime,omitempty" form:"checkInTime"`
	CheckOutTime time.Time `json:"checkOutTime,omitempty" form:"checkOutTime"`
	Status       *int      `json:"status,omitempty" form:"status" binding:"omitempty,bookingstatus"`
}
