package rpc

import (
	"time"

	"hotel-booking/dto"
)

type Empty struct{}

type IDRequest struct {
	ID string `json:"id"`
}

type UserRequest struct {
	UserID string                 `json:"userId"`
	Paging *dto.PaginationRequest `json:"paging,omitempty"`
}

// RoomListRequest tham số phân trang phòng
type RoomListRequest = dto.RoomPaginationRequest

type CreateBookingRequest struct {
	RoomID       string    `json:"roomId" binding:"required,uuid"`
	CheckinTime  time.Time `json:"checkinTime" binding:"required"`
	CheckoutTime time.Time `json:"checkoutTime" binding:"required"`
	UserID       string    `json:"userId"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone,omitempty"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type CreatePaymentRequest struct {
	RoomBookingIDs []string `json:"roomBookingIds" binding:"required,min=1,dive,uuid"`
	PromotionCode  string   `json:"promotionCode,omitempty"`
	Total          *float64 `json:"total" binding:"required"`
	Tax            *float64 `json:"tax" binding:"required"`
	Discount       *float64 `json:"discount,omitempty" binding:"omitempty,min=0"`
	UserID         string   `json:"userId"`
}
