package gateway

import (
	"context"

	"hotel-booking/rpc"
)

// AccountClient các method của account-service
type AccountClient interface {
	GetProfile(ctx context.Context, in rpc.UserRequest) (rpc.RawReply, error)
	Login(ctx context.Context, in rpc.LoginRequest) (rpc.RawReply, error)
	Register(ctx context.Context, in rpc.RegisterRequest) (rpc.RawReply, error)
	RefreshToken(ctx context.Context, in rpc.RefreshTokenRequest) (rpc.RawReply, error)
}

// BookingClient các method của booking-service
type BookingClient interface {
	GetRooms(ctx context.Context, in rpc.RoomListRequest) (rpc.RawReply, error)
	GetRoom(ctx context.Context, in rpc.IDRequest) (rpc.RawReply, error)
	CreateBooking(ctx context.Context, in rpc.CreateBookingRequest) (rpc.RawReply, error)
	GetMyBookings(ctx context.Context, in rpc.UserRequest) (rpc.RawReply, error)
}

// PaymentClient các method của payment-service
type PaymentClient interface {
	CreatePayment(ctx context.Context, in rpc.CreatePaymentRequest) (rpc.RawReply, error)
	GetPromotions(ctx context.Context) (rpc.RawReply, error)
	GetMyPayments(ctx context.Context, in rpc.UserRequest) (rpc.RawReply, error)
	GetPayment(ctx context.Context, in rpc.IDRequest) (rpc.RawReply, error)
}

var (
	_ AccountClient = (*rpc.AccountServiceClient)(nil)
	_ BookingClient = (*rpc.BookingServiceClient)(nil)
	_ PaymentClient = (*rpc.PaymentServiceClient)(nil)
)
