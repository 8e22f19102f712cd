package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Dial mở kết nối gRPC tới một backend, mặc định dùng JSON codec
func Dial(addr string) (*grpc.ClientConn, error) {
	return grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(CodecName)),
	)
}

func invoke(ctx context.Context, cc grpc.ClientConnInterface, method string, in interface{}) (RawReply, error) {
	var out RawReply
	if err := cc.Invoke(ctx, method, in, &out, grpc.CallContentSubtype(CodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

type AccountServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAccountServiceClient(cc grpc.ClientConnInterface) *AccountServiceClient {
	return &AccountServiceClient{cc: cc}
}

func (c *AccountServiceClient) GetProfile(ctx context.Context, in UserRequest) (RawReply, error) {
	return invoke(ctx, c.cc, "/account.AccountService/GetProfile", in)
}

func (c *AccountServiceClient) Login(ctx context.Context, in LoginRequest) (RawReply, error) {
	return invoke(ctx, c.cc, "/account.AccountService/Login", in)
}

func (c *AccountServiceClient) Register(ctx context.Context, in RegisterRequest) (RawReply, error) {
	return invoke(ctx, c.cc, "/account.AccountService/Register", in)
}

func (c *AccountServiceClient) RefreshToken(ctx context.Context, in RefreshTokenRequest) (RawReply, error) {
	return invoke(ctx, c.cc, "/account.AccountService/RefreshToken", in)
}

type BookingServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewBookingServiceClient(cc grpc.ClientConnInterface) *BookingServiceClient {
	return &BookingServiceClient{cc: cc}
}

func (c *BookingServiceClient) GetRooms(ctx context.Context, in RoomListRequest) (RawReply, error) {
	return invoke(ctx, c.cc, "/"+bookingServiceName+"/GetRooms", in)
}

func (c *BookingServiceClient) GetRoom(ctx context.Context, in IDRequest) (RawReply, error) {
	return invoke(ctx, c.cc, "/"+bookingServiceName+"/GetRoom", in)
}

func (c *BookingServiceClient) CreateBooking(ctx context.Context, in CreateBookingRequest) (RawReply, error) {
	return invoke(ctx, c.cc, "/"+bookingServiceName+"/CreateBooking", in)
}

func (c *BookingServiceClient) GetMyBookings(ctx context.Context, in UserRequest) (RawReply, error) {
	return invoke(ctx, c.cc, "/"+bookingServiceName+"/GetMyBookings", in)
}

type PaymentServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPaymentServiceClient(cc grpc.ClientConnInterface) *PaymentServiceClient {
	return &PaymentServiceClient{cc: cc}
}

func (c *PaymentServiceClient) CreatePayment(ctx context.Context, in CreatePaymentRequest) (RawReply, error) {
	return invoke(ctx, c.cc, "/payment.PaymentService/CreatePayment", in)
}

func (c *PaymentServiceClient) GetPromotions(ctx context.Context) (RawReply, error) {
	return invoke(ctx, c.cc, "/payment.PaymentService/GetPromotions", Empty{})
}

func (c *PaymentServiceClient) GetMyPayments(ctx context.Context, in UserRequest) (RawReply, error) {
	return invoke(ctx, c.cc, "/payment.PaymentService/GetMyPayments", in)
}

func (c *PaymentServiceClient) GetPayment(ctx context.Context, in IDRequest) (RawReply, error) {
	return invoke(ctx, c.cc, "/payment.PaymentService/GetPayment", in)
}
