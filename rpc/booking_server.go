package rpc

import (
	"context"

	"hotel-booking/dto"
	"hotel-booking/response"
	"hotel-booking/services"

	"github.com/google/uuid"
	"google.golang.org/grpc"
)

const bookingServiceName = "booking.BookingService"

// BookingServer các method booking-service mở cho gateway
type BookingServer interface {
	GetRooms(ctx context.Context, in *RoomListRequest) (response.APIResponse[dto.PagedResponse[dto.RoomDto]], error)
	GetRoom(ctx context.Context, in *IDRequest) (response.APIResponse[dto.RoomDto], error)
	CreateBooking(ctx context.Context, in *CreateBookingRequest) (response.APIResponse[dto.BookingDto], error)
	GetMyBookings(ctx context.Context, in *UserRequest) (response.APIResponse[dto.PagedResponse[dto.BookingDto]], error)
}

var BookingServiceDesc = grpc.ServiceDesc{
	ServiceName: bookingServiceName,
	HandlerType: (*BookingServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetRooms",
			Handler: unaryHandler(bookingServiceName, "GetRooms", func(s BookingServer, ctx context.Context, in *RoomListRequest) (interface{}, error) {
				return s.GetRooms(ctx, in)
			}),
		},
		{
			MethodName: "GetRoom",
			Handler: unaryHandler(bookingServiceName, "GetRoom", func(s BookingServer, ctx context.Context, in *IDRequest) (interface{}, error) {
				return s.GetRoom(ctx, in)
			}),
		},
		{
			MethodName: "CreateBooking",
			Handler: unaryHandler(bookingServiceName, "CreateBooking", func(s BookingServer, ctx context.Context, in *CreateBookingRequest) (interface{}, error) {
				return s.CreateBooking(ctx, in)
			}),
		},
		{
			MethodName: "GetMyBookings",
			Handler: unaryHandler(bookingServiceName, "GetMyBookings", func(s BookingServer, ctx context.Context, in *UserRequest) (interface{}, error) {
				return s.GetMyBookings(ctx, in)
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "booking.proto",
}

func RegisterBookingServer(s grpc.ServiceRegistrar, srv BookingServer) {
	s.RegisterService(&BookingServiceDesc, srv)
}

// unaryHandler decode request rồi gọi method, có hỗ trợ interceptor
func unaryHandler[S any, Req any](service, method string, call func(S, context.Context, *Req) (interface{}, error)) func(interface{}, context.Context, func(interface{}) error, grpc.UnaryServerInterceptor) (interface{}, error) {
	fullMethod := "/" + service + "/" + method
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(S), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(S), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// BookingHandler implement BookingServer bằng các service của booking-service
type BookingHandler struct {
	rooms    *services.RoomService
	bookings *services.BookingService
}

func NewBookingHandler(rooms *services.RoomService, bookings *services.BookingService) *BookingHandler {
	return &BookingHandler{rooms: rooms, bookings: bookings}
}

func (h *BookingHandler) GetRooms(ctx context.Context, in *RoomListRequest) (response.APIResponse[dto.PagedResponse[dto.RoomDto]], error) {
	if !optionalUUID(in.TypeRoomID) || !optionalUUID(in.LocationID) {
		return response.BadRequestResult[dto.PagedResponse[dto.RoomDto]]("ID lọc không hợp lệ"), nil
	}
	return h.rooms.GetRooms(ctx, *in), nil
}

func (h *BookingHandler) GetRoom(ctx context.Context, in *IDRequest) (response.APIResponse[dto.RoomDto], error) {
	id, err := uuid.Parse(in.ID)
	if err != nil {
		return response.BadRequestResult[dto.RoomDto]("ID không hợp lệ"), nil
	}
	return h.rooms.GetRoomByID(ctx, id), nil
}

func (h *BookingHandler) CreateBooking(ctx context.Context, in *CreateBookingRequest) (response.APIResponse[dto.BookingDto], error) {
	roomID, err := uuid.Parse(in.RoomID)
	if err != nil {
		return response.BadRequestResult[dto.BookingDto]("roomId không hợp lệ"), nil
	}
	accountID, err := uuid.Parse(in.UserID)
	if err != nil {
		return response.BadRequestResult[dto.BookingDto]("userId không hợp lệ"), nil
	}
	return h.bookings.CreateBooking(ctx, dto.CreateBookingRequest{
		RoomID:       roomID,
		CheckInTime:  in.CheckinTime,
		CheckOutTime: in.CheckoutTime,
		AccountID:    accountID,
	}), nil
}

func (h *BookingHandler) GetMyBookings(ctx context.Context, in *UserRequest) (response.APIResponse[dto.PagedResponse[dto.BookingDto]], error) {
	if _, err := uuid.Parse(in.UserID); err != nil {
		return response.BadRequestResult[dto.PagedResponse[dto.BookingDto]]("userId không hợp lệ"), nil
	}
	req := dto.BookingPaginationRequest{AccountID: in.UserID}
	if in.Paging != nil {
		req.PaginationRequest = *in.Paging
	}
	return h.bookings.GetBookings(ctx, req), nil
}

func optionalUUID(s string) bool {
	if s == "" {
		return true
	}
	_, err := uuid.Parse(s)
	return err == nil
}
