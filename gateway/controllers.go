package gateway

import (
	"hotel-booking/dto"
	"hotel-booking/response"
	"hotel-booking/rpc"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	service *AuthService
}

func NewAuthController(service *AuthService) AuthController {
	return AuthController{service: service}
}

func (ctl AuthController) Login(c *gin.Context) {
	var req rpc.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	reply, err := ctl.service.Login(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	writeReply(c, reply)
}

func (ctl AuthController) Register(c *gin.Context) {
	var req rpc.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	reply, err := ctl.service.Register(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	writeReply(c, reply)
}

func (ctl AuthController) RefreshToken(c *gin.Context) {
	var req rpc.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	reply, err := ctl.service.RefreshToken(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	writeReply(c, reply)
}

type AccountController struct {
	client AccountClient
}

func NewAccountController(client AccountClient) AccountController {
	return AccountController{client: client}
}

func (ctl AccountController) GetProfile(c *gin.Context) {
	user, ok := currentUserOrAbort(c)
	if !ok {
		return
	}
	reply, err := ctl.client.GetProfile(c.Request.Context(), rpc.UserRequest{UserID: user.ID})
	if err != nil {
		writeError(c, err)
		return
	}
	writeReply(c, reply)
}

type BookingController struct {
	client BookingClient
}

func NewBookingController(client BookingClient) BookingController {
	return BookingController{client: client}
}

func (ctl BookingController) GetRooms(c *gin.Context) {
	var req rpc.RoomListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	reply, err := ctl.client.GetRooms(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	writeReply(c, reply)
}

func (ctl BookingController) GetRoom(c *gin.Context) {
	reply, err := ctl.client.GetRoom(c.Request.Context(), rpc.IDRequest{ID: c.Param("id")})
	if err != nil {
		writeError(c, err)
		return
	}
	writeReply(c, reply)
}

func (ctl BookingController) CreateBooking(c *gin.Context) {
	user, ok := currentUserOrAbort(c)
	if !ok {
		return
	}
	var req rpc.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	req.UserID = user.ID
	reply, err := ctl.client.CreateBooking(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	writeReply(c, reply)
}

func (ctl BookingController) GetMyBookings(c *gin.Context) {
	user, ok := currentUserOrAbort(c)
	if !ok {
		return
	}
	var paging dto.PaginationRequest
	if err := c.ShouldBindQuery(&paging); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	reply, err := ctl.client.GetMyBookings(c.Request.Context(), rpc.UserRequest{UserID: user.ID, Paging: &paging})
	if err != nil {
		writeError(c, err)
		return
	}
	writeReply(c, reply)
}

type PaymentController struct {
	client PaymentClient
}

func NewPaymentController(client PaymentClient) PaymentController {
	return PaymentController{client: client}
}

func (ctl PaymentController) CreatePayment(c *gin.Context) {
	user, ok := currentUserOrAbort(c)
	if !ok {
		return
	}
	var req rpc.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	req.UserID = user.ID
	reply, err := ctl.client.CreatePayment(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	writeReply(c, reply)
}

func (ctl PaymentController) GetPromotions(c *gin.Context) {
	reply, err := ctl.client.GetPromotions(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	writeReply(c, reply)
}

func (ctl PaymentController) GetMyPayments(c *gin.Context) {
	user, ok := currentUserOrAbort(c)
	if !ok {
		return
	}
	reply, err := ctl.client.GetMyPayments(c.Request.Context(), rpc.UserRequest{UserID: user.ID})
	if err != nil {
		writeError(c, err)
		return
	}
	writeReply(c, reply)
}

func (ctl PaymentController) GetPayment(c *gin.Context) {
	reply, err := ctl.client.GetPayment(c.Request.Context(), rpc.IDRequest{ID: c.Param("id")})
	if err != nil {
		writeError(c, err)
		return
	}
	writeReply(c, reply)
}
