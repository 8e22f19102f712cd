package controllers

import (
	"hotel-booking/dto"
	"hotel-booking/response"
	"hotel-booking/services"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	service *services.BookingService
}

func NewBookingController(service *services.BookingService) BookingController {
	return BookingController{service: service}
}

// GetBookings godoc
// @Summary Danh sách booking
// @Tags bookings
// @Produce json
// @Param pageNumber query int false "Trang" default(1)
// @Param pageSize query int false "Số bản ghi mỗi trang" default(10)
// @Param roomId query string false "Lọc theo phòng"
// @Param accountId query string false "Lọc theo tài khoản"
// @Param status query int false "1 Holding, 2 Confirmed, 3 Cancelled, 4 Completed"
// @Param checkInTime query string false "check_in_time >= (RFC3339)"
// @Param checkOutTime query string false "check_out_time <= (RFC3339)"
// @Param sortBy query string false "checkintime | checkouttime | status | createdAt" default(createdAt)
// @Param sortDirection query string false "asc | desc" default(desc)
// @Success 200 {object} response.APIResponse[dto.PagedResponse[dto.BookingDto]]
// @Router /api/bookings [get]
func (ctl BookingController) GetBookings(c *gin.Context) {
	var req dto.BookingPaginationRequest
	if !bindQuery(c, &req) {
		return
	}
	response.JSON(c, ctl.service.GetBookings(c.Request.Context(), req))
}

func (ctl BookingController) GetBookingByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	response.JSON(c, ctl.service.GetBookingByID(c.Request.Context(), id))
}

func (ctl BookingController) CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}
	response.JSON(c, ctl.service.CreateBooking(c.Request.Context(), req))
}

func (ctl BookingController) UpdateBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateBookingRequest
	if !bindJSON(c, &req) {
		return
	}
	response.JSON(c, ctl.service.UpdateBooking(c.Request.Context(), id, req))
}

func (ctl BookingController) DeleteBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	response.JSON(c, ctl.service.DeleteBooking(c.Request.Context(), id))
}
