package controllers

import (
	"hotel-booking/dto"
	"hotel-booking/response"
	"hotel-booking/services"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	service *services.RoomService
}

func NewRoomController(service *services.RoomService) RoomController {
	return RoomController{service: service}
}

// GetRooms godoc
// @Summary Danh sách phòng
// @Tags rooms
// @Produce json
// @Param pageNumber query int false "Trang" default(1)
// @Param pageSize query int false "Số bản ghi mỗi trang" default(10)
// @Param search query string false "Tìm theo tên"
// @Param typeRoomId query string false "Lọc theo loại phòng"
// @Param locationId query string false "Lọc theo địa điểm"
// @Param sortBy query string false "name | createdAt" default(createdAt)
// @Param sortDirection query string false "asc | desc" default(desc)
// @Success 200 {object} response.APIResponse[dto.PagedResponse[dto.RoomDto]]
// @Router /api/rooms [get]
func (ctl RoomController) GetRooms(c *gin.Context) {
	var req dto.RoomPaginationRequest
	if !bindQuery(c, &req) {
		return
	}
	response.JSON(c, ctl.service.GetRooms(c.Request.Context(), req))
}

func (ctl RoomController) GetRoomByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	response.JSON(c, ctl.service.GetRoomByID(c.Request.Context(), id))
}

func (ctl RoomController) CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if !bindJSON(c, &req) {
		return
	}
	response.JSON(c, ctl.service.CreateRoom(c.Request.Context(), req))
}

func (ctl RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateRoomRequest
	if !bindJSON(c, &req) {
		return
	}
	response.JSON(c, ctl.service.UpdateRoom(c.Request.Context(), id, req))
}

func (ctl RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	response.JSON(c, ctl.service.DeleteRoom(c.Request.Context(), id))
}
