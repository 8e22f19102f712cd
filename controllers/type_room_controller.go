package controllers

import (
	"hotel-booking/dto"
	"hotel-booking/response"
	"hotel-booking/services"

	"github.com/gin-gonic/gin"
)

type TypeRoomController struct {
	service *services.TypeRoomService
}

func NewTypeRoomController(service *services.TypeRoomService) TypeRoomController {
	return TypeRoomController{service: service}
}

// GetTypeRooms godoc
// @Summary Danh sách loại phòng
// @Tags type-rooms
// @Produce json
// @Param pageNumber query int false "Trang" default(1)
// @Param pageSize query int false "Số bản ghi mỗi trang" default(10)
// @Param search query string false "Tìm theo tên"
// @Param sortBy query string false "name | priceperhour | createdAt" default(createdAt)
// @Param sortDirection query string false "asc | desc" default(desc)
// @Success 200 {object} response.APIResponse[dto.PagedResponse[dto.TypeRoomDto]]
// @Router /api/type-rooms [get]
func (ctl TypeRoomController) GetTypeRooms(c *gin.Context) {
	var req dto.TypeRoomPaginationRequest
	if !bindQuery(c, &req) {
		return
	}
	response.JSON(c, ctl.service.GetTypeRooms(c.Request.Context(), req))
}

func (ctl TypeRoomController) GetTypeRoomByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	response.JSON(c, ctl.service.GetTypeRoomByID(c.Request.Context(), id))
}

func (ctl TypeRoomController) CreateTypeRoom(c *gin.Context) {
	var req dto.CreateTypeRoomRequest
	if !bindJSON(c, &req) {
		return
	}
	response.JSON(c, ctl.service.CreateTypeRoom(c.Request.Context(), req))
}

func (ctl TypeRoomController) UpdateTypeRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateTypeRoomRequest
	if !bindJSON(c, &req) {
		return
	}
	response.JSON(c, ctl.service.UpdateTypeRoom(c.Request.Context(), id, req))
}

func (ctl TypeRoomController) DeleteTypeRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	response.JSON(c, ctl.service.DeleteTypeRoom(c.Request.Context(), id))
}
