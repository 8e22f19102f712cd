package controllers

import (
	"hotel-booking/dto"
	"hotel-booking/response"
	"hotel-booking/services"

	"github.com/gin-gonic/gin"
)

type LocationController struct {
	service *services.LocationService
}

func NewLocationController(service *services.LocationService) LocationController {
	return LocationController{service: service}
}

// GetLocations godoc
// @Summary Danh sách địa điểm
// @Tags locations
// @Produce json
// @Param pageNumber query int false "Trang" default(1)
// @Param pageSize query int false "Số bản ghi mỗi trang" default(10)
// @Param search query string false "Tìm theo tên hoặc địa chỉ"
// @Param sortBy query string false "name | address | createdAt" default(createdAt)
// @Param sortDirection query string false "asc | desc" default(desc)
// @Success 200 {object} response.APIResponse[dto.PagedResponse[dto.LocationDto]]
// @Router /api/locations [get]
func (ctl LocationController) GetLocations(c *gin.Context) {
	var req dto.LocationPaginationRequest
	if !bindQuery(c, &req) {
		return
	}
	response.JSON(c, ctl.service.GetLocations(c.Request.Context(), req))
}

func (ctl LocationController) GetLocationByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	response.JSON(c, ctl.service.GetLocationByID(c.Request.Context(), id))
}

func (ctl LocationController) CreateLocation(c *gin.Context) {
	var req dto.CreateLocationRequest
	if !bindJSON(c, &req) {
		return
	}
	response.JSON(c, ctl.service.CreateLocation(c.Request.Context(), req))
}

func (ctl LocationController) UpdateLocation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateLocationRequest
	if !bindJSON(c, &req) {
		return
	}
	response.JSON(c, ctl.service.UpdateLocation(c.Request.Context(), id, req))
}

func (ctl LocationController) DeleteLocation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	response.JSON(c, ctl.service.DeleteLocation(c.Request.Context(), id))
}
