package controllers

import (
	"hotel-booking/dto"
	"hotel-booking/response"
	"hotel-booking/services"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	service *services.ReviewService
}

func NewReviewController(service *services.ReviewService) ReviewController {
	return ReviewController{service: service}
}

func (ctl ReviewController) GetReviews(c *gin.Context) {
	var req dto.ReviewPaginationRequest
	if !bindQuery(c, &req) {
		return
	}
	response.JSON(c, ctl.service.GetReviews(c.Request.Context(), req))
}

func (ctl ReviewController) GetReviewByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	response.JSON(c, ctl.service.GetReviewByID(c.Request.Context(), id))
}

func (ctl ReviewController) CreateReview(c *gin.Context) {
	var req dto.CreateReviewRequest
	if !bindJSON(c, &req) {
		return
	}
	response.JSON(c, ctl.service.CreateReview(c.Request.Context(), req))
}

func (ctl ReviewController) UpdateReview(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateReviewRequest
	if !bindJSON(c, &req) {
		return
	}
	response.JSON(c, ctl.service.UpdateReview(c.Request.Context(), id, req))
}

func (ctl ReviewController) DeleteReview(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	response.JSON(c, ctl.service.DeleteReview(c.Request.Context(), id))
}
