package controllers

import (
	"hotel-booking/dto"
	"hotel-booking/response"
	"hotel-booking/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ImageController struct {
	service *services.ImageService
}

func NewImageController(service *services.ImageService) ImageController {
	return ImageController{service: service}
}

func (ctl ImageController) GetImages(c *gin.Context) {
	var req dto.ImagePaginationRequest
	if !bindQuery(c, &req) {
		return
	}
	response.JSON(c, ctl.service.GetImages(c.Request.Context(), req))
}

func (ctl ImageController) GetImageByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	response.JSON(c, ctl.service.GetImageByID(c.Request.Context(), id))
}

// UploadImage godoc
// @Summary Upload ảnh cho phòng
// @Tags images
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File upload (tối đa 10MB)"
// @Param roomId formData string true "ID phòng"
// @Success 201 {object} response.APIResponse[dto.ImageDto]
// @Failure 400 {object} response.APIResponse[any]
// @Router /api/images/upload [post]
func (ctl ImageController) UploadImage(c *gin.Context) {
	roomID, err := uuid.Parse(c.PostForm("roomId"))
	if err != nil {
		response.BadRequest(c, "roomId không hợp lệ")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Không có file")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.BadRequest(c, "Lỗi khi mở file")
		return
	}
	defer src.Close()

	response.JSON(c, ctl.service.UploadImage(c.Request.Context(), dto.UploadImageRequest{
		RoomID:      roomID,
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Size:        file.Size,
		Content:     src,
	}))
}

func (ctl ImageController) DeleteImage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	response.JSON(c, ctl.service.DeleteImage(c.Request.Context(), id))
}
