package dto

import (
	"io"
	"time"

	"github.com/google/uuid"
)

type ImageDto struct {
	ID             uuid.UUID `json:"id"`
	OriginFilename string    `json:"originFilename"`
	Filename       string    `json:"filename"`
	Filesize       int64     `json:"filesize"`
	FileType       string    `json:"fileType"`
	FullPath       string    `json:"fullPath"`
	RoomID         uuid.UUID `json:"roomId"`
	CreatedAt      time.Time `json:"createdAt"`
}

// UploadImageRequest dữ liệu file nhận từ multipart form
type UploadImageRequest struct {
	RoomID      uuid.UUID
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

type ImagePaginationRequest struct {
	PaginationRequest
	RoomID string `json:"roomId,omitempty" form:"roomId" binding:"omitempty,uuid"`
}
