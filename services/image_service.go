package services

import (
	"context"
	"path/filepath"
	"strings"

	"hotel-booking/constants"
	"hotel-booking/dto"
	"hotel-booking/errors"
	"hotel-booking/models"
	"hotel-booking/response"
	"hotel-booking/validator"

	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

var imageSorts = sortColumns{
	"filesize":  "filesize",
	"createdat": "created_at",
}

type ImageService struct {
	baseService
	storage FileStorage
	folder  string
}

type ImageServiceOptions struct {
	ServiceOptions
	Storage FileStorage
	Folder  string
}

func NewImageService(opts ImageServiceOptions) *ImageService {
	folder := strings.Trim(opts.Folder, "/")
	if folder == "" {
		folder = constants.DefaultUploadDir
	}
	return &ImageService{
		baseService: newBaseService(opts.ServiceOptions),
		storage:     opts.Storage,
		folder:      folder,
	}
}

// GetImages lấy danh sách ảnh, lọc theo phòng
func (s *ImageService) GetImages(ctx context.Context, req dto.ImagePaginationRequest) response.APIResponse[dto.PagedResponse[dto.ImageDto]] {
	req.Normalize()
	query := s.db.WithContext(ctx).Model(&models.Image{})
	query = applySearch(query, req.Search, "origin_filename")
	if req.RoomID != "" {
		query = query.Where("room_id = ?", req.RoomID)
	}

	page, err := paginate(query, req.PaginationRequest, imageSorts, dto.ToImageDto)
	if err != nil {
		s.logger.Error("Lỗi lấy danh sách ảnh: %v", err)
		return response.InternalErrorResult[dto.PagedResponse[dto.ImageDto]](err)
	}
	return response.OK(page, "Lấy danh sách ảnh thành công")
}

func (s *ImageService) GetImageByID(ctx context.Context, id uuid.UUID) response.APIResponse[dto.ImageDto] {
	var image models.Image
	if err := s.db.WithContext(ctx).First(&image, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return response.NotFoundResult[dto.ImageDto]("Không tìm thấy ảnh")
		}
		return response.InternalErrorResult[dto.ImageDto](err)
	}
	return response.OK(dto.ToImageDto(image), "Lấy thông tin ảnh thành công")
}

// UploadImage đẩy file lên storage rồi lưu metadata
func (s *ImageService) UploadImage(ctx context.Context, req dto.UploadImageRequest) response.APIResponse[dto.ImageDto] {
	if appErr := validator.ValidateUploadFile(req.Filename, req.Size); appErr != nil {
		return response.BadRequestResult[dto.ImageDto](appErr.Message)
	}

	db := s.db.WithContext(ctx)
	if res, ok := checkRoom[dto.ImageDto](db, req.RoomID); !ok {
		return res
	}
	if s.storage == nil {
		return response.InternalErrorResult[dto.ImageDto](errors.ErrStorageUnavailable)
	}

	now := s.now()
	id := uuid.New()
	ext := strings.ToLower(filepath.Ext(req.Filename))
	key := s.folder + "/" + now.Format("2006-01-02") + "/" + id.String() + ext

	url, err := s.storage.Upload(ctx, key, req.Content, req.ContentType)
	if err != nil {
		s.logger.Error("Lỗi upload file %s: %v", req.Filename, err)
		return response.InternalErrorResult[dto.ImageDto](errors.NewAppError(errors.ErrCodeStorage, "Upload thất bại", err))
	}

	image := models.Image{
		ID:             id,
		OriginFilename: req.Filename,
		Filename:       key,
		Filesize:       req.Size,
		FileType:       req.ContentType,
		FullPath:       url,
		RoomID:         req.RoomID,
		CreatedAt:      now,
	}
	if err := db.Omit(clause.Associations).Create(&image).Error; err != nil {
		s.logger.Error("Lỗi lưu ảnh %s: %v", key, err)
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			s.logger.Warn("Không xóa được file %s trên storage: %v", key, delErr)
		}
		return response.InternalErrorResult[dto.ImageDto](err)
	}
	return response.Created(dto.ToImageDto(image), "Upload ảnh thành công")
}

// DeleteImage xóa mềm bản ghi, file trên storage xóa nếu được
func (s *ImageService) DeleteImage(ctx context.Context, id uuid.UUID) response.APIResponse[bool] {
	db := s.db.WithContext(ctx)
	var image models.Image
	if err := db.First(&image, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return response.NotFoundResult[bool]("Không tìm thấy ảnh")
		}
		return response.InternalErrorResult[bool](err)
	}

	res := softDelete[models.Image](db, id, "ảnh")
	if !res.IsSuccess || s.storage == nil {
		return res
	}
	if err := s.storage.Delete(ctx, image.Filename); err != nil {
		s.logger.Warn("Không xóa được file %s trên storage: %v", image.Filename, err)
	}
	return res
}
