package services

import (
	"context"

	"hotel-booking/dto"
	"hotel-booking/models"
	"hotel-booking/response"
	"hotel-booking/validator"

	"github.com/google/uuid"
)

var typeRoomSorts = sortColumns{
	"name":         "name",
	"priceperhour": "price_per_hour",
	"createdat":    "created_at",
}

type TypeRoomService struct {
	baseService
}

func NewTypeRoomService(opts ServiceOptions) *TypeRoomService {
	return &TypeRoomService{baseService: newBaseService(opts)}
}

// GetTypeRooms lấy danh sách loại phòng có phân trang
func (s *TypeRoomService) GetTypeRooms(ctx context.Context, req dto.TypeRoomPaginationRequest) response.APIResponse[dto.PagedResponse[dto.TypeRoomDto]] {
	req.Normalize()
	query := s.db.WithContext(ctx).Model(&models.TypeRoom{})
	query = applySearch(query, req.Search, "name")

	page, err := paginate(query, req.PaginationRequest, typeRoomSorts, dto.ToTypeRoomDto)
	if err != nil {
		s.logger.Error("Lỗi lấy danh sách loại phòng: %v", err)
		return response.InternalErrorResult[dto.PagedResponse[dto.TypeRoomDto]](err)
	}
	return response.OK(page, "Lấy danh sách loại phòng thành công")
}

func (s *TypeRoomService) GetTypeRoomByID(ctx context.Context, id uuid.UUID) response.APIResponse[dto.TypeRoomDto] {
	var typeRoom models.TypeRoom
	if err := s.db.WithContext(ctx).First(&typeRoom, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return response.NotFoundResult[dto.TypeRoomDto]("Không tìm thấy loại phòng")
		}
		return response.InternalErrorResult[dto.TypeRoomDto](err)
	}
	return response.OK(dto.ToTypeRoomDto(typeRoom), "Lấy thông tin loại phòng thành công")
}

func (s *TypeRoomService) CreateTypeRoom(ctx context.Context, req dto.CreateTypeRoomRequest) response.APIResponse[dto.TypeRoomDto] {
	if appErr := validator.ValidateTypeRoom(req.Name, req.PricePerHour); appErr != nil {
		return response.BadRequestResult[dto.TypeRoomDto](appErr.Message)
	}

	typeRoom := models.TypeRoom{
		Name:         req.Name,
		PricePerHour: req.PricePerHour,
		CreatedAt:    s.now(),
	}
	if err := s.db.WithContext(ctx).Create(&typeRoom).Error; err != nil {
		s.logger.Error("Lỗi tạo loại phòng: %v", err)
		return dbFailure[dto.TypeRoomDto](err, "Tên loại phòng đã tồn tại")
	}
	return response.Created(dto.ToTypeRoomDto(typeRoom), "Tạo loại phòng thành công")
}

func (s *TypeRoomService) UpdateTypeRoom(ctx context.Context, id uuid.UUID, req dto.UpdateTypeRoomRequest) response.APIResponse[dto.TypeRoomDto] {
	if appErr := validator.ValidateTypeRoom(req.Name, req.PricePerHour); appErr != nil {
		return response.BadRequestResult[dto.TypeRoomDto](appErr.Message)
	}

	db := s.db.WithContext(ctx)
	var typeRoom models.TypeRoom
	if err := db.First(&typeRoom, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return response.NotFoundResult[dto.TypeRoomDto]("Không tìm thấy loại phòng")
		}
		return response.InternalErrorResult[dto.TypeRoomDto](err)
	}

	typeRoom.Name = req.Name
	typeRoom.PricePerHour = req.PricePerHour
	if err := db.Save(&typeRoom).Error; err != nil {
		s.logger.Error("Lỗi cập nhật loại phòng %s: %v", id, err)
		return dbFailure[dto.TypeRoomDto](err, "Tên loại phòng đã tồn tại")
	}
	return response.OK(dto.ToTypeRoomDto(typeRoom), "Cập nhật loại phòng thành công")
}

func (s *TypeRoomService) DeleteTypeRoom(ctx context.Context, id uuid.UUID) response.APIResponse[bool] {
	return softDelete[models.TypeRoom](s.db.WithContext(ctx), id, "loại phòng")
}
