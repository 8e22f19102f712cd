package services

import (
	"context"

	"hotel-booking/dto"
	"hotel-booking/models"
	"hotel-booking/response"
	"hotel-booking/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var roomSorts = sortColumns{
	"name":      "name",
	"createdat": "created_at",
}

type RoomService struct {
	baseService
}

func NewRoomService(opts ServiceOptions) *RoomService {
	return &RoomService{baseService: newBaseService(opts)}
}

// GetRooms lấy danh sách phòng, lọc theo loại phòng và địa điểm
func (s *RoomService) GetRooms(ctx context.Context, req dto.RoomPaginationRequest) response.APIResponse[dto.PagedResponse[dto.RoomDto]] {
	req.Normalize()
	query := s.db.WithContext(ctx).Model(&models.Room{})
	query = applySearch(query, req.Search, "name")
	if req.TypeRoomID != "" {
		query = query.Where("type_room_id = ?", req.TypeRoomID)
	}
	if req.LocationID != "" {
		query = query.Where("location_id = ?", req.LocationID)
	}

	page, err := paginate(query, req.PaginationRequest, roomSorts, dto.ToRoomDto)
	if err != nil {
		s.logger.Error("Lỗi lấy danh sách phòng: %v", err)
		return response.InternalErrorResult[dto.PagedResponse[dto.RoomDto]](err)
	}
	return response.OK(page, "Lấy danh sách phòng thành công")
}

func (s *RoomService) GetRoomByID(ctx context.Context, id uuid.UUID) response.APIResponse[dto.RoomDto] {
	var room models.Room
	if err := s.db.WithContext(ctx).First(&room, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return response.NotFoundResult[dto.RoomDto]("Không tìm thấy phòng")
		}
		return response.InternalErrorResult[dto.RoomDto](err)
	}
	return response.OK(dto.ToRoomDto(room), "Lấy thông tin phòng thành công")
}

func (s *RoomService) CreateRoom(ctx context.Context, req dto.CreateRoomRequest) response.APIResponse[dto.RoomDto] {
	if appErr := validator.ValidateRoom(req.Name, req.TypeRoomID, req.LocationID); appErr != nil {
		return response.BadRequestResult[dto.RoomDto](appErr.Message)
	}

	db := s.db.WithContext(ctx)
	if res, ok := checkRoomParents[dto.RoomDto](db, req.TypeRoomID, req.LocationID); !ok {
		return res
	}

	room := models.Room{
		Name:       req.Name,
		TypeRoomID: req.TypeRoomID,
		LocationID: req.LocationID,
		CreatedAt:  s.now(),
	}
	if err := db.Omit(clause.Associations).Create(&room).Error; err != nil {
		s.logger.Error("Lỗi tạo phòng: %v", err)
		return dbFailure[dto.RoomDto](err, "Tên phòng đã tồn tại")
	}
	return response.Created(dto.ToRoomDto(room), "Tạo phòng thành công")
}

func (s *RoomService) UpdateRoom(ctx context.Context, id uuid.UUID, req dto.UpdateRoomRequest) response.APIResponse[dto.RoomDto] {
	if appErr := validator.ValidateRoom(req.Name, req.TypeRoomID, req.LocationID); appErr != nil {
		return response.BadRequestResult[dto.RoomDto](appErr.Message)
	}

	db := s.db.WithContext(ctx)
	var room models.Room
	if err := db.First(&room, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return response.NotFoundResult[dto.RoomDto]("Không tìm thấy phòng")
		}
		return response.InternalErrorResult[dto.RoomDto](err)
	}
	if res, ok := checkRoomParents[dto.RoomDto](db, req.TypeRoomID, req.LocationID); !ok {
		return res
	}

	room.Name = req.Name
	room.TypeRoomID = req.TypeRoomID
	room.LocationID = req.LocationID
	if err := db.Omit(clause.Associations).Save(&room).Error; err != nil {
		s.logger.Error("Lỗi cập nhật phòng %s: %v", id, err)
		return dbFailure[dto.RoomDto](err, "Tên phòng đã tồn tại")
	}
	return response.OK(dto.ToRoomDto(room), "Cập nhật phòng thành công")
}

func (s *RoomService) DeleteRoom(ctx context.Context, id uuid.UUID) response.APIResponse[bool] {
	return softDelete[models.Room](s.db.WithContext(ctx), id, "phòng")
}

func checkRoomParents[T any](db *gorm.DB, typeRoomID, locationID uuid.UUID) (response.APIResponse[T], bool) {
	ok, err := exists[models.TypeRoom](db, typeRoomID)
	if err != nil {
		return response.InternalErrorResult[T](err), false
	}
	if !ok {
		return response.BadRequestResult[T]("Loại phòng không tồn tại"), false
	}
	ok, err = exists[models.Location](db, locationID)
	if err != nil {
		return response.InternalErrorResult[T](err), false
	}
	if !ok {
		return response.BadRequestResult[T]("Địa điểm không tồn tại"), false
	}
	return response.APIResponse[T]{}, true
}

// checkRoom dùng chung cho image, booking, review
func checkRoom[T any](db *gorm.DB, roomID uuid.UUID) (response.APIResponse[T], bool) {
	if roomID == uuid.Nil {
		return response.BadRequestResult[T]("Phòng không được để trống"), false
	}
	ok, err := exists[models.Room](db, roomID)
	if err != nil {
		return response.InternalErrorResult[T](err), false
	}
	if !ok {
		return response.BadRequestResult[T]("Phòng không tồn tại"), false
	}
	return response.APIResponse[T]{}, true
}
