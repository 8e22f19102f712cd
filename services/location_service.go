package services

import (
	"context"

	"hotel-booking/dto"
	"hotel-booking/models"
	"hotel-booking/response"
	"hotel-booking/validator"

	"github.com/google/uuid"
)

var locationSorts = sortColumns{
	"name":      "name",
	"address":   "address",
	"createdat": "created_at",
}

type LocationService struct {
	baseService
}

func NewLocationService(opts ServiceOptions) *LocationService {
	return &LocationService{baseService: newBaseService(opts)}
}

// GetLocations lấy danh sách địa điểm có phân trang
func (s *LocationService) GetLocations(ctx context.Context, req dto.LocationPaginationRequest) response.APIResponse[dto.PagedResponse[dto.LocationDto]] {
	req.Normalize()
	query := s.db.WithContext(ctx).Model(&models.Location{})
	query = applySearch(query, req.Search, "name", "address")

	page, err := paginate(query, req.PaginationRequest, locationSorts, dto.ToLocationDto)
	if err != nil {
		s.logger.Error("Lỗi lấy danh sách địa điểm: %v", err)
		return response.InternalErrorResult[dto.PagedResponse[dto.LocationDto]](err)
	}
	return response.OK(page, "Lấy danh sách địa điểm thành công")
}

func (s *LocationService) GetLocationByID(ctx context.Context, id uuid.UUID) response.APIResponse[dto.LocationDto] {
	var location models.Location
	if err := s.db.WithContext(ctx).First(&location, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return response.NotFoundResult[dto.LocationDto]("Không tìm thấy địa điểm")
		}
		return response.InternalErrorResult[dto.LocationDto](err)
	}
	return response.OK(dto.ToLocationDto(location), "Lấy thông tin địa điểm thành công")
}

func (s *LocationService) CreateLocation(ctx context.Context, req dto.CreateLocationRequest) response.APIResponse[dto.LocationDto] {
	if appErr := validator.ValidateLocation(req.Name, req.Address); appErr != nil {
		return response.BadRequestResult[dto.LocationDto](appErr.Message)
	}

	location := models.Location{
		Name:      req.Name,
		Address:   req.Address,
		CreatedAt: s.now(),
	}
	if err := s.db.WithContext(ctx).Create(&location).Error; err != nil {
		s.logger.Error("Lỗi tạo địa điểm: %v", err)
		return dbFailure[dto.LocationDto](err, "Tên địa điểm đã tồn tại")
	}
	return response.Created(dto.ToLocationDto(location), "Tạo địa điểm thành công")
}

func (s *LocationService) UpdateLocation(ctx context.Context, id uuid.UUID, req dto.UpdateLocationRequest) response.APIResponse[dto.LocationDto] {
	if appErr := validator.ValidateLocation(req.Name, req.Address); appErr != nil {
		return response.BadRequestResult[dto.LocationDto](appErr.Message)
	}

	db := s.db.WithContext(ctx)
	var location models.Location
	if err := db.First(&location, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return response.NotFoundResult[dto.LocationDto]("Không tìm thấy địa điểm")
		}
		return response.InternalErrorResult[dto.LocationDto](err)
	}

	location.Name = req.Name
	location.Address = req.Address
	if err := db.Save(&location).Error; err != nil {
		s.logger.Error("Lỗi cập nhật địa điểm %s: %v", id, err)
		return dbFailure[dto.LocationDto](err, "Tên địa điểm đã tồn tại")
	}
	return response.OK(dto.ToLocationDto(location), "Cập nhật địa điểm thành công")
}

func (s *LocationService) DeleteLocation(ctx context.Context, id uuid.UUID) response.APIResponse[bool] {
	return softDelete[models.Location](s.db.WithContext(ctx), id, "địa điểm")
}
