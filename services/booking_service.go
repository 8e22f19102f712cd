package services

import (
	"context"

	"hotel-booking/dto"
	"hotel-booking/models"
	"hotel-booking/response"
	"hotel-booking/services/notification"
	"hotel-booking/validator"

	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

var bookingSorts = sortColumns{
	"checkintime":  "check_in_time",
	"checkouttime": "check_out_time",
	"status":       "status",
	"createdat":    "created_at",
}

type BookingService struct {
	baseService
	notifier notification.Service
}

type BookingServiceOptions struct {
	ServiceOptions
	Notifier notification.Service
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	notifier := opts.Notifier
	if notifier == nil {
		notifier = notification.Nop{}
	}
	return &BookingService{
		baseService: newBaseService(opts.ServiceOptions),
		notifier:    notifier,
	}
}

// GetBookings lấy danh sách booking theo phòng, tài khoản, trạng thái, khoảng thời gian
func (s *BookingService) GetBookings(ctx context.Context, req dto.BookingPaginationRequest) response.APIResponse[dto.PagedResponse[dto.BookingDto]] {
	req.Normalize()
	query := s.db.WithContext(ctx).Model(&models.Booking{})
	if req.RoomID != "" {
		query = query.Where("room_id = ?", req.RoomID)
	}
	if req.AccountID != "" {
		query = query.Where("account_id = ?", req.AccountID)
	}
	if req.Status != nil {
		query = query.Where("status = ?", *req.Status)
	}
	if !req.CheckInTime.IsZero() {
		query = query.Where("check_in_time >= ?", req.CheckInTime.UTC())
	}
	if !req.CheckOutTime.IsZero() {
		query = query.Where("check_out_time <= ?", req.CheckOutTime.UTC())
	}

	page, err := paginate(query, req.PaginationRequest, bookingSorts, dto.ToBookingDto, "Room")
	if err != nil {
		s.logger.Error("Lỗi lấy danh sách booking: %v", err)
		return response.InternalErrorResult[dto.PagedResponse[dto.BookingDto]](err)
	}
	return response.OK(page, "Lấy danh sách booking thành công")
}

func (s *BookingService) GetBookingByID(ctx context.Context, id uuid.UUID) response.APIResponse[dto.BookingDto] {
	var booking models.Booking
	if err := s.db.WithContext(ctx).Preload("Room").First(&booking, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return response.NotFoundResult[dto.BookingDto]("Không tìm thấy booking")
		}
		return response.InternalErrorResult[dto.BookingDto](err)
	}
	return response.OK(dto.ToBookingDto(booking), "Lấy thông tin booking thành công")
}

// CreateBooking luôn tạo ở trạng thái Holding
func (s *BookingService) CreateBooking(ctx context.Context, req dto.CreateBookingRequest) response.APIResponse[dto.BookingDto] {
	now := s.now()
	if appErr := validator.ValidateBookingDates(req.CheckInTime, req.CheckOutTime, now); appErr != nil {
		return response.BadRequestResult[dto.BookingDto](appErr.Message)
	}
	if req.AccountID == uuid.Nil {
		return response.BadRequestResult[dto.BookingDto]("Tài khoản không được để trống")
	}

	db := s.db.WithContext(ctx)
	if req.RoomID == uuid.Nil {
		return response.BadRequestResult[dto.BookingDto]("Phòng không được để trống")
	}
	var room models.Room
	if err := db.First(&room, "id = ?", req.RoomID).Error; err != nil {
		if isNotFound(err) {
			return response.BadRequestResult[dto.BookingDto]("Phòng không tồn tại")
		}
		return response.InternalErrorResult[dto.BookingDto](err)
	}

	booking := models.Booking{
		RoomID:       req.RoomID,
		CheckInTime:  req.CheckInTime.UTC(),
		CheckOutTime: req.CheckOutTime.UTC(),
		AccountID:    req.AccountID,
		Status:       models.BookingStatusHolding,
		CreatedAt:    now,
	}
	if err := db.Omit(clause.Associations).Create(&booking).Error; err != nil {
		s.logger.Error("Lỗi tạo booking: %v", err)
		return response.InternalErrorResult[dto.BookingDto](err)
	}
	booking.Room = room

	s.publish(notification.EventBookingCreated, booking)
	return response.Created(dto.ToBookingDto(booking), "Tạo booking thành công")
}

func (s *BookingService) UpdateBooking(ctx context.Context, id uuid.UUID, req dto.UpdateBookingRequest) response.APIResponse[dto.BookingDto] {
	if appErr := validator.ValidateBookingDates(req.CheckInTime, req.CheckOutTime, s.now()); appErr != nil {
		return response.BadRequestResult[dto.BookingDto](appErr.Message)
	}
	if appErr := validator.ValidateBookingStatus(req.Status); appErr != nil {
		return response.BadRequestResult[dto.BookingDto](appErr.Message)
	}

	db := s.db.WithContext(ctx)
	var booking models.Booking
	if err := db.Preload("Room").First(&booking, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return response.NotFoundResult[dto.BookingDto]("Không tìm thấy booking")
		}
		return response.InternalErrorResult[dto.BookingDto](err)
	}

	booking.CheckInTime = req.CheckInTime.UTC()
	booking.CheckOutTime = req.CheckOutTime.UTC()
	booking.Status = models.BookingStatus(req.Status)
	if err := db.Omit(clause.Associations).Save(&booking).Error; err != nil {
		s.logger.Error("Lỗi cập nhật booking %s: %v", id, err)
		return response.InternalErrorResult[dto.BookingDto](err)
	}

	s.publish(notification.EventBookingUpdated, booking)
	return response.OK(dto.ToBookingDto(booking), "Cập nhật booking thành công")
}

func (s *BookingService) DeleteBooking(ctx context.Context, id uuid.UUID) response.APIResponse[bool] {
	db := s.db.WithContext(ctx)
	var booking models.Booking
	if err := db.First(&booking, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return response.NotFoundResult[bool]("Không tìm thấy booking")
		}
		return response.InternalErrorResult[bool](err)
	}

	res := softDelete[models.Booking](db, id, "booking")
	if res.IsSuccess {
		s.publish(notification.EventBookingDeleted, booking)
	}
	return res
}

// ReleaseExpiredHolds hủy các booking còn Holding mà giờ nhận phòng đã qua
func (s *BookingService) ReleaseExpiredHolds(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("status = ? AND check_in_time < ?", models.BookingStatusHolding, s.now()).
		Update("status", models.BookingStatusCancelled)
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected > 0 {
		s.logger.Info("Đã hủy %d booking giữ chỗ quá hạn", result.RowsAffected)
	}
	return result.RowsAffected, nil
}

func (s *BookingService) publish(event string, b models.Booking) {
	msg, err := notification.NewMessageBuilder(event, b.ID, b.RoomID, b.AccountID).
		WithStatus(int(b.Status)).
		At(s.now()).
		Build()
	if err != nil {
		s.logger.Warn("Không tạo được message %s: %v", event, err)
		return
	}
	if err := s.notifier.SendMessage(msg); err != nil {
		s.logger.Warn("Không gửi được sự kiện %s cho booking %s: %v", event, b.ID, err)
	}
}
