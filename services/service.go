package services

import (
	"errors"
	"time"

	"hotel-booking/response"
	"hotel-booking/services/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceOptions phụ thuộc chung cho các service của booking-service
type ServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
	Clock  func() time.Time
}

type baseService struct {
	db     *gorm.DB
	logger logger.Logger
	clock  func() time.Time
}

func newBaseService(opts ServiceOptions) baseService {
	b := baseService{db: opts.DB, logger: opts.Logger, clock: opts.Clock}
	if b.logger == nil {
		b.logger = logger.Nop{}
	}
	if b.clock == nil {
		b.clock = time.Now
	}
	return b
}

func (b baseService) now() time.Time {
	return b.clock().UTC()
}

// exists kiểm tra bản ghi chưa bị xóa mềm có tồn tại không
func exists[M any](db *gorm.DB, id uuid.UUID) (bool, error) {
	var count int64
	if err := db.Model(new(M)).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// dbFailure đổi lỗi trùng khóa thành 400, còn lại là 500
func dbFailure[T any](err error, duplicateMessage string) response.APIResponse[T] {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return response.BadRequestResult[T](duplicateMessage)
	}
	return response.InternalErrorResult[T](err)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// softDelete lấy bản ghi chưa xóa theo id rồi gán deleted_at
func softDelete[M any](db *gorm.DB, id uuid.UUID, label string) response.APIResponse[bool] {
	var row M
	if err := db.First(&row, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return response.NotFoundResult[bool]("Không tìm thấy " + label)
		}
		return response.InternalErrorResult[bool](err)
	}
	result := db.Delete(&row)
	if result.Error != nil {
		return response.InternalErrorResult[bool](result.Error)
	}
	if result.RowsAffected == 0 {
		return response.NotFoundResult[bool]("Không tìm thấy " + label)
	}
	return response.OK(true, "Xóa "+label+" thành công")
}
