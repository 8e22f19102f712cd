package validator

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"hotel-booking/constants"
	"hotel-booking/errors"
	"hotel-booking/models"

	"github.com/gin-gonic/gin/binding"
	playground "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// RegisterBindings đăng ký các rule tùy chỉnh cho gin binding
func RegisterBindings() error {
	v, ok := binding.Validator.Engine().(*playground.Validate)
	if !ok {
		return fmt.Errorf("binding engine không phải go-playground validator")
	}
	return v.RegisterValidation("bookingstatus", func(fl playground.FieldLevel) bool {
		return models.BookingStatus(fl.Field().Int()).Valid()
	})
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// ValidateLocation validate tên và địa chỉ địa điểm
func ValidateLocation(name, address string) *errors.AppError {
	if name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên địa điểm không được để trống", nil)
	}
	if n := runeLen(name); n < constants.LocationMinNameLength || n > constants.LocationMaxNameLength {
		return errors.NewAppError(errors.ErrCodeInvalidLength,
			fmt.Sprintf("Tên địa điểm phải từ %d đến %d ký tự", constants.LocationMinNameLength, constants.LocationMaxNameLength), nil)
	}
	if address == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Địa chỉ không được để trống", nil)
	}
	if n := runeLen(address); n < constants.LocationMinAddressLength || n > constants.LocationMaxAddressLength {
		return errors.NewAppError(errors.ErrCodeInvalidLength,
			fmt.Sprintf("Địa chỉ phải từ %d đến %d ký tự", constants.LocationMinAddressLength, constants.LocationMaxAddressLength), nil)
	}
	return nil
}

// ValidateTypeRoom validate loại phòng
func ValidateTypeRoom(name string, pricePerHour float64) *errors.AppError {
	if strings.TrimSpace(name) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên loại phòng không được để trống", nil)
	}
	if n := runeLen(name); n < constants.TypeRoomMinNameLength || n > constants.TypeRoomMaxNameLength {
		return errors.NewAppError(errors.ErrCodeInvalidLength,
			fmt.Sprintf("Tên loại phòng phải từ %d đến %d ký tự", constants.TypeRoomMinNameLength, constants.TypeRoomMaxNameLength), nil)
	}
	if pricePerHour < constants.TypeRoomMinPrice {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá theo giờ không được âm", nil)
	}
	return nil
}

// ValidateRoom validate phòng và các id tham chiếu
func ValidateRoom(name string, typeRoomID, locationID uuid.UUID) *errors.AppError {
	if strings.TrimSpace(name) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên phòng không được để trống", nil)
	}
	if n := runeLen(name); n < constants.RoomMinNameLength || n > constants.RoomMaxNameLength {
		return errors.NewAppError(errors.ErrCodeInvalidLength,
			fmt.Sprintf("Tên phòng phải từ %d đến %d ký tự", constants.RoomMinNameLength, constants.RoomMaxNameLength), nil)
	}
	if typeRoomID == uuid.Nil {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Loại phòng không được để trống", nil)
	}
	if locationID == uuid.Nil {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Địa điểm không được để trống", nil)
	}
	return nil
}

// ValidateBookingDates check-in phải trước check-out và không nằm trong quá khứ
func ValidateBookingDates(checkIn, checkOut, now time.Time) *errors.AppError {
	if !checkIn.Before(checkOut) {
		return errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày nhận phòng phải trước ngày trả phòng", nil)
	}
	if checkIn.Before(now) {
		return errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày nhận phòng không được ở quá khứ", nil)
	}
	return nil
}

// ValidateBookingStatus validate trạng thái booking
func ValidateBookingStatus(status int) *errors.AppError {
	if !models.BookingStatus(status).Valid() {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "Trạng thái booking không hợp lệ", nil)
	}
	return nil
}

// ValidateReview validate nội dung và điểm đánh giá
func ValidateReview(comment string, rating int) *errors.AppError {
	if strings.TrimSpace(comment) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Nội dung đánh giá không được để trống", nil)
	}
	if rating < constants.ReviewMinRating || rating > constants.ReviewMaxRating {
		return errors.NewAppError(errors.ErrCodeValidation,
			fmt.Sprintf("Điểm đánh giá phải từ %d đến %d", constants.ReviewMinRating, constants.ReviewMaxRating), nil)
	}
	return nil
}

// ValidateUploadFile validate file upload theo kích thước và đuôi file
func ValidateUploadFile(filename string, size int64) *errors.AppError {
	if filename == "" || size <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidFile, "File không được để trống", nil)
	}
	if size > constants.MaxUploadFileSize {
		return errors.NewAppError(errors.ErrCodeInvalidFile, "Kích thước file không được vượt quá 10MB", nil)
	}
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range constants.AllowedUploadExtensions {
		if ext == allowed {
			return nil
		}
	}
	return errors.NewAppError(errors.ErrCodeInvalidFile, fmt.Sprintf("Định dạng file %q không được hỗ trợ", ext), nil)
}
