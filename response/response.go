package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse là envelope chung cho mọi thao tác của service
type APIResponse[T any] struct {
	IsSuccess  bool   `json:"isSuccess"`
	Data       T      `json:"data"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// OK tạo response thành công (200)
func OK[T any](data T, message string) APIResponse[T] {
	return APIResponse[T]{
		IsSuccess:  true,
		Data:       data,
		Message:    message,
		StatusCode: http.StatusOK,
	}
}

// Created tạo response tạo mới thành công (201)
func Created[T any](data T, message string) APIResponse[T] {
	return APIResponse[T]{
		IsSuccess:  true,
		Data:       data,
		Message:    message,
		StatusCode: http.StatusCreated,
	}
}

// Fail tạo response lỗi với status code tương ứng
func Fail[T any](statusCode int, message string) APIResponse[T] {
	return APIResponse[T]{
		IsSuccess:  false,
		Message:    message,
		StatusCode: statusCode,
	}
}

// BadRequestResult tạo response lỗi 400
func BadRequestResult[T any](message string) APIResponse[T] {
	return Fail[T](http.StatusBadRequest, message)
}

// NotFoundResult tạo response lỗi 404
func NotFoundResult[T any](message string) APIResponse[T] {
	return Fail[T](http.StatusNotFound, message)
}

// InternalErrorResult tạo response lỗi 500, giữ nguyên nội dung lỗi gốc
func InternalErrorResult[T any](err error) APIResponse[T] {
	return Fail[T](http.StatusInternalServerError, "Đã xảy ra lỗi: "+err.Error())
}

// JSON ghi envelope ra HTTP với status code lấy từ envelope
func JSON[T any](c *gin.Context, r APIResponse[T]) {
	c.JSON(r.StatusCode, r)
}

// Error trả về response lỗi với status code tùy ý
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, APIResponse[any]{
		IsSuccess:  false,
		Message:    message,
		StatusCode: statusCode,
	})
}

// BadRequest trả về response lỗi bad request
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized trả về response chưa xác thực
func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "Chưa xác thực")
}

// UnauthorizedWithMessage trả về 401 kèm thông báo cụ thể
func UnauthorizedWithMessage(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}
