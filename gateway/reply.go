package gateway

import (
	"net/http"

	"hotel-booking/errors"
	"hotel-booking/response"
	"hotel-booking/rpc"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// writeReply trả nguyên body của backend, status lấy từ statusCode nếu có
func writeReply(c *gin.Context, reply rpc.RawReply) {
	code := reply.StatusCode()
	if code == 0 {
		code = http.StatusOK
	}
	body := []byte(reply)
	if len(body) == 0 {
		body = []byte("{}")
	}
	c.Data(code, "application/json; charset=utf-8", body)
}

// writeError AppError unauthorized thành 401, lỗi gRPC map theo code
func writeError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil && appErr.Code == errors.ErrCodeUnauthorized {
		response.UnauthorizedWithMessage(c, appErr.Message)
		return
	}
	st := status.Convert(err)
	response.Error(c, httpStatusFromCode(st.Code()), st.Message())
}

func httpStatusFromCode(code codes.Code) int {
	switch code {
	case codes.NotFound:
		return http.StatusNotFound
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func currentUserOrAbort(c *gin.Context) (User, bool) {
	user, ok := CurrentUser(c)
	if !ok {
		response.Unauthorized(c)
		return User{}, false
	}
	return user, true
}
