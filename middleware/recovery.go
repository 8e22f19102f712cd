package middleware

import (
	"fmt"
	"net/http"

	"hotel-booking/services/logger"

	"github.com/gin-gonic/gin"
)

// Recovery bắt panic và trả về 500 dạng JSON
func Recovery(log logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("Panic khi xử lý %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success":    false,
			"message":    fmt.Sprintf("Lỗi server: %v", recovered),
			"statusCode": http.StatusInternalServerError,
		})
	})
}
