package middleware

import (
	"time"

	"hotel-booking/services/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger log request và thời gian xử lý
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		log.Info("[Request] %s %s", c.Request.Method, c.Request.URL.Path)

		c.Next()

		log.Info("[Response] %d - Took %d ms", c.Writer.Status(), time.Since(start).Milliseconds())
	}
}
