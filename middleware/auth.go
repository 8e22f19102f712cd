package middleware

import (
	"strings"

	"hotel-booking/gateway"
	"hotel-booking/response"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware yêu cầu header Authorization: Bearer <token>
func AuthMiddleware(verifier *gateway.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.UnauthorizedWithMessage(c, "Thiếu access token")
			c.Abort()
			return
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || strings.TrimSpace(tokenString) == "" {
			response.UnauthorizedWithMessage(c, "Access token phải có dạng Bearer")
			c.Abort()
			return
		}

		user, err := verifier.Verify(strings.TrimSpace(tokenString))
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Lưu thông tin user vào context
		c.Set(gateway.ContextUserKey, user)
		c.Next()
	}
}
