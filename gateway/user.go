package gateway

import "github.com/gin-gonic/gin"

const ContextUserKey = "user"

// User thông tin lấy từ access token
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// CurrentUser lấy user đã xác thực từ gin context
func CurrentUser(c *gin.Context) (User, bool) {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return User{}, false
	}
	user, ok := v.(User)
	return user, ok
}
