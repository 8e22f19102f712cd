package controllers

import (
	"hotel-booking/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// parseID đọc :id từ path, sai định dạng thì trả 400 luôn
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return uuid.Nil, false
	}
	return id, true
}

func bindQuery(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		response.BadRequest(c, "Tham số truy vấn không hợp lệ: "+err.Error())
		return false
	}
	return true
}

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return false
	}
	return true
}
