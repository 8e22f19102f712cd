package config

import (
	"hotel-booking/middleware"
	"hotel-booking/services/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// InitApp tạo gin engine với cors và các middleware chung
func InitApp(log logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery(log), middleware.RequestID(), middleware.RequestLogger(log))

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization", middleware.RequestIDHeader)
	configCors.AddExposeHeaders(middleware.RequestIDHeader)
	// token đi qua header Authorization, không cần cookie
	configCors.AllowAllOrigins = true
	configCors.AllowCredentials = false
	router.Use(cors.New(configCors))

	_ = router.SetTrustedProxies(nil)
	return router
}
