package routes

import (
	"net/http"

	"hotel-booking/gateway"
	"hotel-booking/middleware"
	"hotel-booking/response"
	"hotel-booking/services/logger"

	"github.com/gin-gonic/gin"
)

// GatewayClients client tới các backend mà gateway chuyển tiếp
type GatewayClients struct {
	Accounts gateway.AccountClient
	Bookings gateway.BookingClient
	Payments gateway.PaymentClient
}

func SetupGatewayRoutes(router *gin.Engine, clients GatewayClients, verifier *gateway.TokenVerifier, log logger.Logger) {
	authController := gateway.NewAuthController(gateway.NewAuthService(clients.Accounts, log))
	accountController := gateway.NewAccountController(clients.Accounts)
	bookingController := gateway.NewBookingController(clients.Bookings)
	paymentController := gateway.NewPaymentController(clients.Payments)

	auth := router.Group("/auth")
	auth.POST("/login", authController.Login)
	auth.POST("/register", authController.Register)
	auth.POST("/refresh", authController.RefreshToken)

	protected := router.Group("", middleware.AuthMiddleware(verifier))

	protected.GET("/account/profile", accountController.GetProfile)

	booking := protected.Group("/booking")
	booking.GET("/rooms", bookingController.GetRooms)
	booking.GET("/rooms/:id", bookingController.GetRoom)
	booking.POST("/book", bookingController.CreateBooking)
	booking.GET("/my-bookings", bookingController.GetMyBookings)

	payment := protected.Group("/payment")
	payment.POST("/create", paymentController.CreatePayment)
	payment.GET("/promotions", paymentController.GetPromotions)
	payment.GET("/my-payments", paymentController.GetMyPayments)
	payment.GET("/:id", paymentController.GetPayment)

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "API Gateway OK")
	})

	router.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Không tìm thấy đường dẫn "+c.Request.URL.Path)
	})
}
