package routes

import (
	"net/http"

	"hotel-booking/controllers"
	"hotel-booking/response"
	"hotel-booking/services"
	"hotel-booking/validator"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// BookingServices các service mà route của booking-service cần
type BookingServices struct {
	Locations *services.LocationService
	TypeRooms *services.TypeRoomService
	Rooms     *services.RoomService
	Images    *services.ImageService
	Bookings  *services.BookingService
	Reviews   *services.ReviewService
}

func SetupRoutes(router *gin.Engine, svc BookingServices, m *melody.Melody) error {
	if err := validator.RegisterBindings(); err != nil {
		return err
	}

	locationController := controllers.NewLocationController(svc.Locations)
	typeRoomController := controllers.NewTypeRoomController(svc.TypeRooms)
	roomController := controllers.NewRoomController(svc.Rooms)
	imageController := controllers.NewImageController(svc.Images)
	bookingController := controllers.NewBookingController(svc.Bookings)
	reviewController := controllers.NewReviewController(svc.Reviews)

	api := router.Group("/api")

	locations := api.Group("/locations")
	locations.GET("", locationController.GetLocations)
	locations.GET("/:id", locationController.GetLocationByID)
	locations.POST("", locationController.CreateLocation)
	locations.PATCH("/:id", locationController.UpdateLocation)
	locations.DELETE("/:id", locationController.DeleteLocation)

	typeRooms := api.Group("/type-rooms")
	typeRooms.GET("", typeRoomController.GetTypeRooms)
	typeRooms.GET("/:id", typeRoomController.GetTypeRoomByID)
	typeRooms.POST("", typeRoomController.CreateTypeRoom)
	typeRooms.PATCH("/:id", typeRoomController.UpdateTypeRoom)
	typeRooms.DELETE("/:id", typeRoomController.DeleteTypeRoom)

	rooms := api.Group("/rooms")
	rooms.GET("", roomController.GetRooms)
	rooms.GET("/:id", roomController.GetRoomByID)
	rooms.POST("", roomController.CreateRoom)
	rooms.PATCH("/:id", roomController.UpdateRoom)
	rooms.DELETE("/:id", roomController.DeleteRoom)

	images := api.Group("/images")
	images.GET("", imageController.GetImages)
	images.GET("/:id", imageController.GetImageByID)
	images.POST("/upload", imageController.UploadImage)
	images.DELETE("/:id", imageController.DeleteImage)

	bookings := api.Group("/bookings")
	bookings.GET("", bookingController.GetBookings)
	bookings.GET("/:id", bookingController.GetBookingByID)
	bookings.POST("", bookingController.CreateBooking)
	bookings.PATCH("/:id", bookingController.UpdateBooking)
	bookings.DELETE("/:id", bookingController.DeleteBooking)

	reviews := api.Group("/reviews")
	reviews.GET("", reviewController.GetReviews)
	reviews.GET("/:id", reviewController.GetReviewByID)
	reviews.POST("", reviewController.CreateReview)
	reviews.PATCH("/:id", reviewController.UpdateReview)
	reviews.DELETE("/:id", reviewController.DeleteReview)

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "Booking service OK")
	})
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	//ws
	if m != nil {
		router.GET("/ws", func(c *gin.Context) {
			_ = m.HandleRequest(c.Writer, c.Request)
		})
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Không tìm thấy đường dẫn "+c.Request.URL.Path)
	})
	return nil
}
