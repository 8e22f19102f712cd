package main

import (
	"log"
	"net"

	"hotel-booking/config"
	_ "hotel-booking/docs"
	"hotel-booking/jobs"
	"hotel-booking/routes"
	"hotel-booking/rpc"
	"hotel-booking/services"
	"hotel-booking/services/logger"
	"hotel-booking/services/notification"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
	"google.golang.org/grpc"
)

func main() {
	config.LoadEnv()

	cfg, err := config.LoadBookingConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	appLogger := logger.NewDefaultLogger(logger.ParseLevel(cfg.LogLevel))

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	rdb, err := config.ConnectRedis(cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect redis: %v", err)
	}
	cld, err := config.ConnectCloudinary(cfg.CloudinaryURL)
	if err != nil {
		log.Fatalf("Failed to init cloudinary: %v", err)
	}

	m := melody.New()
	opts := services.ServiceOptions{DB: db, Logger: appLogger}

	var storage services.FileStorage
	if cld != nil {
		storage = services.NewCloudinaryStorage(cld)
	} else {
		appLogger.Warn("CLOUDINARY_URL chưa cấu hình, upload ảnh sẽ bị từ chối")
	}

	svc := routes.BookingServices{
		Locations: services.NewLocationService(opts),
		TypeRooms: services.NewTypeRoomService(opts),
		Rooms:     services.NewRoomService(opts),
		Images: services.NewImageService(services.ImageServiceOptions{
			ServiceOptions: opts,
			Storage:        storage,
			Folder:         cfg.UploadFolder,
		}),
		Bookings: services.NewBookingService(services.BookingServiceOptions{
			ServiceOptions: opts,
			Notifier:       notification.NewMelodyService(m),
		}),
		Reviews: services.NewReviewService(opts),
	}

	router := config.InitApp(appLogger)
	if err := routes.SetupRoutes(router, svc, m); err != nil {
		log.Fatalf("Failed to setup routes: %v", err)
	}

	// gRPC cho api-gateway
	lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		log.Fatalf("Failed to listen on gRPC port %s: %v", cfg.GRPCPort, err)
	}
	grpcServer := grpc.NewServer()
	rpc.RegisterBookingServer(grpcServer, rpc.NewBookingHandler(svc.Rooms, svc.Bookings))
	go func() {
		appLogger.Info("gRPC server starting on port %s...", cfg.GRPCPort)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("gRPC server stopped: %v", err)
		}
	}()

	var locker services.Locker = services.LocalLocker{}
	if rdb != nil {
		locker = services.NewRedisLocker(rdb)
	}
	c := cron.New()
	if err := jobs.InitCronJobs(c, cfg.HoldSweepSpec, svc.Bookings, locker, appLogger); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}
	defer c.Stop()

	appLogger.Info("Server starting on port %s...", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
