package main

import (
	"log"

	"hotel-booking/config"
	"hotel-booking/gateway"
	"hotel-booking/routes"
	"hotel-booking/rpc"
	"hotel-booking/services/logger"
)

func main() {
	config.LoadEnv()

	cfg, err := config.LoadGatewayConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	appLogger := logger.NewDefaultLogger(logger.ParseLevel(cfg.LogLevel))

	verifier, err := gateway.NewTokenVerifier(cfg.JWTPublicKey)
	if err != nil {
		log.Fatalf("Failed to load JWT public key: %v", err)
	}

	accountConn, err := rpc.Dial(cfg.AccountServiceAddr)
	if err != nil {
		log.Fatalf("Failed to dial account-service: %v", err)
	}
	defer accountConn.Close()
	bookingConn, err := rpc.Dial(cfg.BookingServiceAddr)
	if err != nil {
		log.Fatalf("Failed to dial booking-service: %v", err)
	}
	defer bookingConn.Close()
	paymentConn, err := rpc.Dial(cfg.PaymentServiceAddr)
	if err != nil {
		log.Fatalf("Failed to dial payment-service: %v", err)
	}
	defer paymentConn.Close()

	router := config.InitApp(appLogger)
	routes.SetupGatewayRoutes(router, routes.GatewayClients{
		Accounts: rpc.NewAccountServiceClient(accountConn),
		Bookings: rpc.NewBookingServiceClient(bookingConn),
		Payments: rpc.NewPaymentServiceClient(paymentConn),
	}, verifier, appLogger)

	appLogger.Info("API Gateway starting on port %s...", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
