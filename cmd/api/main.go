package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/arkananta/rantai/internal/pkg/config"
	"github.com/arkananta/rantai/internal/pkg/database"
	"github.com/arkananta/rantai/internal/pkg/health"
	"github.com/arkananta/rantai/internal/pkg/logger"
	"github.com/arkananta/rantai/internal/pkg/middleware"
	nsqpkg "github.com/arkananta/rantai/internal/pkg/nsq"
	"github.com/arkananta/rantai/internal/pkg/server"
	"github.com/arkananta/rantai/services/auth"
	authGateway "github.com/arkananta/rantai/services/auth/gateway"
	authHandler "github.com/arkananta/rantai/services/auth/handler"
	authHTTP "github.com/arkananta/rantai/services/auth/handler/http"
	authRepo "github.com/arkananta/rantai/services/auth/repository"
	authUsecase "github.com/arkananta/rantai/services/auth/usecase"
	"github.com/arkananta/rantai/services/orders"
	orderGateway "github.com/arkananta/rantai/services/orders/gateway"
	orderHandler "github.com/arkananta/rantai/services/orders/handler"
	orderHTTP "github.com/arkananta/rantai/services/orders/handler/http"
	orderRepo "github.com/arkananta/rantai/services/orders/repository"
	orderUsecase "github.com/arkananta/rantai/services/orders/usecase"
)

func main() {
	appName := "rantai-api"
	configs := config.InitConfig(config.GetEnv("CONFIG_PATH", ".env"))

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// User directory: static seed, shared by auth and orders
	directory := authRepo.NewUserDirectoryRepo(authRepo.DefaultSeed)

	// OTP store: in-memory by default, Redis when configured
	var otpRepo auth.OTPRepo = authRepo.NewMemoryOTPRepo()
	if configs.OTP.Store == "redis" {
		redisClient, err := database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
		defer redisClient.Close()
		otpRepo = authRepo.NewRedisOTPRepo(redisClient)
	}

	// SMS delivery channel
	var smsGW auth.SMSGW = authGateway.NewLogSMSGateway()
	if configs.SMS.Enabled {
		smsGW = authGateway.NewFast2SMSGateway(configs.SMS)
	}

	// Order event publishing, enabled when an NSQ address is configured
	var orderGW orders.OrderGW
	if configs.NSQ.Address != "" {
		producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
		}
		defer producer.Stop()
		orderGW = orderGateway.NewNSQOrderGW(producer)
	}

	// Use cases
	authUC := authUsecase.NewAuthUC(otpRepo, directory, smsGW, configs)
	orderUC := orderUsecase.NewOrderUC(orderRepo.NewMemoryOrderRepo(), directory, orderGW)

	// Handlers
	authHandlers := authHandler.NewHandler(authHTTP.NewAuthHandler(authUC))
	orderHandlers := orderHandler.NewHandler(orderHTTP.NewOrderHandler(orderUC))

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register routes
	health.RegisterHealthEndpoints(e, appName)
	authHandlers.RegisterRoutes(e)
	orderHandlers.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error", logger.Err(err))
	}
}
