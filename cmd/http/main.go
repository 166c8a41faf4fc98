package main

import (
	"availability-service/internal/app/config"
	"availability-service/internal/app/delivery/http/controllers"
	"availability-service/internal/app/delivery/http/middlewares"
	"availability-service/internal/app/delivery/http/routers"
	"availability-service/internal/app/drivers/database"
	"availability-service/internal/app/drivers/logger"
	"availability-service/internal/app/drivers/messaging"
	"availability-service/internal/app/services/core/auth"
	"availability-service/internal/app/services/core/availability"
	"availability-service/internal/app/services/shared/redis"
	"availability-service/internal/app/services/shared/searchqueue"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		zapLogger.Sugar().Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig)
	rabbitConn := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitConn,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	bootstrapTheApp(bootstrap, location)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zapLogger.Sugar().Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that were already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		zapLogger.Sugar().Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		zapLogger.Sugar().Fatalf("Error during dependency shutdown: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap, location *time.Location) {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Middlewares
	mw := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Auth
	authUsecase := auth.NewAuthUsecase(bootstrap.InternalConfig, bootstrap.Logger)
	authController := controllers.NewAuthController(authUsecase, bootstrap.Logger)

	// Availability engine
	availabilityUsecase := availability.NewAvailabilityUsecase(redisRepository, bootstrap.InternalConfig, location, bootstrap.Logger)
	availabilityController := controllers.NewAvailabilityController(availabilityUsecase, bootstrap.Logger)

	// Business calendar
	calendarUsecase := availability.NewCalendarUsecase(location, bootstrap.Logger)
	calendarController := controllers.NewCalendarController(calendarUsecase, bootstrap.Logger)

	// Async search over AMQP
	queueService, err := searchqueue.NewService(bootstrap.RabbitMQ, bootstrap.Logger, bootstrap.InternalConfig.Queue.Prefetch)
	if err != nil {
		bootstrap.Logger.Sugar().Fatalf("Failed to set up search queue: %v", err)
	}
	consumer := searchqueue.NewConsumer(queueService, availabilityUsecase, bootstrap.InternalConfig, bootstrap.Logger)
	consumerStop, err := consumer.Start(context.Background())
	if err != nil {
		bootstrap.Logger.Sugar().Fatalf("Failed to start search queue consumer: %v", err)
	}
	bootstrap.ConsumerStop = consumerStop

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, mw, authController, availabilityController, calendarController)
}
