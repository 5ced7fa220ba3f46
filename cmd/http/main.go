package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"citaplan-service/internal/app/config"
	"citaplan-service/internal/app/delivery/http/middlewares"
	"citaplan-service/internal/app/delivery/http/routers"
	"citaplan-service/internal/app/drivers/database"
	"citaplan-service/internal/app/drivers/logger"
	"citaplan-service/internal/app/drivers/messaging"
	"citaplan-service/internal/app/services/core/availability"
	"citaplan-service/internal/app/services/core/planner"
	"citaplan-service/internal/app/services/core/schemas"
	"citaplan-service/internal/app/services/shared/eventqueue"
	"citaplan-service/internal/app/services/shared/locker"
	"citaplan-service/internal/app/services/shared/redis"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConn := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoClient,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQConn,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		logrus.Printf("Server listening on %s", internalConfig.App.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Error while closing application resources: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	eventQueue, err := eventqueue.NewEventQueueService(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.RabbitMQ.ScheduleEventsQueue,
		bootstrap.Logger,
	)
	if err != nil {
		logrus.Fatalf("Failed to initialize schedule events queue: %v", err)
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Repositories
	dbName := bootstrap.DriverConfig.MongoDB.DbName
	schemaRepository := schemas.NewSchemaMongoRepository(bootstrap.MongoDB, dbName)
	availabilityRepository := availability.NewAvailabilityMongoRepository(bootstrap.MongoDB, dbName)
	roomRepository := availability.NewRoomMongoRepository(bootstrap.MongoDB, dbName)

	// Planner
	plannerUsecase := planner.NewPlannerUsecase(availabilityRepository, roomRepository, schemaRepository, bootstrap.Logger)
	plannerController := planner.NewPlannerController(bootstrap.Logger, plannerUsecase)

	// Schemas
	schemaUsecase := schemas.NewSchemaUsecase(schemaRepository, lockerService, eventQueue, bootstrap.InternalConfig, bootstrap.Logger)
	schemaController := schemas.NewSchemaController(bootstrap.Logger, schemaUsecase)

	// Availability
	availabilityUsecase := availability.NewAvailabilityUsecase(availabilityRepository, schemaRepository, bootstrap.Logger)
	availabilityController := availability.NewAvailabilityController(bootstrap.Logger, availabilityUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		plannerController,
		schemaController,
		availabilityController,
	)
}
