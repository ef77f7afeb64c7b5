package main

import (
	"cfs-service/internal/app/config"
	"cfs-service/internal/app/contracts"
	"cfs-service/internal/app/delivery/http/controllers"
	"cfs-service/internal/app/delivery/http/middlewares"
	"cfs-service/internal/app/delivery/http/routers"
	"cfs-service/internal/app/drivers/database"
	"cfs-service/internal/app/drivers/logger"
	"cfs-service/internal/app/drivers/messaging"
	"cfs-service/internal/app/drivers/storage"
	"cfs-service/internal/app/services/core/assessments"
	"cfs-service/internal/app/services/core/exports"
	"cfs-service/internal/app/services/core/sessions"
	"cfs-service/internal/app/services/shared/eventqueue"
	"cfs-service/internal/app/services/shared/locker"
	"cfs-service/internal/app/services/shared/ratelimiter"
	redisRepo "cfs-service/internal/app/services/shared/redis"
	storageSvc "cfs-service/internal/app/services/shared/storage"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.String("timezone", internalConfig.App.Timezone), zap.Error(err))
	}
	time.Local = location

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Redis:          database.NewRedisClient(driverConfig, log),
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if internalConfig.App.StoreDriver == config.StoreDriverMongo {
		bootstrap.MongoDB = database.NewMongoDB(driverConfig, log)
	}
	if internalConfig.App.EventsEnabled {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig, log)
	}
	if internalConfig.App.ExportEnabled {
		bootstrap.Minio = storage.NewMinio(driverConfig, log)
	}

	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:              internalConfig.App.Port,
		Handler:           bootstrap.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server starting", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Error("Error closing drivers", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) {
	internalConfig := bootstrap.InternalConfig
	log := bootstrap.Logger

	// Redis
	redisRepository := redisRepo.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, log)
	resourceLimiter := ratelimiter.NewResourceLimiter(redisRepository, log)

	// Events
	events := eventqueue.NewNoopPublisher()
	if bootstrap.RabbitMQ != nil {
		publisher, err := eventqueue.NewService(
			bootstrap.RabbitMQ,
			log,
			internalConfig.RabbitMQ.AssessmentEventQueue,
			time.Duration(internalConfig.RabbitMQ.PublishTimeoutInSeconds)*time.Second,
		)
		if err != nil {
			log.Fatal("Error creating assessment event publisher", zap.Error(err))
		}
		events = publisher
	}

	// Assessments
	var assessmentRepository contracts.AssessmentRepository
	switch internalConfig.App.StoreDriver {
	case config.StoreDriverMongo:
		assessmentRepository = assessments.NewAssessmentMongoRepository(
			bootstrap.MongoDB,
			bootstrap.DriverConfig.MongoDB.DBName,
			internalConfig.MongoDB.AssessmentCollection,
			internalConfig.MongoDB.CounterCollection,
		)
	default:
		assessmentRepository = assessments.NewAssessmentRedisRepository(bootstrap.Redis)
	}
	assessmentUsecase := assessments.NewAssessmentUsecase(assessmentRepository, events, log)

	// Sessions
	sessionStore := sessions.NewSessionStore(redisRepository)
	sessionUsecase := sessions.NewSessionUsecase(sessionStore, assessmentRepository, lockerService, events, internalConfig, log)

	// Exports
	var objectStorage contracts.ExportStorage
	if bootstrap.Minio != nil {
		objectStorage = storageSvc.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig.Minio.Region)
	}
	exportUsecase := exports.NewExportUsecase(assessmentRepository, objectStorage, events, internalConfig, log)

	if objectStorage != nil {
		snapshotWorker := exports.NewSnapshotWorker(log, internalConfig, lockerService, exportUsecase)
		snapshotWorker.Start(context.Background())
		bootstrap.WorkerStop = snapshotWorker.Stop
	}

	// Delivery
	mw := middlewares.NewMiddlewares(log, internalConfig, resourceLimiter)
	scoringController := controllers.NewScoringController(log)
	sessionController := controllers.NewSessionController(log, internalConfig, sessionUsecase)
	assessmentController := controllers.NewAssessmentController(log, internalConfig, assessmentUsecase, sessionUsecase)
	exportController := controllers.NewExportController(log, internalConfig, exportUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		mw,
		scoringController,
		sessionController,
		assessmentController,
		exportController,
	)
}
