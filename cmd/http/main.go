package main

import (
	"clinicsync-service/internal/app/config"
	"clinicsync-service/internal/app/contracts"
	"clinicsync-service/internal/app/delivery/http/controllers"
	"clinicsync-service/internal/app/delivery/http/middlewares"
	"clinicsync-service/internal/app/delivery/http/routers"
	"clinicsync-service/internal/app/drivers/database"
	"clinicsync-service/internal/app/drivers/logger"
	"clinicsync-service/internal/app/services/appointments"
	"clinicsync-service/internal/app/services/backend/consultations"
	"clinicsync-service/internal/app/services/shared/redis"
	"clinicsync-service/internal/app/services/shared/session"
	"clinicsync-service/internal/pkg/constvars"
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
	defer zapLogger.Sync()

	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	if internalConfig.Sync.CacheBackend == constvars.CacheBackendRedis {
		bootstrap.Redis = database.NewRedisClient(driverConfig)
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

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Result cache
	cacheLifetime := time.Duration(bootstrap.InternalConfig.Sync.CacheLifetimeSeconds) * time.Second
	var resultCache contracts.ResultCache
	if bootstrap.Redis != nil {
		redisRepository := redis.NewRedisRepository(bootstrap.Redis)
		resultCache = appointments.NewRedisResultCache(redisRepository, cacheLifetime, bootstrap.Logger)
	} else {
		resultCache = appointments.NewMemoryResultCache(cacheLifetime)
	}

	// Session
	tokenProvider := session.NewTokenProvider(bootstrap.InternalConfig, bootstrap.Logger)

	// Clinic backend
	consultationClient := consultations.NewConsultationClient(bootstrap.InternalConfig, tokenProvider, bootstrap.Logger)

	// Appointment
	appointmentStore := appointments.NewStore()
	orchestrator := appointments.NewOrchestrator(
		consultationClient,
		resultCache,
		appointmentStore,
		bootstrap.InternalConfig.Sync.MaxPageSize,
		bootstrap.Logger,
	)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentStore,
		orchestrator,
		consultationClient,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, appointmentController)
}
