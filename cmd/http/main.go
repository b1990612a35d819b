package main

import (
	"context"
	"ehr-portal-service/internal/app/config"
	"ehr-portal-service/internal/app/contracts"
	"ehr-portal-service/internal/app/delivery/http/controllers"
	"ehr-portal-service/internal/app/delivery/http/middlewares"
	"ehr-portal-service/internal/app/delivery/http/routers"
	"ehr-portal-service/internal/app/drivers/database"
	"ehr-portal-service/internal/app/drivers/logger"
	"ehr-portal-service/internal/app/drivers/messaging"
	"ehr-portal-service/internal/app/services/core/appointments"
	"ehr-portal-service/internal/app/services/core/auth"
	"ehr-portal-service/internal/app/services/core/billing"
	"ehr-portal-service/internal/app/services/core/clinical"
	"ehr-portal-service/internal/app/services/core/patients"
	"ehr-portal-service/internal/app/services/core/practitioners"
	"ehr-portal-service/internal/app/services/fhir_vendor"
	"ehr-portal-service/internal/app/services/shared/audit"
	"ehr-portal-service/internal/app/services/shared/redis"
	"ehr-portal-service/internal/app/services/shared/session"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig, err := config.NewDriverConfig()
	if err != nil {
		log.Fatalf("Error loading driver config: %v", err)
	}
	internalConfig, err := config.NewInternalConfig()
	if err != nil {
		log.Fatalf("Error loading internal config: %v", err)
	}
	if err := internalConfig.Validate(); err != nil {
		log.Fatalf("Invalid internal config: %v", err)
	}

	zapLogger, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}

	redisClient, err := database.NewRedisClient(context.Background(), driverConfig)
	if err != nil {
		zapLogger.Fatal("Could not connect to Redis", zap.Error(err))
	}
	if redisClient == nil {
		zapLogger.Warn("Redis is not configured, session revocation is disabled")
	}

	rabbitMQConnection, err := messaging.NewRabbitMQ(driverConfig)
	if err != nil {
		zapLogger.Fatal("Could not connect to RabbitMQ", zap.Error(err))
	}

	auditPublisher, err := audit.NewAuditPublisher(rabbitMQConnection, internalConfig.Audit.Queue, zapLogger)
	if err != nil {
		zapLogger.Fatal("Could not initialize audit publisher", zap.Error(err))
	}

	chiRouter := chi.NewRouter()
	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQConnection,
		AuditPublisher: auditPublisher,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:              internalConfig.App.Port,
		Handler:           chiRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Server started",
			zap.String("address", internalConfig.App.Port),
			zap.String("env", internalConfig.App.Env),
		)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error while closing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) {
	cfg := bootstrap.InternalConfig

	// Session revocation store
	var redisRepository contracts.RedisRepository
	if bootstrap.Redis != nil {
		redisRepository = redis.NewRedisRepository(bootstrap.Redis)
	}
	sessionService := session.NewSessionService(
		cfg.Session.Secret,
		time.Duration(cfg.Session.MaxAgeInHours)*time.Hour,
		redisRepository,
		bootstrap.Logger,
	)

	// Vendor
	fhirVendorClient := fhir_vendor.NewFhirVendorClient(
		fhir_vendor.BuildBaseURL(cfg.Vendor.BaseUrl, cfg.Vendor.UrlPrefix, cfg.Vendor.FhirPath),
		time.Duration(cfg.Vendor.HTTPTimeoutInSeconds)*time.Second,
		bootstrap.Logger,
	)

	// Usecases
	patientUsecase := patients.NewPatientUsecase(fhirVendorClient, bootstrap.AuditPublisher, bootstrap.Logger)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		fhirVendorClient,
		bootstrap.AuditPublisher,
		appointments.Location{ID: cfg.Vendor.DefaultLocationID, Display: cfg.Vendor.DefaultLocationDisplay},
		bootstrap.Logger,
	)
	practitionerUsecase := practitioners.NewPractitionerUsecase(fhirVendorClient, bootstrap.Logger)
	clinicalUsecase := clinical.NewClinicalUsecase(fhirVendorClient, bootstrap.AuditPublisher, bootstrap.Logger)
	billingUsecase := billing.NewBillingUsecase(fhirVendorClient, bootstrap.Logger)
	authUsecase := auth.NewAuthUsecase(sessionService, cfg, bootstrap.Logger)

	routers.SetupRoutes(
		bootstrap.Router,
		cfg,
		middlewares.NewMiddlewares(bootstrap.Logger, sessionService, cfg),
		controllers.NewAuthController(bootstrap.Logger, authUsecase, cfg),
		controllers.NewPatientController(bootstrap.Logger, patientUsecase),
		controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase),
		controllers.NewPractitionerController(bootstrap.Logger, practitionerUsecase),
		controllers.NewClinicalController(bootstrap.Logger, clinicalUsecase),
		controllers.NewBillingController(bootstrap.Logger, billingUsecase),
		controllers.NewHealthController(),
	)
}
