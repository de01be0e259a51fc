package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"shrm-web/internal/app/config"
	"shrm-web/internal/app/contracts"
	"shrm-web/internal/app/delivery/http/controllers"
	"shrm-web/internal/app/delivery/http/middlewares"
	"shrm-web/internal/app/delivery/http/routers"
	"shrm-web/internal/app/delivery/http/views"
	"shrm-web/internal/app/drivers/database"
	"shrm-web/internal/app/drivers/logger"
	"shrm-web/internal/app/drivers/messaging"
	"shrm-web/internal/app/services/core/accounts"
	"shrm-web/internal/app/services/core/appointments"
	"shrm-web/internal/app/services/core/catalog"
	"shrm-web/internal/app/services/core/contacts"
	"shrm-web/internal/app/services/shared/apiclient"
	"shrm-web/internal/app/services/shared/content"
	"shrm-web/internal/app/services/shared/metrics"
	"shrm-web/internal/app/services/shared/notifier"
	"shrm-web/internal/app/services/shared/redis"
	"shrm-web/internal/app/services/shared/tokenstore"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
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

	redisClient := database.NewRedisClient(driverConfig, log)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig, log)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	chiRouter := chi.NewRouter()
	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         log,
		RabbitMQ:       rabbitMQ,
		Registry:       registry,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:              internalConfig.App.Port,
		Handler:           chiRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server started", zap.String("address", server.Addr), zap.String("env", internalConfig.App.Env))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
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

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Failed to close drivers", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	internalConfig := bootstrap.InternalConfig
	log := bootstrap.Logger

	// Metrics
	var websiteMetrics *metrics.WebsiteMetrics
	if internalConfig.Metrics.Enabled {
		websiteMetrics = metrics.NewWebsiteMetrics(bootstrap.Registry, internalConfig.Metrics.Namespace)
	}

	// Visitor tokens
	tokenTTL := time.Duration(internalConfig.Session.TTLInHours) * time.Hour
	var tokens contracts.TokenProvider
	if bootstrap.Redis != nil {
		tokens = tokenstore.NewRedisTokenStore(redis.NewRedisRepository(bootstrap.Redis), tokenTTL, log)
	} else {
		tokens = tokenstore.NewMemoryTokenStore(tokenTTL)
	}

	// Backend API and submission events
	apiClient := apiclient.NewAPIClient(internalConfig.API, tokens, websiteMetrics, log)
	publisher, err := notifier.NewSubmissionPublisher(bootstrap.RabbitMQ, bootstrap.DriverConfig.RabbitMQ.SubmissionQueue, websiteMetrics, log)
	if err != nil {
		return err
	}

	// Pages
	pageContent, err := content.NewPageRenderer(log)
	if err != nil {
		return err
	}
	renderer, err := views.NewRenderer(log)
	if err != nil {
		return err
	}

	// Usecases
	appointmentUsecase := appointments.NewAppointmentUsecase(apiClient, publisher, websiteMetrics, log)
	contactUsecase := contacts.NewContactUsecase(apiClient, publisher, websiteMetrics, log)
	accountUsecase := accounts.NewAccountUsecase(apiClient, tokens, websiteMetrics, log)
	catalogUsecase := catalog.NewCatalogUsecase(apiClient, log)

	// Controllers
	presenter := controllers.NewPresenter(log, renderer, tokens)
	pageController := controllers.NewPageController(presenter, pageContent, catalogUsecase)
	appointmentController := controllers.NewAppointmentController(presenter, appointmentUsecase)
	contactController := controllers.NewContactController(presenter, contactUsecase)
	accountController := controllers.NewAccountController(presenter, accountUsecase)
	healthController := controllers.NewHealthController(log, apiClient)

	middlewares := &middlewares.Middlewares{
		Log:            log,
		InternalConfig: internalConfig,
		Tokens:         tokens,
		Metrics:        websiteMetrics,
		Views:          renderer,
	}

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		bootstrap.Registry,
		middlewares,
		pageController,
		appointmentController,
		contactController,
		accountController,
		healthController,
	)
	return nil
}
