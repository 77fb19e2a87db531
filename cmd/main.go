package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"smart-restaurant/internal/handler"
	"smart-restaurant/internal/repositories"
	"smart-restaurant/internal/router"
	"smart-restaurant/internal/service"
	"smart-restaurant/pkg/database"
	"smart-restaurant/pkg/envconfig"
	"smart-restaurant/pkg/flags"
	"smart-restaurant/pkg/logger"
	"smart-restaurant/pkg/shutdownsetup"
)

func main() {
	// Parse command-line flags
	flagConfig := flags.Parse()
	if err := flagConfig.Validate(); err != nil {
		fmt.Printf("Configuration error: %v\n", err)
		return
	}

	envErr := envconfig.LoadEnvFile(".env")

	loggerConfig := logger.Config{
		Level:        envconfig.GetLogLevel(),
		Format:       envconfig.GetEnv("LOG_FORMAT", "json"),
		Output:       envconfig.GetEnv("LOG_OUTPUT", "stdout"),
		EnableCaller: envconfig.GetEnv("LOG_ENABLE_CALLER", "true") == "true",
		Environment:  envconfig.GetEnv("ENVIRONMENT", "development"),
	}

	appLogger := logger.New(loggerConfig)

	if envErr != nil {
		appLogger.Warn("Failed to load .env file", "error", envErr)
	} else {
		appLogger.Debug(".env file loaded successfully")
	}

	appLogger.Info("Starting Smart Restaurant API",
		"environment", loggerConfig.Environment,
		"log_level", loggerConfig.Level)

	dbConfig := database.Config{
		URL:  envconfig.GetEnv("DATABASE_URL", ""),
		Name: envconfig.GetEnv("DATABASE_NAME", ""),
	}

	// Establish the store connection. The process keeps serving without
	// one: liveness and the /test probe still answer, data endpoints
	// report the store as unavailable.
	var db *database.DB
	if dbConfig.Configured() {
		conn, err := database.NewConnection(dbConfig, appLogger)
		if err != nil {
			appLogger.Error("Failed to establish document store connection", "error", err)
		} else {
			db = conn

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := db.HealthCheck(ctx); err != nil {
				appLogger.Error("Document store health check failed", "error", err)
			} else {
				appLogger.Info("Document store health check passed")
			}
			cancel()

			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := db.Close(ctx); err != nil {
					appLogger.Error("Failed to close document store connection", "error", err)
				}
			}()
		}
	} else {
		appLogger.Warn("DATABASE_URL or DATABASE_NAME not set, data endpoints will report unavailable")
	}

	// Initialize repositories over the shared document store adapter
	documentStore := repositories.NewDocumentStore(appLogger, db)
	menuRepo := repositories.NewMenuRepository(appLogger, documentStore)
	orderRepo := repositories.NewOrderRepository(appLogger, documentStore)
	paymentRepo := repositories.NewPaymentRepository(appLogger, documentStore)
	aggregationRepo := repositories.NewAggregationRepository(appLogger, db)

	// Initialize services
	menuService := service.NewMenuService(menuRepo, appLogger)
	orderService := service.NewOrderService(orderRepo, menuRepo, paymentRepo, appLogger)
	paymentService := service.NewPaymentService(orderRepo, paymentRepo, appLogger)
	aggregationService := service.NewAggregationService(aggregationRepo, appLogger)

	// Initialize handlers
	systemHandler := handler.NewSystemHandler(db, appLogger)
	menuHandler := handler.NewMenuHandler(menuService, appLogger)
	orderHandler := handler.NewOrderHandler(orderService, appLogger)
	paymentHandler := handler.NewPaymentHandler(paymentService, appLogger)
	adminHandler := handler.NewAdminHandler(orderService, aggregationService, appLogger)
	qrHandler := handler.NewQRHandler(envconfig.GetEnv("FRONTEND_BASE_URL", "http://localhost:3000"), appLogger)

	mux := router.NewRouter(systemHandler, menuHandler, orderHandler, paymentHandler, adminHandler, qrHandler)

	httpHandler := appLogger.HTTPMiddleware(mux)

	port := flagConfig.Port
	if port == "" {
		port = envconfig.GetEnv("PORT", "8000")
	}
	host := envconfig.GetEnv("HOST", "")

	server := &http.Server{
		Addr:         host + ":" + port,
		Handler:      httpHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		appLogger.Info("Starting HTTP server", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Server error", "error", err)
		}
	}()

	shutdownsetup.SetupGracefulShutdown(server, appLogger)
}
