package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	coreport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
	msgport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/messaging"
	reportUseCase "github.com/amirhossein-jamali/finance-tracker/internal/domain/usecase/report"
	transactionUseCase "github.com/amirhossein-jamali/finance-tracker/internal/domain/usecase/transaction"

	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/messaging"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(logger.Options{
		Production: cfg.Environment == config.Production,
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	defer func() {
		_ = appLogger.Flush()
	}()

	tp := timeProvider.NewRealTimeProvider()

	dbConfig := database.CreateConfigFromAppConfig(cfg)
	if err := dbConfig.Validate(); err != nil {
		appLogger.Error("Invalid database configuration", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			appLogger.Error("Failed to close database", map[string]any{
				"error": err.Error(),
			})
		}
	}()

	if err := dbManager.Migrate(context.Background()); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	publisher := newEventPublisher(cfg, appLogger, tp)
	defer func() {
		if err := publisher.Close(); err != nil {
			appLogger.Warn("Failed to close event publisher", map[string]any{
				"error": err.Error(),
			})
		}
	}()

	transactionRepo := repository.NewTransactionRepository(dbManager.DB(), appLogger)

	transactionService := transactionUseCase.NewTransactionService(
		transactionRepo,
		publisher,
		tp,
		appLogger,
		cfg.Transaction.StrictTypes,
	)
	reportService := reportUseCase.NewReportService(transactionRepo, tp, appLogger)

	router := routes.NewRouter(routes.Handlers{
		Transaction: handler.NewTransactionHandler(transactionService, cfg.Transaction.DefaultLimit, appLogger),
		Report:      handler.NewReportHandler(reportService, appLogger),
		Health:      handler.NewHealthHandler(dbManager, appLogger),
	}, appLogger, tp, middleware.CORSOptions{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowHeaders: cfg.CORS.AllowHeaders,
		MaxAge:       cfg.CORS.MaxAge,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":        server.Addr,
			"env":         cfg.Environment,
			"driver":      dbConfig.Driver,
			"strictTypes": cfg.Transaction.StrictTypes,
			"events":      cfg.Events.Enabled,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		appLogger.Info("Shutting down server...", map[string]any{
			"signal": sig.String(),
		})
	case err := <-serverErr:
		appLogger.Error("Failed to start server", map[string]any{
			"error": err.Error(),
		})
	}

	ctx, cancel := tp.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// newEventPublisher connects to the broker when events are enabled. A broker
// that cannot be reached downgrades to the no-op publisher instead of failing startup.
func newEventPublisher(cfg *config.Config, appLogger coreport.Logger, tp coreport.TimeProvider) msgport.EventPublisher {
	if !cfg.Events.Enabled {
		return messaging.NewNoopPublisher()
	}

	publisher, err := messaging.NewAMQPPublisher(messaging.AMQPConfig{
		URL:              cfg.Events.URL,
		Exchange:         cfg.Events.Exchange,
		RoutingKeyPrefix: cfg.Events.RoutingKeyPrefix,
		PublishTimeout:   cfg.Events.PublishTimeout,
	}, appLogger, tp)
	if err != nil {
		appLogger.Warn("Event publishing disabled", map[string]any{
			"error": err.Error(),
		})
		return messaging.NewNoopPublisher()
	}

	return publisher
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	switch cfg.Database.Driver {
	case database.DriverSQLite:
		if cfg.Database.Path == "" {
			missingConfigs = append(missingConfigs, "database.path (or FT_DB_PATH environment variable)")
		}
	case database.DriverPostgres:
		required := map[string]string{
			"database.host (or FT_DB_HOST environment variable)":         cfg.Database.Host,
			"database.port (or FT_DB_PORT environment variable)":         cfg.Database.Port,
			"database.username (or FT_DB_USERNAME environment variable)": cfg.Database.Username,
			"database.password (or FT_DB_PASSWORD environment variable)": cfg.Database.Password,
			"database.database (or FT_DB_NAME environment variable)":     cfg.Database.Database,
		}
		for name, value := range required {
			if value == "" {
				missingConfigs = append(missingConfigs, name)
			}
		}
	default:
		return fmt.Errorf("unsupported database driver %q, expected %s or %s",
			cfg.Database.Driver, database.DriverSQLite, database.DriverPostgres)
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	if cfg.Events.Enabled && cfg.Events.URL == "" {
		missingConfigs = append(missingConfigs, "events.url (or FT_EVENTS_URL environment variable)")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missingConfigs, ", "))
	}

	return nil
}
