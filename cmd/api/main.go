package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	ledgerUseCase "github.com/amirhossein-jamali/timevault/internal/domain/usecase/ledger"

	custodyport "github.com/amirhossein-jamali/timevault/internal/domain/port/custody"
	"github.com/amirhossein-jamali/timevault/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/timevault/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/timevault/internal/infrastructure/adapter/api/routes"
	custodyAdapter "github.com/amirhossein-jamali/timevault/internal/infrastructure/adapter/custody"
	"github.com/amirhossein-jamali/timevault/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/timevault/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/timevault/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/timevault/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/timevault/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/timevault/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/timevault/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// The database is only needed when a postgres backend is selected
	needsDatabase := cfg.Ledger.Storage == config.BackendPostgres ||
		cfg.Ledger.Custody == config.BackendPostgres

	var dbManager *database.Manager
	if needsDatabase {
		dbPort, err := strconv.Atoi(cfg.Database.Port)
		if err != nil {
			log.Fatalf("Invalid database port %q: %v", cfg.Database.Port, err)
		}

		dbConfig := &database.Config{
			Driver:          cfg.Database.Driver,
			Host:            cfg.Database.Host,
			Port:            dbPort,
			Username:        cfg.Database.Username,
			Password:        cfg.Database.Password,
			Database:        cfg.Database.Database,
			SSLMode:         cfg.Database.SSLMode,
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
			ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
			QueryTimeout:    cfg.Database.QueryTimeout,
			LogLevel:        cfg.Logger.Level,
			RetryAttempts:   cfg.Database.RetryAttempts,
			RetryDelay:      int(cfg.Database.RetryDelay / time.Second),
		}

		// Connect to the database
		dbManager = database.NewManager(dbConfig, appLogger, tp)
		if _, err := dbManager.Connect(); err != nil {
			appLogger.Error("Failed to connect to database", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		defer dbManager.Close()

		// Run migrations
		migrationMgr := migration.NewMigrationManagerWithTimeProvider(dbManager.DB(), appLogger, tp)
		if err := migrationMgr.MigrateAll(); err != nil {
			appLogger.Error("Failed to run migrations", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}

	// Initialize the lock store
	var store persistence.LockRepository
	switch cfg.Ledger.Storage {
	case config.BackendMemory:
		store = repository.NewMemoryLockRepository(appLogger)
	default:
		store = repository.NewLockRepository(dbManager.DB(), tp, appLogger)
	}

	// Initialize the custody bank
	var transfer custodyport.AssetTransfer
	var auditor custodyport.CustodyAuditor
	var creditor migration.AccountCreditor
	switch cfg.Ledger.Custody {
	case config.BackendMemory:
		bank := custodyAdapter.NewMemoryBank(appLogger)
		transfer, auditor, creditor = bank, bank, bank
	default:
		bank := custodyAdapter.NewBank(dbManager.DB(), tp, appLogger)
		transfer, auditor, creditor = bank, bank, bank
	}

	// Seed demo accounts
	if cfg.Ledger.SeedDemoAccounts {
		if err := migration.CreateDefaultAccounts(context.Background(), creditor); err != nil {
			appLogger.Error("Failed to create default accounts", map[string]any{
				"error": err.Error(),
			})
		}
	}

	// Initialize the identifier deriver
	var deriver ledgerUseCase.IDDeriver
	switch cfg.Ledger.IDStrategy {
	case config.IDStrategyContent:
		deriver = ledgerUseCase.NewContentDeriver()
	default:
		// Seed the counter past every identifier ever issued
		created, err := store.TotalCreated(context.Background())
		if err != nil {
			appLogger.Error("Failed to read created lock count", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		deriver = ledgerUseCase.NewSequentialDeriver(created)
	}

	// Initialize the ledger use case
	ledgerService := ledgerUseCase.NewLedgerService(
		store,
		deriver,
		transfer,
		tp,
		appLogger,
		ledgerUseCase.WithCustodyAuditor(auditor),
	)

	// Set up metrics
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)
	instrumentedLedger := metrics.NewInstrumentedLedger(ledgerService, m)

	statsPoller := metrics.NewStatsPoller(store, m, appLogger)
	statsPoller.Start(cfg.Ledger.StatsInterval)

	// Initialize API handlers
	lockHandler := handler.NewLockHandler(instrumentedLedger, tp, appLogger)
	vaultHandler := handler.NewVaultHandler(instrumentedLedger, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger, m)

	// Setup routes
	routes.SetupRoutes(router, lockHandler, vaultHandler, registry)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port":    cfg.Server.Port,
			"env":     cfg.Environment,
			"storage": cfg.Ledger.Storage,
			"custody": cfg.Ledger.Custody,
			"ids":     cfg.Ledger.IDStrategy,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	// Create a deadline to wait for
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Stop sampling lock gauges
	statsPoller.Stop()

	// Shutdown the server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
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

	// Validate ledger configuration
	switch cfg.Ledger.IDStrategy {
	case config.IDStrategySequential, config.IDStrategyContent:
	default:
		return fmt.Errorf("invalid ledger.idStrategy value: %s, must be %s or %s",
			cfg.Ledger.IDStrategy, config.IDStrategySequential, config.IDStrategyContent)
	}

	switch cfg.Ledger.Storage {
	case config.BackendPostgres, config.BackendMemory:
	default:
		return fmt.Errorf("invalid ledger.storage value: %s, must be %s or %s",
			cfg.Ledger.Storage, config.BackendPostgres, config.BackendMemory)
	}

	switch cfg.Ledger.Custody {
	case config.BackendPostgres, config.BackendMemory:
	default:
		return fmt.Errorf("invalid ledger.custody value: %s, must be %s or %s",
			cfg.Ledger.Custody, config.BackendPostgres, config.BackendMemory)
	}

	if cfg.Ledger.StatsInterval == 0 {
		missingConfigs = append(missingConfigs, "ledger.statsInterval")
	}

	// Validate database configuration, needed only for postgres backends
	needsDatabase := cfg.Ledger.Storage == config.BackendPostgres ||
		cfg.Ledger.Custody == config.BackendPostgres
	if needsDatabase {
		if cfg.Database.Host == "" {
			// In production, check if environment variable exists
			if cfg.Environment == config.Production && os.Getenv("TV_DB_HOST") == "" {
				missingConfigs = append(missingConfigs, "database.host (or TV_DB_HOST environment variable)")
			} else if cfg.Environment != config.Production {
				missingConfigs = append(missingConfigs, "database.host")
			}
		}

		if cfg.Database.Port == "" {
			if cfg.Environment == config.Production && os.Getenv("TV_DB_PORT") == "" {
				missingConfigs = append(missingConfigs, "database.port (or TV_DB_PORT environment variable)")
			} else if cfg.Environment != config.Production {
				missingConfigs = append(missingConfigs, "database.port")
			}
		}

		if cfg.Database.Username == "" {
			if cfg.Environment == config.Production && os.Getenv("TV_DB_USERNAME") == "" {
				missingConfigs = append(missingConfigs, "database.username (or TV_DB_USERNAME environment variable)")
			} else if cfg.Environment != config.Production {
				missingConfigs = append(missingConfigs, "database.username")
			}
		}

		if cfg.Database.Password == "" {
			if cfg.Environment == config.Production && os.Getenv("TV_DB_PASSWORD") == "" {
				missingConfigs = append(missingConfigs, "database.password (or TV_DB_PASSWORD environment variable)")
			} else if cfg.Environment != config.Production {
				missingConfigs = append(missingConfigs, "database.password")
			}
		}

		if cfg.Database.Database == "" {
			if cfg.Environment == config.Production && os.Getenv("TV_DB_NAME") == "" {
				missingConfigs = append(missingConfigs, "database.database (or TV_DB_NAME environment variable)")
			} else if cfg.Environment != config.Production {
				missingConfigs = append(missingConfigs, "database.database")
			}
		}

		if cfg.Database.QueryTimeout == 0 {
			missingConfigs = append(missingConfigs, "database.queryTimeout")
		}
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	// Return error with list of missing configurations
	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		var warnings []string

		// Check database security settings
		if needsDatabase {
			sslMode := strings.ToLower(cfg.Database.SSLMode)
			if sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
				warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
			}
		}

		// Check timeout settings
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
