// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/eventbar/order-engine/config"
	"github.com/eventbar/order-engine/internal/circuitbreaker"
	"github.com/eventbar/order-engine/internal/repository"
	"github.com/eventbar/order-engine/internal/service"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	CatalogRepo           repository.CatalogRepositoryInterface
	EventsRepo            repository.EventsRepositoryInterface
	UsersRepo             repository.UsersRepositoryInterface
	LoggingService        service.LoggingService
	CatalogCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker    *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails; the engine
// then runs against the built-in demo catalog without persistence.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	// Initialize circuit breakers
	catalogCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-catalog",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	// Initialize repositories
	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	catalogRepo := repository.NewCatalogRepository(db)
	catalogRepoWithCB := repository.NewCatalogRepositoryWithCircuitBreaker(catalogRepo, catalogCB)

	eventsRepo := repository.NewEventsRepository(db)
	usersRepo := repository.NewUsersRepository(db)

	// Seed the initial staff account when configured
	if err := seedDefaultStaffUser(usersRepo); err != nil {
		log.Warn().Err(err).Msg("Failed to seed default staff user")
	}

	return &DatabaseComponents{
		CatalogRepo:           catalogRepoWithCB,
		EventsRepo:            eventsRepo,
		UsersRepo:             usersRepo,
		LoggingService:        loggingService,
		CatalogCircuitBreaker: catalogCB,
		LogsCircuitBreaker:    logsCB,
	}
}
