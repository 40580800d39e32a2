// Package app provides router configuration.
package app

import (
	"github.com/eventbar/order-engine/config"
	"github.com/eventbar/order-engine/internal/http"
	"github.com/eventbar/order-engine/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var loggingService service.LoggingService

	// Catalog service falls back to the demo catalog when the database
	// is disabled.
	var catalogService service.CatalogService
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
		catalogService = service.NewCatalogService(
			dbComponents.CatalogRepo,
			service.WithSnapshotTTL(cfg.Cache.SnapshotTTL),
		)
	} else {
		catalogService = service.NewCatalogService(nil)
	}

	var bookingService service.BookingService
	if dbComponents != nil {
		bookingService = service.NewBookingService(
			dbComponents.EventsRepo,
			catalogService,
			services.Computer,
			services.Reconciler,
		)
	} else {
		bookingService = service.NewBookingService(nil, catalogService, services.Computer, services.Reconciler)
	}

	healthHandler := http.NewHealthHandler()

	// Register circuit breakers for health monitoring
	if dbComponents != nil {
		if dbComponents.CatalogCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_catalog", dbComponents.CatalogCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}

	// Initialize authentication service
	var authService service.AuthService
	if dbComponents != nil && dbComponents.UsersRepo != nil && cfg.Auth.Enabled {
		authService = service.NewAuthService(dbComponents.UsersRepo, cfg.Auth)
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		EnableAuth:        cfg.Auth.Enabled,
		APIKeys:           cfg.Auth.APIKeys,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		LoggingService:    loggingService,
		BookingService:    bookingService,
		CatalogService:    catalogService,
		OrderComputer:     services.Computer,
		AuthService:       authService,
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
