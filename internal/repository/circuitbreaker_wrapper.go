// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"github.com/eventbar/order-engine/internal/circuitbreaker"
	"github.com/eventbar/order-engine/internal/domain/model"
)

// CatalogRepositoryWithCircuitBreaker wraps CatalogRepository with circuit breaker protection.
type CatalogRepositoryWithCircuitBreaker struct {
	repo           *CatalogRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewCatalogRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewCatalogRepositoryWithCircuitBreaker(repo *CatalogRepository, cb *circuitbreaker.CircuitBreaker) *CatalogRepositoryWithCircuitBreaker {
	return &CatalogRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// ListIngredients returns all ingredients with circuit breaker protection.
func (r *CatalogRepositoryWithCircuitBreaker) ListIngredients(ctx context.Context) ([]model.Ingredient, error) {
	var result []model.Ingredient
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.ListIngredients(ctx)
		return cbErr
	})
	return result, err
}

// ListRecipes returns all recipes with circuit breaker protection.
func (r *CatalogRepositoryWithCircuitBreaker) ListRecipes(ctx context.Context) ([]model.Recipe, error) {
	var result []model.Recipe
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.ListRecipes(ctx)
		return cbErr
	})
	return result, err
}

// GetIngredient returns one ingredient with circuit breaker protection.
func (r *CatalogRepositoryWithCircuitBreaker) GetIngredient(ctx context.Context, id string) (*model.Ingredient, error) {
	var result *model.Ingredient
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetIngredient(ctx, id)
		return cbErr
	})
	return result, err
}

// ReplaceOffers swaps an ingredient's offers with circuit breaker protection.
func (r *CatalogRepositoryWithCircuitBreaker) ReplaceOffers(ctx context.Context, id string, offers []model.PackOffer) (*model.Ingredient, error) {
	var result *model.Ingredient
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.ReplaceOffers(ctx, id, offers)
		return cbErr
	})
	return result, err
}

// Snapshot assembles the catalog with circuit breaker protection.
// If the circuit is open, an empty catalog and ErrCircuitOpen are
// returned so the caller can fall back to the built-in demo catalog.
func (r *CatalogRepositoryWithCircuitBreaker) Snapshot(ctx context.Context) (model.Catalog, error) {
	var result model.Catalog
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Snapshot(ctx)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *CatalogRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// CreateMany stores multiple log entries with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
