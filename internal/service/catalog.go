package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/eventbar/order-engine/internal/domain/model"
	"github.com/eventbar/order-engine/internal/repository"
)

// ErrRepositoryNotConfigured is returned for write operations when the
// service runs without a database.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// CatalogService provides access to the recipe and ingredient catalog.
// The snapshot is cached with a TTL so plan computations do not hit the
// database on every request. When no repository is configured (or the
// database is unreachable) the built-in demo catalog is served.
type CatalogService interface {
	Snapshot(ctx context.Context) model.Catalog
	ListRecipes(ctx context.Context) ([]model.Recipe, error)
	ListIngredients(ctx context.Context) ([]model.Ingredient, error)
	ReplaceOffers(ctx context.Context, ingredientID string, offers []model.PackOffer) (*model.Ingredient, error)
	InvalidateSnapshot()
}

// CatalogOption configures the catalog service.
type CatalogOption func(*CatalogServiceImpl)

// WithSnapshotTTL overrides the snapshot cache TTL.
func WithSnapshotTTL(ttl time.Duration) CatalogOption {
	return func(s *CatalogServiceImpl) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithFallbackCatalog overrides the catalog served when the repository
// is unavailable.
func WithFallbackCatalog(catalog model.Catalog) CatalogOption {
	return func(s *CatalogServiceImpl) {
		s.fallback = catalog
	}
}

// CatalogServiceImpl implements CatalogService.
type CatalogServiceImpl struct {
	repo     repository.CatalogRepositoryInterface
	fallback model.Catalog
	ttl      time.Duration

	mu        sync.RWMutex
	snapshot  model.Catalog
	loadedAt  time.Time
	hasLoaded bool
}

// NewCatalogService creates a catalog service. A nil repository means
// database-less mode: the demo catalog is always served.
func NewCatalogService(repo repository.CatalogRepositoryInterface, opts ...CatalogOption) CatalogService {
	s := &CatalogServiceImpl{
		repo:     repo,
		fallback: DemoCatalog(),
		ttl:      5 * time.Minute,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns the current catalog. Never fails: on repository
// errors the last good snapshot is served, and before the first
// successful load the fallback catalog is served.
func (s *CatalogServiceImpl) Snapshot(ctx context.Context) model.Catalog {
	if s.repo == nil {
		return s.fallback
	}

	s.mu.RLock()
	fresh := s.hasLoaded && time.Since(s.loadedAt) < s.ttl
	snapshot := s.snapshot
	s.mu.RUnlock()
	if fresh {
		return snapshot
	}

	loaded, err := s.repo.Snapshot(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("catalog snapshot load failed")
		s.mu.RLock()
		defer s.mu.RUnlock()
		if s.hasLoaded {
			return s.snapshot
		}
		return s.fallback
	}

	s.mu.Lock()
	s.snapshot = loaded
	s.loadedAt = time.Now()
	s.hasLoaded = true
	s.mu.Unlock()
	return loaded
}

// ListRecipes returns all recipes sorted by name.
func (s *CatalogServiceImpl) ListRecipes(ctx context.Context) ([]model.Recipe, error) {
	if s.repo == nil {
		return sortedRecipes(s.fallback), nil
	}
	recipes, err := s.repo.ListRecipes(ctx)
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// ListIngredients returns all ingredients sorted by name.
func (s *CatalogServiceImpl) ListIngredients(ctx context.Context) ([]model.Ingredient, error) {
	if s.repo == nil {
		return sortedIngredients(s.fallback), nil
	}
	ingredients, err := s.repo.ListIngredients(ctx)
	if err != nil {
		return nil, err
	}
	return ingredients, nil
}

// ReplaceOffers swaps an ingredient's pack offers and invalidates the
// snapshot so the next plan sees the new offers.
func (s *CatalogServiceImpl) ReplaceOffers(ctx context.Context, ingredientID string, offers []model.PackOffer) (*model.Ingredient, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	updated, err := s.repo.ReplaceOffers(ctx, ingredientID, offers)
	if err != nil {
		return nil, err
	}
	s.InvalidateSnapshot()
	return updated, nil
}

// InvalidateSnapshot forces a reload on the next Snapshot call.
func (s *CatalogServiceImpl) InvalidateSnapshot() {
	s.mu.Lock()
	s.hasLoaded = false
	s.mu.Unlock()
}

func sortedRecipes(catalog model.Catalog) []model.Recipe {
	out := make([]model.Recipe, 0, len(catalog.Recipes))
	for _, rec := range catalog.Recipes {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func sortedIngredients(catalog model.Catalog) []model.Ingredient {
	out := make([]model.Ingredient, 0, len(catalog.Ingredients))
	for _, ing := range catalog.Ingredients {
		out = append(out, ing)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
