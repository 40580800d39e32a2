//go:build !integration

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/eventbar/order-engine/internal/domain/model"
	"github.com/eventbar/order-engine/internal/mocks"
)

func TestCatalogService_Snapshot_WithoutRepository(t *testing.T) {
	catalog := NewCatalogService(nil)

	snapshot := catalog.Snapshot(context.Background())

	// Database-less mode serves the built-in demo catalog.
	assert.NotEmpty(t, snapshot.Recipes)
	assert.NotEmpty(t, snapshot.Ingredients)
}

func TestCatalogService_Snapshot_CachesWithinTTL(t *testing.T) {
	repo := new(mocks.MockCatalogRepositoryInterface)
	repo.On("Snapshot", mock.Anything).Return(orderTestCatalog(), nil).Once()

	catalog := NewCatalogService(repo, WithSnapshotTTL(time.Minute))

	first := catalog.Snapshot(context.Background())
	second := catalog.Snapshot(context.Background())

	assert.Equal(t, first, second)
	repo.AssertExpectations(t)
	repo.AssertNumberOfCalls(t, "Snapshot", 1)
}

func TestCatalogService_Snapshot_ServesLastGoodOnError(t *testing.T) {
	repo := new(mocks.MockCatalogRepositoryInterface)
	repo.On("Snapshot", mock.Anything).Return(orderTestCatalog(), nil).Once()
	repo.On("Snapshot", mock.Anything).Return(model.Catalog{}, errors.New("connection reset")).Once()

	catalog := NewCatalogService(repo, WithSnapshotTTL(time.Nanosecond))

	first := catalog.Snapshot(context.Background())
	time.Sleep(time.Millisecond)
	second := catalog.Snapshot(context.Background())

	assert.Equal(t, first, second, "stale snapshot should be served when reload fails")
	repo.AssertExpectations(t)
}

func TestCatalogService_Snapshot_FallbackBeforeFirstLoad(t *testing.T) {
	repo := new(mocks.MockCatalogRepositoryInterface)
	repo.On("Snapshot", mock.Anything).Return(model.Catalog{}, errors.New("no reachable servers"))

	fallback := orderTestCatalog()
	catalog := NewCatalogService(repo, WithFallbackCatalog(fallback))

	snapshot := catalog.Snapshot(context.Background())
	assert.Equal(t, fallback, snapshot)
}

func TestCatalogService_InvalidateSnapshot(t *testing.T) {
	repo := new(mocks.MockCatalogRepositoryInterface)
	repo.On("Snapshot", mock.Anything).Return(orderTestCatalog(), nil).Twice()

	catalog := NewCatalogService(repo, WithSnapshotTTL(time.Hour))

	catalog.Snapshot(context.Background())
	catalog.InvalidateSnapshot()
	catalog.Snapshot(context.Background())

	repo.AssertNumberOfCalls(t, "Snapshot", 2)
}

func TestCatalogService_ListRecipes(t *testing.T) {
	t.Run("without repository returns demo recipes sorted by name", func(t *testing.T) {
		catalog := NewCatalogService(nil, WithFallbackCatalog(orderTestCatalog()))

		recipes, err := catalog.ListRecipes(context.Background())
		require.NoError(t, err)
		require.Len(t, recipes, 2)
		assert.Equal(t, "Daiquiri", recipes[0].Name)
		assert.Equal(t, "Margarita", recipes[1].Name)
	})

	t.Run("with repository delegates", func(t *testing.T) {
		expected := []model.Recipe{{ID: "r1", Name: "Negroni"}}
		repo := new(mocks.MockCatalogRepositoryInterface)
		repo.On("ListRecipes", mock.Anything).Return(expected, nil)

		catalog := NewCatalogService(repo)
		recipes, err := catalog.ListRecipes(context.Background())

		require.NoError(t, err)
		assert.Equal(t, expected, recipes)
	})

	t.Run("repository error propagates", func(t *testing.T) {
		repo := new(mocks.MockCatalogRepositoryInterface)
		repo.On("ListRecipes", mock.Anything).Return(nil, errors.New("cursor error"))

		catalog := NewCatalogService(repo)
		recipes, err := catalog.ListRecipes(context.Background())

		assert.Error(t, err)
		assert.Nil(t, recipes)
	})
}

func TestCatalogService_ListIngredients(t *testing.T) {
	t.Run("without repository returns demo ingredients sorted by name", func(t *testing.T) {
		catalog := NewCatalogService(nil, WithFallbackCatalog(orderTestCatalog()))

		ingredients, err := catalog.ListIngredients(context.Background())
		require.NoError(t, err)
		require.Len(t, ingredients, 4)
		assert.Equal(t, "Coupe Glass", ingredients[0].Name)
		assert.Equal(t, "White Rum", ingredients[3].Name)
	})

	t.Run("with repository delegates", func(t *testing.T) {
		expected := []model.Ingredient{{ID: "i1", Name: "Campari"}}
		repo := new(mocks.MockCatalogRepositoryInterface)
		repo.On("ListIngredients", mock.Anything).Return(expected, nil)

		catalog := NewCatalogService(repo)
		ingredients, err := catalog.ListIngredients(context.Background())

		require.NoError(t, err)
		assert.Equal(t, expected, ingredients)
	})
}

func TestCatalogService_ReplaceOffers(t *testing.T) {
	t.Run("without repository is rejected", func(t *testing.T) {
		catalog := NewCatalogService(nil)

		updated, err := catalog.ReplaceOffers(context.Background(), "tequila", nil)
		assert.ErrorIs(t, err, ErrRepositoryNotConfigured)
		assert.Nil(t, updated)
	})

	t.Run("invalidates snapshot on success", func(t *testing.T) {
		offers := []model.PackOffer{{ID: "o1", Size: 700, Active: true}}
		ingredient := &model.Ingredient{ID: "tequila", Name: "Tequila", Offers: offers}

		repo := new(mocks.MockCatalogRepositoryInterface)
		repo.On("ReplaceOffers", mock.Anything, "tequila", offers).Return(ingredient, nil)
		repo.On("Snapshot", mock.Anything).Return(orderTestCatalog(), nil).Twice()

		catalog := NewCatalogService(repo, WithSnapshotTTL(time.Hour))
		catalog.Snapshot(context.Background())

		updated, err := catalog.ReplaceOffers(context.Background(), "tequila", offers)
		require.NoError(t, err)
		assert.Equal(t, ingredient, updated)

		// The next snapshot reloads.
		catalog.Snapshot(context.Background())
		repo.AssertNumberOfCalls(t, "Snapshot", 2)
	})
}
