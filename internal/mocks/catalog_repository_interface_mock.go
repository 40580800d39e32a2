// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/eventbar/order-engine/internal/domain/model"
)

type MockCatalogRepositoryInterface struct {
	mock.Mock
}

func (m *MockCatalogRepositoryInterface) ListIngredients(ctx context.Context) ([]model.Ingredient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Ingredient), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) ListRecipes(ctx context.Context) ([]model.Recipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Recipe), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) GetIngredient(ctx context.Context, id string) (*model.Ingredient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ingredient), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) ReplaceOffers(ctx context.Context, id string, offers []model.PackOffer) (*model.Ingredient, error) {
	args := m.Called(ctx, id, offers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ingredient), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) Snapshot(ctx context.Context) (model.Catalog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return model.Catalog{}, args.Error(1)
	}
	return args.Get(0).(model.Catalog), args.Error(1)
}
