// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/eventbar/order-engine/internal/domain/model"
)

// CatalogRepositoryInterface defines the interface for catalog repository operations.
type CatalogRepositoryInterface interface {
	ListIngredients(ctx context.Context) ([]model.Ingredient, error)
	ListRecipes(ctx context.Context) ([]model.Recipe, error)
	GetIngredient(ctx context.Context, id string) (*model.Ingredient, error)
	ReplaceOffers(ctx context.Context, id string, offers []model.PackOffer) (*model.Ingredient, error)
	Snapshot(ctx context.Context) (model.Catalog, error)
}

// EventsRepositoryInterface defines the interface for event booking repository operations.
type EventsRepositoryInterface interface {
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Event, error)
	GetBySlug(ctx context.Context, slug string) (*model.Event, error)
	Update(ctx context.Context, event *model.Event) (*model.Event, error)
	List(ctx context.Context, status string, limit int) ([]model.Event, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}

// UsersRepositoryInterface defines the interface for staff user repository operations.
type UsersRepositoryInterface interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) (*model.User, error)
}
