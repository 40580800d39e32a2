package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/eventbar/order-engine/internal/domain/model"
)

// CatalogRepository loads recipes and ingredients and maintains pack
// offers. The engine itself only ever sees the assembled snapshot.
type CatalogRepository struct {
	ingredients *mongo.Collection
	recipes     *mongo.Collection
}

// NewCatalogRepository creates a catalog repository.
func NewCatalogRepository(db *MongoDB) *CatalogRepository {
	return &CatalogRepository{
		ingredients: db.Ingredients,
		recipes:     db.Recipes,
	}
}

// ListIngredients returns all catalog ingredients sorted by name.
func (r *CatalogRepository) ListIngredients(ctx context.Context) ([]model.Ingredient, error) {
	cursor, err := r.ingredients.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var out []model.Ingredient
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListRecipes returns all recipes sorted by name.
func (r *CatalogRepository) ListRecipes(ctx context.Context) ([]model.Recipe, error) {
	cursor, err := r.recipes.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var out []model.Recipe
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetIngredient returns one ingredient, nil when not found.
func (r *CatalogRepository) GetIngredient(ctx context.Context, id string) (*model.Ingredient, error) {
	var ing model.Ingredient
	err := r.ingredients.FindOne(ctx, bson.M{"_id": id}).Decode(&ing)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ing, nil
}

// ReplaceOffers swaps an ingredient's pack offer list. Returns the
// updated ingredient, nil when the ingredient does not exist.
func (r *CatalogRepository) ReplaceOffers(ctx context.Context, id string, offers []model.PackOffer) (*model.Ingredient, error) {
	var ing model.Ingredient
	err := r.ingredients.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"offers": offers}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&ing)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ing, nil
}

// Snapshot assembles the immutable catalog the engine computes against.
func (r *CatalogRepository) Snapshot(ctx context.Context) (model.Catalog, error) {
	ingredients, err := r.ListIngredients(ctx)
	if err != nil {
		return model.Catalog{}, err
	}
	recipes, err := r.ListRecipes(ctx)
	if err != nil {
		return model.Catalog{}, err
	}

	catalog := model.Catalog{
		Recipes:     make(map[string]model.Recipe, len(recipes)),
		Ingredients: make(map[string]model.Ingredient, len(ingredients)),
	}
	for _, rec := range recipes {
		catalog.Recipes[rec.ID] = rec
	}
	for _, ing := range ingredients {
		catalog.Ingredients[ing.ID] = ing
	}
	return catalog, nil
}
