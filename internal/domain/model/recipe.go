package model

// Component is one line of a recipe: an ingredient and the amount
// needed per serving, in the ingredient's unit.
type Component struct {
	IngredientID string  `bson:"ingredient_id" json:"ingredient_id"`
	Amount       float64 `bson:"amount" json:"amount"`
}

// Recipe is a cocktail with its ordered component list.
type Recipe struct {
	ID         string      `bson:"_id" json:"id"`
	Name       string      `bson:"name" json:"name"`
	Components []Component `bson:"components" json:"components"`
}

// Catalog is the immutable snapshot of recipes and ingredients the
// engine computes against. It is assembled by the repository layer;
// the engine never loads data itself.
type Catalog struct {
	Recipes     map[string]Recipe
	Ingredients map[string]Ingredient
}

// RecipeNames returns the id -> display name index used by the
// reconciler to label delta lines.
func (c Catalog) RecipeNames() map[string]string {
	names := make(map[string]string, len(c.Recipes))
	for id, r := range c.Recipes {
		names[id] = r.Name
	}
	return names
}
