package service

import "github.com/eventbar/order-engine/internal/domain/model"

func price(v float64) *float64 { return &v }

// DemoCatalog returns the built-in catalog used when the service runs
// without a database, and as the fallback while the database is down.
// Amounts are per serving in each ingredient's unit.
func DemoCatalog() model.Catalog {
	ingredients := []model.Ingredient{
		{
			ID: "tequila", Name: "Tequila Blanco", Category: model.CategoryLiquor, Unit: "ml", PackSize: 700,
			Offers: []model.PackOffer{
				{ID: "tequila-700", Size: 700, Price: price(18.90), TierTag: "economy", Active: true},
				{ID: "tequila-1000", Size: 1000, Price: price(24.50), TierTag: "business", Active: true},
				{ID: "tequila-anejo-700", Size: 700, Price: price(42.00), TierTag: "premium", Active: true},
			},
		},
		{
			ID: "white-rum", Name: "White Rum", Category: model.CategoryLiquor, Unit: "ml", PackSize: 700,
			Offers: []model.PackOffer{
				{ID: "rum-700", Size: 700, Price: price(14.90), Active: true},
				{ID: "rum-1000", Size: 1000, Price: price(19.90), TierTag: "business", Active: true},
				{ID: "rum-aged-700", Size: 700, Price: price(36.00), TierTag: "first_class", Active: true},
			},
		},
		{
			ID: "vodka", Name: "Vodka", Category: model.CategoryLiquor, Unit: "ml", PackSize: 700,
			Offers: []model.PackOffer{
				{ID: "vodka-700", Size: 700, Price: price(13.50), TierTag: "budget", Active: true},
				{ID: "vodka-1000", Size: 1000, Price: price(17.90), TierTag: "business", Active: true},
			},
		},
		{
			ID: "triple-sec", Name: "Triple Sec", Category: model.CategoryLiquor, Unit: "ml", PackSize: 700,
			Offers: []model.PackOffer{
				{ID: "triplesec-700", Size: 700, Price: price(11.90), Active: true},
			},
		},
		{
			ID: "lime-juice", Name: "Lime Juice", Category: model.CategoryJuice, Unit: "ml",
			Offers: []model.PackOffer{
				{ID: "lime-500", Size: 500, Price: price(3.20), Active: true},
				{ID: "lime-1000", Size: 1000, Price: price(5.50), Active: true},
			},
		},
		{
			ID: "cranberry-juice", Name: "Cranberry Juice", Category: model.CategoryJuice, Unit: "ml",
			Offers: []model.PackOffer{
				{ID: "cranberry-1000", Size: 1000, Price: price(2.80), Active: true},
			},
		},
		{
			ID: "soda-water", Name: "Soda Water", Category: model.CategoryMixer, Unit: "ml",
			Offers: []model.PackOffer{
				{ID: "soda-1000", Size: 1000, Price: price(1.20), Active: true},
				{ID: "soda-1500", Size: 1500, Price: price(1.60), Active: true},
			},
		},
		{
			ID: "simple-syrup", Name: "Simple Syrup", Category: model.CategorySyrup, Unit: "ml",
			Offers: []model.PackOffer{
				{ID: "syrup-700", Size: 700, Price: price(6.40), Active: true},
			},
		},
		{
			ID: "mint", Name: "Fresh Mint", Category: model.CategoryGarnish, Unit: "g",
			Offers: []model.PackOffer{
				{ID: "mint-30", Size: 30, Price: price(1.90), Active: true},
			},
		},
		{
			ID: "lime-wedge", Name: "Lime Wedges", Category: model.CategoryGarnish, Unit: "pcs",
			Offers: []model.PackOffer{
				{ID: "limes-10", Size: 10, Price: price(2.50), Active: true},
			},
		},
		{
			ID: "ice-cubes", Name: "Ice Cubes", Category: model.CategoryIce, Unit: "g",
			Offers: []model.PackOffer{
				{ID: "ice-2000", Size: 2000, Price: price(2.00), Active: true},
			},
		},
		{
			ID: "coupe-glass", Name: "Coupe Glasses", Category: model.CategoryGlassware, Unit: "pcs",
			Offers: []model.PackOffer{
				{ID: "coupe-12", Size: 12, Price: price(18.00), Active: true},
			},
		},
		{
			ID: "highball-glass", Name: "Highball Glasses", Category: model.CategoryGlassware, Unit: "pcs",
			Offers: []model.PackOffer{
				{ID: "highball-12", Size: 12, Price: price(15.00), Active: true},
			},
		},
	}

	recipes := []model.Recipe{
		{
			ID: "margarita", Name: "Margarita",
			Components: []model.Component{
				{IngredientID: "tequila", Amount: 50},
				{IngredientID: "triple-sec", Amount: 20},
				{IngredientID: "lime-juice", Amount: 25},
				{IngredientID: "ice-cubes", Amount: 100},
				{IngredientID: "coupe-glass", Amount: 1},
				{IngredientID: "lime-wedge", Amount: 1},
			},
		},
		{
			ID: "daiquiri", Name: "Daiquiri",
			Components: []model.Component{
				{IngredientID: "white-rum", Amount: 60},
				{IngredientID: "lime-juice", Amount: 25},
				{IngredientID: "simple-syrup", Amount: 15},
				{IngredientID: "ice-cubes", Amount: 100},
				{IngredientID: "coupe-glass", Amount: 1},
			},
		},
		{
			ID: "mojito", Name: "Mojito",
			Components: []model.Component{
				{IngredientID: "white-rum", Amount: 50},
				{IngredientID: "lime-juice", Amount: 25},
				{IngredientID: "simple-syrup", Amount: 15},
				{IngredientID: "soda-water", Amount: 90},
				{IngredientID: "mint", Amount: 4},
				{IngredientID: "ice-cubes", Amount: 150},
				{IngredientID: "highball-glass", Amount: 1},
			},
		},
		{
			ID: "cosmopolitan", Name: "Cosmopolitan",
			Components: []model.Component{
				{IngredientID: "vodka", Amount: 40},
				{IngredientID: "triple-sec", Amount: 15},
				{IngredientID: "cranberry-juice", Amount: 30},
				{IngredientID: "lime-juice", Amount: 15},
				{IngredientID: "ice-cubes", Amount: 100},
				{IngredientID: "coupe-glass", Amount: 1},
			},
		},
	}

	catalog := model.Catalog{
		Recipes:     make(map[string]model.Recipe, len(recipes)),
		Ingredients: make(map[string]model.Ingredient, len(ingredients)),
	}
	for _, r := range recipes {
		catalog.Recipes[r.ID] = r
	}
	for _, i := range ingredients {
		catalog.Ingredients[i.ID] = i
	}
	return catalog
}
