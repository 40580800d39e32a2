package model

import "strings"

// LineItem is one flattened contribution to the shopping list: a recipe
// component multiplied out by the servings of its selection entry.
// PackSizeHint and Offers carry the ingredient's procurement metadata
// through aggregation.
type LineItem struct {
	IngredientID     string
	Name             string
	Category         Category
	Unit             string
	AmountPerServing float64
	Servings         int
	PackSizeHint     float64
	Offers           []PackOffer
}

// Contribution is the quantity this line adds to its requirement.
func (l LineItem) Contribution() float64 {
	if l.Servings <= 0 {
		return 0
	}
	return l.AmountPerServing * float64(l.Servings)
}

// RequirementKey builds the normalization key that merges duplicate
// catalog entries: category, lower-cased trimmed name, normalized unit.
// Two ingredients with the same name and unit but different categories
// stay distinct on purpose.
func RequirementKey(category Category, name, unit string) string {
	return string(category) + ":" + strings.ToLower(strings.TrimSpace(name)) + ":" + NormalizeUnit(unit)
}

// Requirement is the aggregated raw quantity of one distinct ingredient
// across every selected recipe, before buffering and rounding.
type Requirement struct {
	Key      string
	Name     string
	Category Category
	Unit     string
	RawTotal float64
	// PackSizeHint is the reference pack size observed among the
	// contributors, zero when none supplied one.
	PackSizeHint float64
	Offers       []PackOffer
}
