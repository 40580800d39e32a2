// Package service contains the order computation engine and the
// business services around it.
package service

import (
	"math"
	"sort"

	"github.com/eventbar/order-engine/internal/domain/model"
)

// RequirementAggregator merges flattened line items into one total per
// distinct ingredient. It is a pure function over its input: no I/O,
// no shared state, safe for concurrent use.
type RequirementAggregator interface {
	Aggregate(items []model.LineItem) []model.Requirement
}

// AggregatorService implements RequirementAggregator.
type AggregatorService struct{}

// NewAggregatorService creates a new aggregator.
func NewAggregatorService() *AggregatorService {
	return &AggregatorService{}
}

// Aggregate sums contributions per normalization key. Items with no
// ingredient identity, non-positive servings, or non-finite amounts
// contribute nothing and never produce an error. The first contributor
// of a key fixes its display name, category, and unit; the first
// non-zero pack-size hint sticks; pack offers merge deduplicated by
// offer ID. Output order is deterministic (sorted by key) but callers
// own display ordering.
func (s *AggregatorService) Aggregate(items []model.LineItem) []model.Requirement {
	byKey := make(map[string]*model.Requirement)
	seenOffers := make(map[string]map[string]bool)

	for _, item := range items {
		if item.IngredientID == "" || item.Servings <= 0 {
			continue
		}
		contribution := item.Contribution()
		if math.IsNaN(contribution) || math.IsInf(contribution, 0) {
			continue
		}

		key := model.RequirementKey(item.Category, item.Name, item.Unit)
		req, ok := byKey[key]
		if !ok {
			req = &model.Requirement{
				Key:      key,
				Name:     item.Name,
				Category: item.Category,
				Unit:     model.NormalizeUnit(item.Unit),
			}
			byKey[key] = req
			seenOffers[key] = make(map[string]bool)
		}

		req.RawTotal += contribution

		if req.PackSizeHint == 0 && item.PackSizeHint > 0 {
			req.PackSizeHint = item.PackSizeHint
		}
		for _, offer := range item.Offers {
			if offer.ID != "" && seenOffers[key][offer.ID] {
				continue
			}
			if offer.ID != "" {
				seenOffers[key][offer.ID] = true
			}
			req.Offers = append(req.Offers, offer)
		}
	}

	out := make([]model.Requirement, 0, len(byKey))
	for _, req := range byKey {
		out = append(out, *req)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// FlattenSelection expands a selection against a catalog snapshot into
// the line items the aggregator consumes. Recipes missing from the
// catalog, components referencing unknown ingredients, and entries with
// non-positive servings are dropped silently: the engine must always
// produce a plan from whatever catalog data exists.
func FlattenSelection(catalog model.Catalog, selection model.Selection) []model.LineItem {
	recipeIDs := make([]string, 0, len(selection))
	for id := range selection {
		recipeIDs = append(recipeIDs, id)
	}
	sort.Strings(recipeIDs)

	var items []model.LineItem
	for _, recipeID := range recipeIDs {
		servings := selection[recipeID]
		if servings <= 0 {
			continue
		}
		recipe, ok := catalog.Recipes[recipeID]
		if !ok {
			continue
		}
		for _, component := range recipe.Components {
			ingredient, ok := catalog.Ingredients[component.IngredientID]
			if !ok || ingredient.ID == "" {
				continue
			}
			items = append(items, model.LineItem{
				IngredientID:     ingredient.ID,
				Name:             ingredient.Name,
				Category:         ingredient.Category,
				Unit:             ingredient.Unit,
				AmountPerServing: component.Amount,
				Servings:         servings,
				PackSizeHint:     ingredient.PackSize,
				Offers:           ingredient.ActiveOffers(),
			})
		}
	}
	return items
}
