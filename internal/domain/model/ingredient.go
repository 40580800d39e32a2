// Package model defines the core domain entities for the order engine.
package model

import "strings"

// Category classifies an ingredient for aggregation and rounding policy.
type Category string

const (
	CategoryLiquor    Category = "liquor"
	CategoryMixer     Category = "mixer"
	CategoryJuice     Category = "juice"
	CategorySyrup     Category = "syrup"
	CategoryGarnish   Category = "garnish"
	CategoryIce       Category = "ice"
	CategoryGlassware Category = "glassware"
)

// categoryOrder fixes the display order of procurement plans.
var categoryOrder = map[Category]int{
	CategoryLiquor:    0,
	CategoryMixer:     1,
	CategoryJuice:     2,
	CategorySyrup:     3,
	CategoryGarnish:   4,
	CategoryIce:       5,
	CategoryGlassware: 6,
}

// DisplayRank returns the sort rank of the category for plan listings.
// Unknown categories sort last.
func (c Category) DisplayRank() int {
	if r, ok := categoryOrder[c]; ok {
		return r
	}
	return len(categoryOrder)
}

// Tier is the pricing tier selected for an event.
type Tier string

const (
	TierEconomy    Tier = "economy"
	TierBusiness   Tier = "business"
	TierFirstClass Tier = "first_class"
)

// Offer tags that map onto tiers; offers may also be untagged.
const (
	OfferTagBudget  = "budget"
	OfferTagPremium = "premium"
)

// NormalizeTier returns a valid tier, defaulting to economy.
func NormalizeTier(s string) Tier {
	switch Tier(strings.ToLower(strings.TrimSpace(s))) {
	case TierBusiness:
		return TierBusiness
	case TierFirstClass:
		return TierFirstClass
	default:
		return TierEconomy
	}
}

// Accepts reports whether an offer tag is eligible under this tier.
// Economy accepts budget and untagged offers, first class accepts
// premium; business is exact.
func (t Tier) Accepts(offerTag string) bool {
	tag := strings.ToLower(strings.TrimSpace(offerTag))
	switch t {
	case TierBusiness:
		return tag == string(TierBusiness)
	case TierFirstClass:
		return tag == string(TierFirstClass) || tag == OfferTagPremium
	default:
		return tag == "" || tag == string(TierEconomy) || tag == OfferTagBudget
	}
}

// PackOffer is a purchasable package option for an ingredient.
//
// @Description Purchasable pack option: size in the ingredient's unit, optional price and tier tag
type PackOffer struct {
	// ID identifies the offer within its ingredient.
	ID string `bson:"id" json:"id"`
	// Size is the pack size in the ingredient's unit. Must be positive.
	Size float64 `bson:"size" json:"size" example:"700"`
	// Price is the pack price, currency-agnostic. Nil means unpriced.
	Price *float64 `bson:"price,omitempty" json:"price,omitempty" example:"21.5"`
	// Reference is an optional purchase or search reference.
	Reference string `bson:"reference,omitempty" json:"reference,omitempty"`
	// TierTag restricts the offer to a pricing tier. Empty means untagged.
	TierTag string `bson:"tier,omitempty" json:"tier,omitempty" example:"economy"`
	// Active offers are the only ones considered by the planner.
	Active bool `bson:"active" json:"active"`
}

// Priced reports whether the offer carries usable price data.
func (o PackOffer) Priced() bool {
	return o.Price != nil && *o.Price >= 0
}

// Ingredient is a catalog entry referenced by recipe components.
type Ingredient struct {
	ID string `bson:"_id" json:"id"`
	// Name is the display name; aggregation lower-cases and trims it.
	Name     string   `bson:"name" json:"name"`
	Category Category `bson:"category" json:"category"`
	// Unit is the canonical unit. Stored free-text; normalized on read.
	Unit string `bson:"unit,omitempty" json:"unit"`
	// PackSize is an optional reference pack size in the ingredient's
	// own unit. Zero means unset; liquor falls back to 700 ml.
	PackSize float64     `bson:"pack_size,omitempty" json:"pack_size,omitempty"`
	Offers   []PackOffer `bson:"offers,omitempty" json:"offers,omitempty"`
}

// DefaultUnit is assumed when an ingredient carries no unit.
const DefaultUnit = "ml"

// NormalizeUnit trims and lower-cases a unit string; empty becomes "ml".
func NormalizeUnit(unit string) string {
	u := strings.ToLower(strings.TrimSpace(unit))
	if u == "" {
		return DefaultUnit
	}
	return u
}

// NormalizedUnit returns the ingredient's canonical unit.
func (i Ingredient) NormalizedUnit() string {
	return NormalizeUnit(i.Unit)
}

// ActiveOffers returns only the offers the planner may consider.
func (i Ingredient) ActiveOffers() []PackOffer {
	out := make([]PackOffer, 0, len(i.Offers))
	for _, o := range i.Offers {
		if o.Active && o.Size > 0 {
			out = append(out, o)
		}
	}
	return out
}
