package model

import (
	"fmt"
	"strings"
)

// PackLine is a single (pack size, count) entry of a procurement plan.
//
// @Description Pack size and count used to cover the rounded total
// @Example {"size": 700, "count": 3}
type PackLine struct {
	// Size is the pack size in the ingredient's unit
	Size float64 `json:"size" example:"700"`
	// Count is the number of packs of this size
	Count int `json:"count" example:"3"`
}

// Capacity returns the quantity this line covers (size * count).
func (p PackLine) Capacity() float64 {
	return p.Size * float64(p.Count)
}

// ProcurementPlan is the final purchase recommendation for one
// aggregated requirement: the buffered and rounded quantity plus the
// pack combination that covers it.
//
// @Description Buffered, rounded, pack-resolved purchase recommendation for one ingredient
type ProcurementPlan struct {
	Key      string   `json:"key"`
	Name     string   `json:"name" example:"White Rum"`
	Category Category `json:"category" example:"liquor"`
	Unit     string   `json:"unit" example:"ml"`
	// RawTotal is the aggregated quantity before buffering
	RawTotal float64 `json:"raw_total" example:"1800"`
	// BufferedTotal is RawTotal with the safety margin applied
	BufferedTotal float64 `json:"buffered_total" example:"1980"`
	// RoundedTotal is BufferedTotal after the rounding policy
	RoundedTotal float64 `json:"rounded_total" example:"1980"`
	// Packs is the pack combination covering RoundedTotal
	Packs []PackLine `json:"packs"`
	// TotalPrice is set only when every selected offer carried a price
	TotalPrice *float64 `json:"total_price,omitempty" example:"64.5"`
}

// TotalCapacity is the summed capacity of all pack lines.
func (p ProcurementPlan) TotalCapacity() float64 {
	var sum float64
	for _, line := range p.Packs {
		sum += line.Capacity()
	}
	return sum
}

// PackCount is the total number of packs across all lines.
func (p ProcurementPlan) PackCount() int {
	count := 0
	for _, line := range p.Packs {
		count += line.Count
	}
	return count
}

// Description renders the purchasable quantity for display and email,
// e.g. "3 x 700 ml" or "2 x 700 ml + 1 x 350 ml".
func (p ProcurementPlan) Description() string {
	if len(p.Packs) == 0 {
		return fmt.Sprintf("%s %s", trimFloat(p.RoundedTotal), p.Unit)
	}
	parts := make([]string, 0, len(p.Packs))
	for _, line := range p.Packs {
		parts = append(parts, fmt.Sprintf("%d x %s %s", line.Count, trimFloat(line.Size), p.Unit))
	}
	return strings.Join(parts, " + ")
}

// EmptyPlan returns a zero plan for a requirement with nothing to buy.
func EmptyPlan(req Requirement) ProcurementPlan {
	return ProcurementPlan{
		Key:      req.Key,
		Name:     req.Name,
		Category: req.Category,
		Unit:     req.Unit,
		Packs:    []PackLine{},
	}
}

// trimFloat formats a float without trailing zeros ("700", "0.5").
func trimFloat(f float64) string {
	s := fmt.Sprintf("%.2f", f)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
