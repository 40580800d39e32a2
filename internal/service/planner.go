package service

import (
	"math"
	"sort"

	"github.com/eventbar/order-engine/internal/domain/model"
)

// PlannerConfig holds the buffer and rounding constants. They are
// explicit configuration rather than literals so the rounding policy
// has a single source of truth.
type PlannerConfig struct {
	// BufferRate is the safety margin applied to raw totals (0.10 = 10%).
	BufferRate float64
	// GlasswareIncrement rounds glassware up to the next multiple.
	GlasswareIncrement int
	// GlasswareMinimum is the floor applied after glassware rounding.
	GlasswareMinimum int
	// GarnishGramIncrement rounds gram-measured garnishes up to the
	// next multiple.
	GarnishGramIncrement int
	// DefaultLiquorPackSize is assumed for liquor with no recorded
	// pack size, in ml.
	DefaultLiquorPackSize float64
	// MaxSearchNodes bounds the pack combination search. The offer set
	// per ingredient is single-digit in practice; the bound is a guard,
	// not a tuning knob.
	MaxSearchNodes int
}

// DefaultPlannerConfig returns the standard buffering and rounding
// policy.
func DefaultPlannerConfig() PlannerConfig {
	return PlannerConfig{
		BufferRate:            0.10,
		GlasswareIncrement:    12,
		GlasswareMinimum:      24,
		GarnishGramIncrement:  15,
		DefaultLiquorPackSize: 700,
		MaxSearchNodes:        200000,
	}
}

// pieceUnits are counted whole regardless of category.
var pieceUnits = map[string]bool{
	"pc":     true,
	"pcs":    true,
	"piece":  true,
	"pieces": true,
}

// gramUnits trigger the garnish increment rule.
var gramUnits = map[string]bool{
	"g":     true,
	"gram":  true,
	"grams": true,
}

// ProcurementPlanner resolves one aggregated requirement into a
// buffered, rounded, pack-resolved purchase recommendation. Like the
// aggregator it is pure and total: malformed pricing data falls through
// to the later preference levels, and a requirement with no usable pack
// data still resolves to some purchasable quantity.
type ProcurementPlanner interface {
	Plan(req model.Requirement, tier model.Tier) model.ProcurementPlan
}

// PlannerOption configures a PlannerService.
type PlannerOption func(*PlannerService)

// WithPlannerConfig replaces the whole planner configuration.
func WithPlannerConfig(cfg PlannerConfig) PlannerOption {
	return func(s *PlannerService) {
		s.cfg = normalizePlannerConfig(cfg)
	}
}

// WithBufferRate overrides the safety margin.
func WithBufferRate(rate float64) PlannerOption {
	return func(s *PlannerService) {
		if rate >= 0 {
			s.cfg.BufferRate = rate
		}
	}
}

// PlannerService implements ProcurementPlanner.
type PlannerService struct {
	cfg PlannerConfig
}

// NewPlannerService creates a planner with the default policy, then
// applies options.
func NewPlannerService(opts ...PlannerOption) *PlannerService {
	s := &PlannerService{cfg: DefaultPlannerConfig()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// normalizePlannerConfig fills zero values with defaults so a partially
// populated config cannot disable rounding.
func normalizePlannerConfig(cfg PlannerConfig) PlannerConfig {
	def := DefaultPlannerConfig()
	if cfg.BufferRate <= 0 {
		// A zero buffer here means "unset"; an explicit 0% margin is
		// still expressible through WithBufferRate.
		cfg.BufferRate = def.BufferRate
	}
	if cfg.GlasswareIncrement <= 0 {
		cfg.GlasswareIncrement = def.GlasswareIncrement
	}
	if cfg.GlasswareMinimum <= 0 {
		cfg.GlasswareMinimum = def.GlasswareMinimum
	}
	if cfg.GarnishGramIncrement <= 0 {
		cfg.GarnishGramIncrement = def.GarnishGramIncrement
	}
	if cfg.DefaultLiquorPackSize <= 0 {
		cfg.DefaultLiquorPackSize = def.DefaultLiquorPackSize
	}
	if cfg.MaxSearchNodes <= 0 {
		cfg.MaxSearchNodes = def.MaxSearchNodes
	}
	return cfg
}

// Plan buffers, rounds, and pack-resolves one requirement.
func (s *PlannerService) Plan(req model.Requirement, tier model.Tier) model.ProcurementPlan {
	if req.RawTotal <= 0 || math.IsNaN(req.RawTotal) || math.IsInf(req.RawTotal, 0) {
		return model.EmptyPlan(req)
	}

	plan := model.EmptyPlan(req)
	plan.RawTotal = req.RawTotal
	plan.BufferedTotal = req.RawTotal * (1 + s.cfg.BufferRate)
	plan.RoundedTotal = s.round(req.Category, req.Unit, plan.BufferedTotal)

	eligible := s.eligibleOffers(req.Offers, tier)
	if len(eligible) == 0 {
		plan.Packs = s.referencePackPlan(req, plan.RoundedTotal)
		return plan
	}

	packs, price, priced := s.selectCombination(eligible, plan.RoundedTotal)
	plan.Packs = packs
	if priced {
		plan.TotalPrice = &price
	}
	return plan
}

// round applies the (category, unit) rounding policy to the buffered
// total. Buffering always happens before rounding.
func (s *PlannerService) round(category model.Category, unit string, buffered float64) float64 {
	u := model.NormalizeUnit(unit)

	switch {
	case category == model.CategoryGlassware:
		rounded := roundUpToMultiple(buffered, float64(s.cfg.GlasswareIncrement))
		minimum := float64(s.cfg.GlasswareMinimum)
		if rounded < minimum {
			rounded = minimum
		}
		return rounded
	case pieceUnits[u]:
		return ceilTolerant(buffered)
	case category == model.CategoryGarnish && gramUnits[u]:
		return roundUpToMultiple(buffered, float64(s.cfg.GarnishGramIncrement))
	default:
		// Liquor stays in whole ml; its real rounding is the bottle
		// count in pack resolution.
		return ceilTolerant(buffered)
	}
}

// eligibleOffers filters to active offers matching the tier.
func (s *PlannerService) eligibleOffers(offers []model.PackOffer, tier model.Tier) []model.PackOffer {
	out := make([]model.PackOffer, 0, len(offers))
	for _, o := range offers {
		if o.Active && o.Size > 0 && tier.Accepts(o.TierTag) {
			out = append(out, o)
		}
	}
	return out
}

// referencePackPlan is the single-pack-size fallback: the recorded
// hint, the liquor default, or pack size 1 as the last resort.
func (s *PlannerService) referencePackPlan(req model.Requirement, roundedTotal float64) []model.PackLine {
	if roundedTotal <= 0 {
		return []model.PackLine{}
	}
	size := req.PackSizeHint
	if size <= 0 && req.Category == model.CategoryLiquor {
		size = s.cfg.DefaultLiquorPackSize
	}
	if size <= 0 {
		size = 1
	}
	count := int(math.Ceil(roundedTotal / size))
	return []model.PackLine{{Size: size, Count: count}}
}

// offerCandidate is one combination under evaluation.
type offerCandidate struct {
	counts   []int
	capacity float64
	price    float64
	priced   bool
	distinct int
}

// selectCombination searches the offer count space for the combination
// covering target with the best (price, overage, distinct sizes,
// larger-first) preference. Offers are deduplicated by size keeping the
// cheaper, then sorted by size descending so the level-4 tie-break is a
// lexicographic count comparison.
func (s *PlannerService) selectCombination(offers []model.PackOffer, target float64) ([]model.PackLine, float64, bool) {
	if target <= 0 {
		return []model.PackLine{}, 0, false
	}

	sorted := dedupeBySize(offers)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Size > sorted[j].Size })

	var best *offerCandidate
	counts := make([]int, len(sorted))
	nodes := 0

	var visit func(idx int, capacity, price float64, priced bool)
	visit = func(idx int, capacity, price float64, priced bool) {
		if nodes >= s.cfg.MaxSearchNodes {
			return
		}
		nodes++

		if capacity >= target {
			candidate := newCandidate(counts, capacity, price, priced)
			if best == nil || candidate.betterThan(best, target) {
				c := candidate
				best = &c
			}
			// Adding more packs can only raise price and overage.
			return
		}
		if idx == len(sorted) {
			return
		}

		offer := sorted[idx]
		maxCount := int(math.Ceil((target - capacity) / offer.Size))
		for n := maxCount; n >= 0; n-- {
			counts[idx] = n
			addedPrice := 0.0
			offerPriced := offer.Priced()
			if offerPriced {
				addedPrice = *offer.Price * float64(n)
			}
			childPriced := priced && (n == 0 || offerPriced)
			visit(idx+1, capacity+offer.Size*float64(n), price+addedPrice, childPriced)
		}
		counts[idx] = 0
	}
	visit(0, 0, 0, true)

	if best == nil {
		// Only reachable if the node budget was exhausted before any
		// covering combination; fall back to the largest pack alone.
		size := sorted[0].Size
		count := int(math.Ceil(target / size))
		priced := sorted[0].Priced()
		price := 0.0
		if priced {
			price = *sorted[0].Price * float64(count)
		}
		return []model.PackLine{{Size: size, Count: count}}, price, priced
	}

	lines := make([]model.PackLine, 0, len(sorted))
	for i, n := range best.counts {
		if n > 0 {
			lines = append(lines, model.PackLine{Size: sorted[i].Size, Count: n})
		}
	}
	return lines, best.price, best.priced
}

func newCandidate(counts []int, capacity, price float64, priced bool) offerCandidate {
	c := offerCandidate{
		counts:   append([]int(nil), counts...),
		capacity: capacity,
		price:    price,
		priced:   priced,
	}
	for _, n := range counts {
		if n > 0 {
			c.distinct++
		}
	}
	return c
}

// betterThan applies the four-level preference order. Price only
// decides when both combinations are fully priced; absent price data is
// equally preferred and falls through to overage.
func (c offerCandidate) betterThan(other *offerCandidate, target float64) bool {
	const eps = 1e-9

	if c.priced && other.priced {
		if diff := c.price - other.price; diff < -eps {
			return true
		} else if diff > eps {
			return false
		}
	}

	overageA := c.capacity - target
	overageB := other.capacity - target
	if diff := overageA - overageB; diff < -eps {
		return true
	} else if diff > eps {
		return false
	}

	if c.distinct != other.distinct {
		return c.distinct < other.distinct
	}

	// Counts are aligned on sizes sorted descending: more of a larger
	// pack first wins.
	for i := range c.counts {
		if c.counts[i] != other.counts[i] {
			return c.counts[i] > other.counts[i]
		}
	}
	return false
}

// dedupeBySize keeps one offer per pack size, preferring priced and
// cheaper offers. Identical sizes with identical prices are
// interchangeable for planning purposes.
func dedupeBySize(offers []model.PackOffer) []model.PackOffer {
	bySize := make(map[float64]model.PackOffer, len(offers))
	for _, o := range offers {
		existing, ok := bySize[o.Size]
		if !ok {
			bySize[o.Size] = o
			continue
		}
		switch {
		case !existing.Priced() && o.Priced():
			bySize[o.Size] = o
		case existing.Priced() && o.Priced() && *o.Price < *existing.Price:
			bySize[o.Size] = o
		}
	}
	out := make([]model.PackOffer, 0, len(bySize))
	for _, o := range bySize {
		out = append(out, o)
	}
	return out
}

// roundEps absorbs float noise so buffering a whole number does not
// round an extra unit (1800 * 1.1 is 1980.0000000000002 in float64).
const roundEps = 1e-9

// ceilTolerant rounds value up to the next whole number within roundEps.
func ceilTolerant(value float64) float64 {
	return math.Ceil(value - roundEps)
}

// roundUpToMultiple rounds value up to the next multiple of step.
func roundUpToMultiple(value, step float64) float64 {
	if step <= 0 {
		return ceilTolerant(value)
	}
	return math.Ceil(value/step-roundEps) * step
}
