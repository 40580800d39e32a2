package service

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/eventbar/order-engine/internal/domain/model"
	"github.com/eventbar/order-engine/internal/service/cache"
)

// OrderComputer turns a catalog snapshot, a selection, and a pricing
// tier into the full procurement plan. Computation is deterministic, so
// results may be cached; the cache must be invalidated when the catalog
// changes.
type OrderComputer interface {
	ComputePlan(catalog model.Catalog, selection model.Selection, tier model.Tier) []model.ProcurementPlan
	// InvalidateCache clears cached plans (after catalog updates).
	InvalidateCache()
}

// OrderOption configures an OrderService.
type OrderOption func(*OrderService)

// WithPlanner replaces the default planner.
func WithPlanner(p ProcurementPlanner) OrderOption {
	return func(s *OrderService) { s.planner = p }
}

// WithPlanCache enables plan result caching.
func WithPlanCache(capacity int, ttl time.Duration) OrderOption {
	return func(s *OrderService) {
		if capacity > 0 {
			s.cache = newTTLCache(capacity, ttl)
		}
	}
}

// WithPlanCacheInterface injects a custom cache implementation.
func WithPlanCacheInterface(c cache.Cache) OrderOption {
	return func(s *OrderService) { s.cache = c }
}

// OrderService implements OrderComputer by composing the aggregator and
// the planner.
type OrderService struct {
	aggregator RequirementAggregator
	planner    ProcurementPlanner
	cache      cache.Cache
}

// NewOrderService creates an order computer with the default aggregator
// and planner.
func NewOrderService(opts ...OrderOption) *OrderService {
	s := &OrderService{
		aggregator: NewAggregatorService(),
		planner:    NewPlannerService(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ComputePlan flattens, aggregates, and plans. The returned slice is
// ordered for display: category rank first, then name. An empty or
// all-zero selection yields an empty slice, never an error.
func (s *OrderService) ComputePlan(catalog model.Catalog, selection model.Selection, tier model.Tier) []model.ProcurementPlan {
	if len(selection) == 0 {
		return []model.ProcurementPlan{}
	}

	key := planCacheKey(selection, tier)
	if s.cache != nil {
		if plans, ok := s.cache.Get(key); ok {
			return plans
		}
	}

	items := FlattenSelection(catalog, selection)
	requirements := s.aggregator.Aggregate(items)

	plans := make([]model.ProcurementPlan, 0, len(requirements))
	for _, req := range requirements {
		plans = append(plans, s.planner.Plan(req, tier))
	}
	sort.Slice(plans, func(i, j int) bool {
		ri, rj := plans[i].Category.DisplayRank(), plans[j].Category.DisplayRank()
		if ri != rj {
			return ri < rj
		}
		return plans[i].Name < plans[j].Name
	})

	if s.cache != nil {
		s.cache.Set(key, plans)
	}
	return plans
}

// InvalidateCache clears the plan cache.
func (s *OrderService) InvalidateCache() {
	if s.cache != nil {
		s.cache.Clear()
	}
}

// planCacheKey canonicalizes a selection and tier into a stable key.
func planCacheKey(selection model.Selection, tier model.Tier) string {
	ids := make([]string, 0, len(selection))
	for id, servings := range selection {
		if servings > 0 {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	var b strings.Builder
	b.WriteString(string(tier))
	for _, id := range ids {
		b.WriteByte('|')
		b.WriteString(id)
		b.WriteByte('=')
		b.WriteString(strconv.Itoa(selection[id]))
	}
	return b.String()
}
