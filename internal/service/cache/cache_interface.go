package cache

import "github.com/eventbar/order-engine/internal/domain/model"

// Cache defines the interface for plan result caching. Keys are the
// canonical selection+tier strings produced by the order computer.
type Cache interface {
	Get(key string) ([]model.ProcurementPlan, bool)
	Set(key string, plans []model.ProcurementPlan)
	Invalidate(key string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
