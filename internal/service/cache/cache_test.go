//go:build !integration

package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eventbar/order-engine/internal/domain/model"
)

// TestCacheInterface tests that the Cache interface is properly defined.
// This is a compile-time test to ensure the interface contract is correct.
func TestCacheInterface(t *testing.T) {
	var c Cache = &mockCache{}

	result, found := c.Get("margarita=40|tier=economy")
	assert.False(t, found)
	assert.Nil(t, result)

	c.Set("margarita=40|tier=economy", []model.ProcurementPlan{{Name: "Tequila"}})
	c.Invalidate("margarita=40|tier=economy")
	c.Clear()
	c.Stop()
}

// TestCacheWithMetricsInterface tests that the CacheWithMetrics interface is properly defined.
func TestCacheWithMetricsInterface(t *testing.T) {
	var c CacheWithMetrics = &mockCacheWithMetrics{}

	result, found := c.Get("daiquiri=12|tier=")
	assert.False(t, found)
	assert.Nil(t, result)

	c.Set("daiquiri=12|tier=", nil)

	m := c.Metrics()
	assert.Equal(t, Metrics{}, m)

	c.Stop()
}

// TestMetricsStructure tests the Metrics struct.
func TestMetricsStructure(t *testing.T) {
	m := Metrics{
		Hits:      10,
		Misses:    5,
		Evictions: 2,
		Size:      8,
		Capacity:  10,
	}

	assert.Equal(t, int64(10), m.Hits)
	assert.Equal(t, int64(5), m.Misses)
	assert.Equal(t, int64(2), m.Evictions)
	assert.Equal(t, 8, m.Size)
	assert.Equal(t, 10, m.Capacity)
}

// mockCache is a minimal implementation of Cache for testing.
type mockCache struct{}

func (m *mockCache) Get(key string) ([]model.ProcurementPlan, bool) {
	return nil, false
}

func (m *mockCache) Set(key string, plans []model.ProcurementPlan) {}

func (m *mockCache) Invalidate(key string) {}

func (m *mockCache) Clear() {}

func (m *mockCache) Stop() {}

// mockCacheWithMetrics is a minimal implementation of CacheWithMetrics for testing.
type mockCacheWithMetrics struct {
	mockCache
}

func (m *mockCacheWithMetrics) Metrics() Metrics {
	return Metrics{}
}
