//go:build !integration

package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/eventbar/order-engine/config"
	"github.com/eventbar/order-engine/internal/domain/model"
	"github.com/eventbar/order-engine/internal/service"
)

func TestInitializeServices(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Config
		validate func(*testing.T, *ServiceComponents)
	}{
		{
			name: "creates services with default config",
			cfg:  config.Config{},
			validate: func(t *testing.T, components *ServiceComponents) {
				assert.NotNil(t, components)
				assert.NotNil(t, components.Computer)
				assert.NotNil(t, components.Reconciler)
			},
		},
		{
			name: "creates services with plan cache enabled",
			cfg: config.Config{
				Cache: config.CacheConfig{
					Size: 1000,
					TTL:  5 * time.Minute,
				},
			},
			validate: func(t *testing.T, components *ServiceComponents) {
				assert.NotNil(t, components)
				assert.NotNil(t, components.Computer)
			},
		},
		{
			name: "creates services with custom planning policy",
			cfg: config.Config{
				Engine: config.EngineConfig{
					BufferRate:            0.20,
					GlasswareIncrement:    6,
					GlasswareMinimum:      12,
					GarnishGramIncrement:  10,
					DefaultLiquorPackSize: 1000,
					MaxSearchNodes:        50000,
				},
			},
			validate: func(t *testing.T, components *ServiceComponents) {
				assert.NotNil(t, components)
				assert.NotNil(t, components.Computer)
			},
		},
		{
			name: "creates services with zero cache size disables cache",
			cfg: config.Config{
				Cache: config.CacheConfig{
					Size: 0,
					TTL:  5 * time.Minute,
				},
			},
			validate: func(t *testing.T, components *ServiceComponents) {
				assert.NotNil(t, components)
				assert.NotNil(t, components.Computer)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			components := InitializeServices(tt.cfg)
			if tt.validate != nil {
				tt.validate(t, components)
			}
		})
	}
}

func TestServiceComponents_Computer(t *testing.T) {
	components := InitializeServices(config.Config{
		Cache: config.CacheConfig{
			Size: 100,
			TTL:  time.Minute,
		},
	})

	assert.NotNil(t, components.Computer)

	// The computer produces a plan against the demo catalog.
	plans := components.Computer.ComputePlan(
		service.DemoCatalog(),
		model.Selection{"margarita": 20},
		model.TierEconomy,
	)
	assert.NotEmpty(t, plans)
	for _, plan := range plans {
		assert.Greater(t, plan.RoundedTotal, 0.0)
		assert.GreaterOrEqual(t, plan.RoundedTotal, plan.RawTotal)
	}
}

func TestServiceComponents_BufferRateApplied(t *testing.T) {
	components := InitializeServices(config.Config{
		Engine: config.EngineConfig{BufferRate: 0.10},
	})

	plans := components.Computer.ComputePlan(
		service.DemoCatalog(),
		model.Selection{"margarita": 20},
		model.TierEconomy,
	)
	assert.NotEmpty(t, plans)

	for _, plan := range plans {
		assert.InDelta(t, plan.RawTotal*1.10, plan.BufferedTotal, 0.001)
	}
}
