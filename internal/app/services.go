// Package app provides service initialization.
package app

import (
	"github.com/eventbar/order-engine/config"
	"github.com/eventbar/order-engine/internal/service"
)

// ServiceComponents holds the core engine services.
type ServiceComponents struct {
	Computer   service.OrderComputer
	Reconciler service.ChangeReconciler
}

// InitializeServices initializes the order computation services.
func InitializeServices(cfg config.Config) *ServiceComponents {
	plannerCfg := service.PlannerConfig{
		BufferRate:            cfg.Engine.BufferRate,
		GlasswareIncrement:    cfg.Engine.GlasswareIncrement,
		GlasswareMinimum:      cfg.Engine.GlasswareMinimum,
		GarnishGramIncrement:  cfg.Engine.GarnishGramIncrement,
		DefaultLiquorPackSize: cfg.Engine.DefaultLiquorPackSize,
		MaxSearchNodes:        cfg.Engine.MaxSearchNodes,
	}

	opts := []service.OrderOption{
		service.WithPlanner(service.NewPlannerService(service.WithPlannerConfig(plannerCfg))),
	}
	if cfg.Cache.Size > 0 {
		opts = append(opts, service.WithPlanCache(cfg.Cache.Size, cfg.Cache.TTL))
	}

	return &ServiceComponents{
		Computer:   service.NewOrderService(opts...),
		Reconciler: service.NewReconcilerService(),
	}
}
