package strategy

import (
	"context"
	"fmt"

	"github.com/lennartwuchold-LUCA/LUCA-AI-369-sub000/pkg/config"
	"github.com/lennartwuchold-LUCA/LUCA-AI-369-sub000/pkg/core"
)

// AllocationStrategy is the interface implemented by scoring engines.
type AllocationStrategy interface {
	// Name returns the strategy identifier used in logs and metrics.
	Name() string

	// Scores computes one raw score per workload, in input order.
	// Scores are non-negative and finite; an all-zero score vector is
	// a normal outcome handled downstream by the normalizer's uniform
	// fallback. The workload list has already been validated.
	Scores(ctx context.Context, workloads []core.Workload) []float64
}

// New is a factory that creates the AllocationStrategy selected by the
// configuration. The configuration has already been validated.
func New(cfg config.AllocatorConfig) (AllocationStrategy, error) {
	switch cfg.Strategy {
	case config.StrategyMonod:
		return NewMonodStrategy(cfg), nil
	case config.StrategyLotkaVolterra:
		return NewLotkaVolterraStrategy(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported allocation strategy: %q", cfg.Strategy)
	}
}
