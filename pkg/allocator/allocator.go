package allocator

import (
	"context"
	"time"

	"github.com/lennartwuchold-LUCA/LUCA-AI-369-sub000/internal/logging"
	"github.com/lennartwuchold-LUCA/LUCA-AI-369-sub000/internal/metrics"
	"github.com/lennartwuchold-LUCA/LUCA-AI-369-sub000/pkg/config"
	"github.com/lennartwuchold-LUCA/LUCA-AI-369-sub000/pkg/core"
	"github.com/lennartwuchold-LUCA/LUCA-AI-369-sub000/pkg/strategy"
)

// ResourceAllocator distributes the configured token budget across
// workloads using the configured scoring strategy. Instances are
// immutable and safe for concurrent use.
type ResourceAllocator struct {
	cfg   config.AllocatorConfig
	strat strategy.AllocationStrategy
}

// New creates a ResourceAllocator, validating the configuration.
// Malformed configuration is reported here as a
// *core.ConfigurationError, never per call.
func New(cfg config.AllocatorConfig) (*ResourceAllocator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	strat, err := strategy.New(cfg)
	if err != nil {
		return nil, err
	}
	return &ResourceAllocator{cfg: cfg, strat: strat}, nil
}

// Config returns the allocator's configuration.
func (a *ResourceAllocator) Config() config.AllocatorConfig { return a.cfg }

// Distribute splits the token budget across the given workloads and
// returns one result per workload, in input order.
//
// Invariants on every successful non-empty call: the grants sum
// exactly to the configured budget, every grant is >= 0, and identical
// inputs yield identical outputs. An empty workload list yields an
// empty result list. Malformed workloads are rejected with a
// *core.ValidationError and no partial output.
func (a *ResourceAllocator) Distribute(ctx context.Context, workloads []core.Workload) ([]core.AllocationResult, error) {
	if len(workloads) == 0 {
		return []core.AllocationResult{}, nil
	}

	start := time.Now()
	if err := core.ValidateWorkloads(workloads); err != nil {
		metrics.ObserveValidationFailure()
		return nil, err
	}

	scores := a.strat.Scores(ctx, workloads)
	tokens := normalize(scores, a.cfg.TotalTokens)

	budget := float64(a.cfg.TotalTokens)
	results := make([]core.AllocationResult, len(workloads))
	for i, w := range workloads {
		results[i] = core.AllocationResult{
			WorkloadID:      w.ID,
			TokensAllocated: tokens[i],
			RawScore:        scores[i],
			Utilization:     float64(tokens[i]) / budget,
		}
	}

	logging.FromContext(ctx).V(logging.DEBUG).Info("distributed token budget",
		"strategy", a.strat.Name(),
		"workloads", len(workloads),
		"totalTokens", a.cfg.TotalTokens,
		"gamma", a.cfg.Gamma)
	metrics.ObserveDistribute(a.strat.Name(), time.Since(start))

	return results, nil
}
