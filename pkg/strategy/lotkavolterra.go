package strategy

import (
	"context"
	"math"

	"github.com/lennartwuchold-LUCA/LUCA-AI-369-sub000/internal/logging"
	"github.com/lennartwuchold-LUCA/LUCA-AI-369-sub000/pkg/config"
	"github.com/lennartwuchold-LUCA/LUCA-AI-369-sub000/pkg/core"
)

// LotkaVolterraStrategy scores workloads by simulating competing
// populations sharing a carrying capacity equal to the token budget.
// Each population starts at the workload's priority and evolves under
// a discrete-time Euler update:
//
//	r_i       = priority_i * complexity_i^gamma
//	x_i(t+1)  = x_i(t) + r_i * x_i(t) * (1 - a * sum_j x_j(t) / capacity)
//
// clamped at zero. The loop runs until the maximum per-step relative
// change drops below the convergence epsilon or the iteration cap is
// reached; both are normal termination. The final populations are the
// raw scores.
type LotkaVolterraStrategy struct {
	gamma                  float64
	competitionCoefficient float64
	capacity               float64
	maxIterations          int
	epsilon                float64
}

// NewLotkaVolterraStrategy creates a LotkaVolterraStrategy from a
// validated configuration. A zero competition coefficient means the
// default 1/N, derived per call from the workload count so that total
// competitive pressure scales with population size.
func NewLotkaVolterraStrategy(cfg config.AllocatorConfig) *LotkaVolterraStrategy {
	return &LotkaVolterraStrategy{
		gamma:                  cfg.Gamma,
		competitionCoefficient: cfg.CompetitionCoefficient,
		capacity:               float64(cfg.TotalTokens),
		maxIterations:          cfg.MaxIterations,
		epsilon:                cfg.ConvergenceEpsilon,
	}
}

// Name implements AllocationStrategy.
func (s *LotkaVolterraStrategy) Name() string { return string(config.StrategyLotkaVolterra) }

// Scores implements AllocationStrategy.
func (s *LotkaVolterraStrategy) Scores(ctx context.Context, workloads []core.Workload) []float64 {
	n := len(workloads)
	if n == 0 {
		return nil
	}

	a := s.competitionCoefficient
	if a <= 0 {
		a = 1 / float64(n)
	}

	growth := make([]float64, n)
	x := make([]float64, n)
	for i, w := range workloads {
		growth[i] = w.Priority * math.Pow(w.Complexity, s.gamma)
		x[i] = w.Priority
	}

	converged := false
	steps := 0
	for ; steps < s.maxIterations; steps++ {
		var total float64
		for _, xi := range x {
			total += a * xi
		}
		pressure := 1 - total/s.capacity

		maxRel := 0.0
		for i := range x {
			next := x[i] + growth[i]*x[i]*pressure
			if next < 0 {
				next = 0
			}
			rel := math.Abs(next - x[i])
			if x[i] > 0 {
				rel /= x[i]
			}
			if rel > maxRel {
				maxRel = rel
			}
			x[i] = next
		}

		if maxRel < s.epsilon {
			converged = true
			steps++
			break
		}
	}

	logging.FromContext(ctx).V(logging.DEBUG).Info("lotka-volterra simulation finished",
		"steps", steps,
		"converged", converged,
		"populations", n)

	return x
}
