package strategy

import (
	"context"
	"math"

	"github.com/lennartwuchold-LUCA/LUCA-AI-369-sub000/pkg/config"
	"github.com/lennartwuchold-LUCA/LUCA-AI-369-sub000/pkg/core"
)

// MonodStrategy scores each workload on a generalized Monod saturation
// curve of its complexity:
//
//	raw = priority * c^gamma / (K^gamma + c^gamma)
//
// where K is the half-saturation constant. Gamma controls steepness:
// gamma = 1 is the standard hyperbolic response, larger values sharpen
// the winner-take-more behavior, smaller values flatten it toward
// uniform. A reported energy level scales the raw score after the
// curve; this is the only place energy affects the outcome.
type MonodStrategy struct {
	gamma          float64
	halfSaturation float64
}

// NewMonodStrategy creates a MonodStrategy from a validated
// configuration.
func NewMonodStrategy(cfg config.AllocatorConfig) *MonodStrategy {
	return &MonodStrategy{
		gamma:          cfg.Gamma,
		halfSaturation: cfg.HalfSaturation,
	}
}

// Name implements AllocationStrategy.
func (s *MonodStrategy) Name() string { return string(config.StrategyMonod) }

// Scores implements AllocationStrategy.
func (s *MonodStrategy) Scores(_ context.Context, workloads []core.Workload) []float64 {
	kPow := math.Pow(s.halfSaturation, s.gamma)
	scores := make([]float64, len(workloads))
	for i, w := range workloads {
		cPow := math.Pow(w.Complexity, s.gamma)
		// kPow > 0 since half-saturation is validated > 0, so the
		// denominator never vanishes even at complexity 0.
		raw := w.Priority * cPow / (kPow + cPow)
		scores[i] = raw * w.Energy.Multiplier()
	}
	return scores
}
