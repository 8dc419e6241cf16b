package optimizer

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/lennartwuchold-LUCA/LUCA-AI-369-sub000/internal/logging"
	"github.com/lennartwuchold-LUCA/LUCA-AI-369-sub000/internal/metrics"
	"github.com/lennartwuchold-LUCA/LUCA-AI-369-sub000/pkg/allocator"
	"github.com/lennartwuchold-LUCA/LUCA-AI-369-sub000/pkg/config"
	"github.com/lennartwuchold-LUCA/LUCA-AI-369-sub000/pkg/core"
)

// QualityFunc scores an allocation result set. The gamma search
// narrows toward the gamma whose quality is closest to the target.
type QualityFunc func(results []core.AllocationResult) float64

// DefaultQuality is the quality function used when the caller supplies
// none: the negative population variance of utilization across
// results, a fairness proxy (higher is fairer).
func DefaultQuality(results []core.AllocationResult) float64 {
	if len(results) == 0 {
		return 0
	}
	utils := make([]float64, len(results))
	for i, r := range results {
		utils[i] = r.Utilization
	}
	return -stat.PopVariance(utils, nil)
}

// Default gamma search bounds.
const (
	DefaultGammaMin = 0.1
	DefaultGammaMax = 5.0
)

// SearchOptions bounds the gamma search interval.
type SearchOptions struct {
	GammaMin float64
	GammaMax float64
}

// DefaultSearchOptions returns the standard search interval
// [0.1, 5.0].
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{GammaMin: DefaultGammaMin, GammaMax: DefaultGammaMax}
}

// GammaResult reports the outcome of a gamma search.
type GammaResult struct {
	// Gamma is the best candidate found.
	Gamma float64
	// QualityAchieved is the quality value at Gamma.
	QualityAchieved float64
	// Iterations is the number of Distribute evaluations performed.
	Iterations int
	// Converged is false when the iteration budget ran out before the
	// search interval narrowed below the convergence epsilon. The
	// result is then best-effort, not an error.
	Converged bool
}

// GammaOptimizer tunes the gamma parameter of an allocator
// configuration. The base configuration's MaxIterations caps the
// number of Distribute evaluations and its ConvergenceEpsilon is the
// interval width at which the search stops.
type GammaOptimizer struct {
	cfg config.AllocatorConfig
}

// New creates a GammaOptimizer over the given base configuration,
// validating it.
func New(cfg config.AllocatorConfig) (*GammaOptimizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &GammaOptimizer{cfg: cfg}, nil
}

// invPhi is the inverse golden ratio used for interval narrowing.
var invPhi = (math.Sqrt(5) - 1) / 2

// OptimizeGamma searches for the gamma whose allocation quality is
// closest to targetQuality. A nil qualityFn uses DefaultQuality; nil
// opts use DefaultSearchOptions.
//
// The quality function is assumed unimodal in gamma over the search
// interval for the configured strategy; this is not verified. When the
// iteration budget is exhausted first, the best candidate found so far
// is returned with Converged=false.
func (o *GammaOptimizer) OptimizeGamma(
	ctx context.Context,
	workloads []core.Workload,
	targetQuality float64,
	qualityFn QualityFunc,
	opts *SearchOptions,
) (GammaResult, error) {
	if qualityFn == nil {
		qualityFn = DefaultQuality
	}
	bounds := DefaultSearchOptions()
	if opts != nil {
		bounds = *opts
	}
	if bounds.GammaMin <= 0 || bounds.GammaMax <= bounds.GammaMin {
		return GammaResult{}, &core.ConfigurationError{
			Field:  "gamma search bounds",
			Reason: fmt.Sprintf("need 0 < min < max, got [%g, %g]", bounds.GammaMin, bounds.GammaMax),
		}
	}

	best := GammaResult{Gamma: bounds.GammaMin}
	bestObj := math.Inf(1)
	evals := 0

	// evaluate runs one Distribute at the candidate gamma and returns
	// the search objective |quality - target|. ok=false means the
	// iteration budget is exhausted; obj is NaN then and must not be
	// compared.
	evaluate := func(gamma float64) (obj float64, ok bool, err error) {
		if evals >= o.cfg.MaxIterations {
			return math.NaN(), false, nil
		}
		evals++
		alloc, err := allocator.New(o.cfg.WithGamma(gamma))
		if err != nil {
			return 0, false, fmt.Errorf("constructing allocator for gamma %.4f: %w", gamma, err)
		}
		results, err := alloc.Distribute(ctx, workloads)
		if err != nil {
			return 0, false, fmt.Errorf("evaluating gamma %.4f: %w", gamma, err)
		}
		quality := qualityFn(results)
		obj = math.Abs(quality - targetQuality)
		if obj < bestObj {
			bestObj = obj
			best.Gamma = gamma
			best.QualityAchieved = quality
		}
		return obj, true, nil
	}

	lo, hi := bounds.GammaMin, bounds.GammaMax
	c := hi - (hi-lo)*invPhi
	d := lo + (hi-lo)*invPhi
	objC, okC, err := evaluate(c)
	if err != nil {
		return GammaResult{}, err
	}
	objD, okD, err := evaluate(d)
	if err != nil {
		return GammaResult{}, err
	}

	for okC && okD && hi-lo >= o.cfg.ConvergenceEpsilon {
		if objC < objD {
			hi, d, objD = d, c, objC
			c = hi - (hi-lo)*invPhi
			objC, okC, err = evaluate(c)
		} else {
			lo, c, objC = c, d, objD
			d = lo + (hi-lo)*invPhi
			objD, okD, err = evaluate(d)
		}
		if err != nil {
			return GammaResult{}, err
		}
	}

	best.Iterations = evals
	best.Converged = hi-lo < o.cfg.ConvergenceEpsilon

	logging.FromContext(ctx).V(logging.DEBUG).Info("gamma search finished",
		"gamma", best.Gamma,
		"quality", best.QualityAchieved,
		"target", targetQuality,
		"iterations", best.Iterations,
		"converged", best.Converged)
	metrics.ObserveGammaSearch(best.Iterations, best.Converged)

	return best, nil
}
