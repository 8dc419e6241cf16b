package config

import (
	"fmt"

	"github.com/lennartwuchold-LUCA/LUCA-AI-369-sub000/pkg/core"
)

// Strategy selects the scoring model used to turn workloads into raw
// scores before normalization.
type Strategy string

const (
	// StrategyMonod scores workloads on a generalized Monod
	// saturation curve of their complexity.
	StrategyMonod Strategy = "monod"
	// StrategyLotkaVolterra scores workloads by simulating
	// Lotka-Volterra competition over a shared carrying capacity.
	StrategyLotkaVolterra Strategy = "lotka-volterra"
)

// Valid reports whether the strategy is one of the known values.
func (s Strategy) Valid() bool {
	switch s {
	case StrategyMonod, StrategyLotkaVolterra:
		return true
	default:
		return false
	}
}

// Default values for the numeric knobs.
const (
	DefaultTotalTokens        = 100000
	DefaultHalfSaturation     = 0.5
	DefaultMaxIterations      = 100
	DefaultConvergenceEpsilon = 1e-6
)

// AllocatorConfig holds the immutable configuration of a
// ResourceAllocator. Construct it directly, or via Default and Load,
// then pass it to allocator.New which validates it.
type AllocatorConfig struct {
	// Strategy selects the scoring model.
	Strategy Strategy `yaml:"strategy" mapstructure:"strategy"`

	// Gamma is the curve-shape exponent applied to complexity in both
	// strategies. Must be > 0. Higher values sharpen the response;
	// see the named presets for reference points.
	Gamma float64 `yaml:"gamma" mapstructure:"gamma"`

	// TotalTokens is the integer budget distributed per call.
	// Must be > 0.
	TotalTokens int `yaml:"total_tokens" mapstructure:"total_tokens"`

	// HalfSaturation is the Monod half-saturation constant: the
	// complexity at which the curve reaches half its maximum. Must be
	// > 0. Ignored by the Lotka-Volterra strategy.
	HalfSaturation float64 `yaml:"half_saturation" mapstructure:"half_saturation"`

	// CompetitionCoefficient dampens Lotka-Volterra growth by the
	// aggregate population. Zero means "default": 1/N is derived per
	// call from the workload count. Must be >= 0. Ignored by Monod.
	CompetitionCoefficient float64 `yaml:"competition_coefficient" mapstructure:"competition_coefficient"`

	// MaxIterations caps the Lotka-Volterra simulation loop and the
	// gamma search. Must be > 0.
	MaxIterations int `yaml:"max_iterations" mapstructure:"max_iterations"`

	// ConvergenceEpsilon is the relative-change threshold that ends
	// the Lotka-Volterra simulation early, and the interval width at
	// which the gamma search stops narrowing. Must be > 0.
	ConvergenceEpsilon float64 `yaml:"convergence_epsilon" mapstructure:"convergence_epsilon"`
}

// Default returns the baseline configuration: Monod scoring with the
// baseline gamma preset.
func Default() AllocatorConfig {
	return AllocatorConfig{
		Strategy:           StrategyMonod,
		Gamma:              PresetBaseline,
		TotalTokens:        DefaultTotalTokens,
		HalfSaturation:     DefaultHalfSaturation,
		MaxIterations:      DefaultMaxIterations,
		ConvergenceEpsilon: DefaultConvergenceEpsilon,
	}
}

// Validate checks the configuration for the constraints the allocator
// depends on. Violations are reported as *core.ConfigurationError.
func (c AllocatorConfig) Validate() error {
	if !c.Strategy.Valid() {
		return &core.ConfigurationError{
			Field:  "strategy",
			Reason: fmt.Sprintf("unknown strategy %q", c.Strategy),
		}
	}
	if c.Gamma <= 0 {
		return &core.ConfigurationError{
			Field:  "gamma",
			Reason: fmt.Sprintf("must be > 0, got %g", c.Gamma),
		}
	}
	if c.TotalTokens <= 0 {
		return &core.ConfigurationError{
			Field:  "total_tokens",
			Reason: fmt.Sprintf("must be > 0, got %d", c.TotalTokens),
		}
	}
	if c.Strategy == StrategyMonod && c.HalfSaturation <= 0 {
		return &core.ConfigurationError{
			Field:  "half_saturation",
			Reason: fmt.Sprintf("must be > 0, got %g", c.HalfSaturation),
		}
	}
	if c.CompetitionCoefficient < 0 {
		return &core.ConfigurationError{
			Field:  "competition_coefficient",
			Reason: fmt.Sprintf("must be >= 0, got %g", c.CompetitionCoefficient),
		}
	}
	if c.MaxIterations <= 0 {
		return &core.ConfigurationError{
			Field:  "max_iterations",
			Reason: fmt.Sprintf("must be > 0, got %d", c.MaxIterations),
		}
	}
	if c.ConvergenceEpsilon <= 0 {
		return &core.ConfigurationError{
			Field:  "convergence_epsilon",
			Reason: fmt.Sprintf("must be > 0, got %g", c.ConvergenceEpsilon),
		}
	}
	return nil
}

// WithGamma returns a copy of the configuration with a different gamma
// value. Used by the gamma search to probe candidate values without
// mutating the shared base configuration.
func (c AllocatorConfig) WithGamma(gamma float64) AllocatorConfig {
	c.Gamma = gamma
	return c
}
