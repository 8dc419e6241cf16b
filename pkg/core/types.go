package core

// EnergyLevel represents the caller-reported energy state of the user
// or agent behind a workload. It scales Monod raw scores after
// strategy scoring and before normalization; it has no other effect.
//
// The zero value means "not reported" and scales by 1.0.
type EnergyLevel string

const (
	// EnergyHyperfocus indicates full capacity; scores are unscaled.
	EnergyHyperfocus EnergyLevel = "hyperfocus"
	// EnergyNormal indicates baseline capacity.
	EnergyNormal EnergyLevel = "normal"
	// EnergyBrainfog indicates reduced capacity.
	EnergyBrainfog EnergyLevel = "brainfog"
)

// energy multipliers applied to Monod raw scores
const (
	hyperfocusMultiplier = 1.0
	normalMultiplier     = 0.66
	brainfogMultiplier   = 0.33
)

// Multiplier returns the scalar applied to a Monod raw score for this
// energy level. Unknown or unset levels scale by 1.0.
func (e EnergyLevel) Multiplier() float64 {
	switch e {
	case EnergyHyperfocus:
		return hyperfocusMultiplier
	case EnergyNormal:
		return normalMultiplier
	case EnergyBrainfog:
		return brainfogMultiplier
	default:
		return 1.0
	}
}

// Valid reports whether the energy level is one of the known values or
// unset.
func (e EnergyLevel) Valid() bool {
	switch e {
	case "", EnergyHyperfocus, EnergyNormal, EnergyBrainfog:
		return true
	default:
		return false
	}
}

// Workload describes one unit of work competing for tokens. Workloads
// are constructed fresh by the caller for every allocation request and
// are never retained by the allocator.
type Workload struct {
	// ID identifies the workload within a single allocation call.
	// Must be nonempty and unique across the call.
	ID string `yaml:"id" json:"id"`

	// Complexity is the task complexity in [0, 1].
	Complexity float64 `yaml:"complexity" json:"complexity"`

	// Priority is the task priority in [0, 1].
	Priority float64 `yaml:"priority" json:"priority"`

	// Energy is the optional reported energy level. Empty means
	// unreported.
	Energy EnergyLevel `yaml:"energy,omitempty" json:"energy,omitempty"`
}

// AllocationResult holds the outcome of a distribution for a single
// workload. Results are returned to the caller in input order and are
// not retained by the allocator.
type AllocationResult struct {
	// WorkloadID echoes the ID of the workload this result is for.
	WorkloadID string `yaml:"workload_id" json:"workload_id"`

	// TokensAllocated is the integer token grant, always >= 0. The
	// grants across a result set sum exactly to the configured budget.
	TokensAllocated int `yaml:"tokens_allocated" json:"tokens_allocated"`

	// RawScore is the strategy score (post energy scaling) the grant
	// was derived from.
	RawScore float64 `yaml:"raw_score" json:"raw_score"`

	// Utilization is TokensAllocated divided by the total budget.
	Utilization float64 `yaml:"utilization" json:"utilization"`
}
