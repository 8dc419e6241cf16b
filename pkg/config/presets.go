package config

// Named gamma presets.
//
// These are arbitrary curve-shape defaults, not evidence-based
// constants: a preset's only effect is the steepness of the scoring
// response to complexity. Callers mapping user profiles to gamma
// values own that mapping entirely; the allocator treats gamma purely
// numerically and performs no classification.
const (
	// PresetBaseline is the standard hyperbolic response (gamma = 1).
	PresetBaseline = 1.0
	// PresetSharp gives a sharper winner-take-more response to
	// complexity.
	PresetSharp = 2.0
	// PresetSharpest concentrates tokens strongly on the most complex
	// workloads.
	PresetSharpest = 3.5
)

// Presets maps preset names usable in configuration files to gamma
// values.
var Presets = map[string]float64{
	"baseline": PresetBaseline,
	"sharp":    PresetSharp,
	"sharpest": PresetSharpest,
}
