// Package config defines the allocator configuration: the strategy
// selector, the gamma curve-shape parameter and its named presets, and
// the numeric knobs for the Monod and Lotka-Volterra models.
//
// Configuration is validated once, at allocator construction time, and
// is immutable afterwards. A single AllocatorConfig may back many
// concurrent Distribute calls as long as the caller does not mutate it
// while calls are in flight.
//
// Configuration sources, in order of precedence:
//
//  1. LUCA_ALLOCATOR_* environment variables
//  2. YAML file (Load)
//  3. Default values (Default)
package config
