// Package core provides the fundamental value types for the adaptive
// resource allocator: workloads competing for a token budget, the
// per-workload allocation results, and the typed errors surfaced by
// input and configuration validation.
//
// Types in this package are plain immutable values. They carry no
// behavior beyond validation and hold no references to transport or
// persistence concerns (pure domain logic).
package core
