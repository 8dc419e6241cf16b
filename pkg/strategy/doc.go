// Package strategy implements the scoring engines that turn a
// workload list into raw per-workload scores.
//
// Two strategies exist: MonodStrategy, a closed-form saturation curve,
// and LotkaVolterraStrategy, a bounded discrete-time competition
// simulation. Both are deterministic and stateless across calls; the
// allocator normalizes their scores into integer token grants.
package strategy
