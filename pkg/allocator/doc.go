// Package allocator distributes a fixed integer token budget across
// competing workloads.
//
// A ResourceAllocator is immutable after construction and holds no
// mutable state across calls: Distribute is a pure function of its
// arguments and is safe to invoke concurrently without locking. Raw
// scores come from the configured strategy (see pkg/strategy); the
// largest-remainder normalizer then converts them into integer grants
// that sum exactly to the budget, deterministically.
package allocator
