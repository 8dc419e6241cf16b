// Package optimizer searches the allocator's gamma parameter for the
// value whose allocation quality is closest to a caller-specified
// target.
//
// The search is a golden-section narrowing of |quality(gamma)-target|
// over a bounded interval, built entirely on repeated
// ResourceAllocator.Distribute calls. It assumes the quality function
// is unimodal in gamma over the interval for the chosen strategy; the
// search does not verify this. Candidate evaluation is sequential for
// reproducibility.
package optimizer
