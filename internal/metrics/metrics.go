// Package metrics instruments allocator operations with Prometheus
// counters and histograms. Emission is strictly observational: it
// never influences allocation results.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	distributionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "luca_allocator_distributions_total",
		Help: "Number of completed token distributions, by strategy.",
	}, []string{"strategy"})

	validationFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "luca_allocator_validation_failures_total",
		Help: "Number of distributions rejected by workload validation.",
	})

	distributeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "luca_allocator_distribute_duration_seconds",
		Help:    "Wall-clock duration of Distribute calls, by strategy.",
		Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
	}, []string{"strategy"})

	gammaSearchIterations = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "luca_allocator_gamma_search_iterations",
		Help:    "Distribute evaluations performed per gamma search.",
		Buckets: prometheus.LinearBuckets(5, 10, 10),
	})

	gammaSearchNonconverged = promauto.NewCounter(prometheus.CounterOpts{
		Name: "luca_allocator_gamma_search_nonconverged_total",
		Help: "Gamma searches that exhausted their iteration budget.",
	})
)

// ObserveDistribute records a completed distribution.
func ObserveDistribute(strategy string, elapsed time.Duration) {
	distributionsTotal.WithLabelValues(strategy).Inc()
	distributeDuration.WithLabelValues(strategy).Observe(elapsed.Seconds())
}

// ObserveValidationFailure records a distribution rejected by workload
// validation.
func ObserveValidationFailure() {
	validationFailuresTotal.Inc()
}

// ObserveGammaSearch records a finished gamma search.
func ObserveGammaSearch(iterations int, converged bool) {
	gammaSearchIterations.Observe(float64(iterations))
	if !converged {
		gammaSearchNonconverged.Inc()
	}
}
