package allocator

import (
	"gonum.org/v1/gonum/stat"

	"github.com/lennartwuchold-LUCA/LUCA-AI-369-sub000/pkg/core"
)

// Summary aggregates statistics over one allocation result set.
type Summary struct {
	// Workloads is the number of results summarized.
	Workloads int
	// TokensAllocated is the sum of all grants. Equals TotalTokens
	// for any successful non-empty distribution.
	TokensAllocated int
	// TotalTokens is the configured budget the results were produced
	// under.
	TotalTokens int
	// Utilization is TokensAllocated / TotalTokens.
	Utilization float64
	// MinTokens and MaxTokens bound the individual grants.
	MinTokens int
	MaxTokens int
	// MeanTokens is the average grant size.
	MeanTokens float64
	// UtilizationVariance is the population variance of per-workload
	// utilization, the fairness proxy also used as the default gamma
	// search quality metric.
	UtilizationVariance float64
}

// Summarize computes aggregate statistics for an allocation result
// set. An empty result set yields a zero Summary.
func Summarize(results []core.AllocationResult, totalTokens int) Summary {
	s := Summary{Workloads: len(results), TotalTokens: totalTokens}
	if len(results) == 0 {
		return s
	}

	utils := make([]float64, len(results))
	grants := make([]float64, len(results))
	s.MinTokens = results[0].TokensAllocated
	for i, r := range results {
		s.TokensAllocated += r.TokensAllocated
		if r.TokensAllocated < s.MinTokens {
			s.MinTokens = r.TokensAllocated
		}
		if r.TokensAllocated > s.MaxTokens {
			s.MaxTokens = r.TokensAllocated
		}
		utils[i] = r.Utilization
		grants[i] = float64(r.TokensAllocated)
	}

	if totalTokens > 0 {
		s.Utilization = float64(s.TokensAllocated) / float64(totalTokens)
	}
	s.MeanTokens = stat.Mean(grants, nil)
	s.UtilizationVariance = stat.PopVariance(utils, nil)
	return s
}
