package allocator

import (
	"math"
	"sort"
)

// normalize converts raw scores into integer token grants summing
// exactly to totalTokens, using largest-remainder apportionment.
//
// If every score is zero, each workload is treated as weight 1 so the
// split degrades to uniform instead of dividing by zero. Each grant is
// floor(score/total * budget); the leftover tokens go one each to the
// largest fractional remainders, ties broken by lowest input index.
func normalize(scores []float64, totalTokens int) []int {
	n := len(scores)
	if n == 0 {
		return nil
	}

	var total float64
	for _, s := range scores {
		total += s
	}

	weights := scores
	if total == 0 {
		weights = make([]float64, n)
		for i := range weights {
			weights[i] = 1
		}
		total = float64(n)
	}

	tokens := make([]int, n)
	remainders := make([]float64, n)
	assigned := 0
	for i, w := range weights {
		exact := w / total * float64(totalTokens)
		floor := math.Floor(exact)
		tokens[i] = int(floor)
		remainders[i] = exact - floor
		assigned += tokens[i]
	}

	settle(tokens, remainders, totalTokens-assigned)
	return tokens
}

// settle reconciles the floor grants with the budget. A positive
// leftover goes one token each to the largest fractional remainders; a
// negative one (float rounding pushed the floor sum past the budget) is
// clawed back from the smallest remainders, skipping zero grants.
// Stable sorts keep equal remainders in input order so ties go to the
// lowest index.
func settle(tokens []int, remainders []float64, leftover int) {
	if leftover == 0 {
		return
	}

	n := len(tokens)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	if leftover > 0 {
		sort.SliceStable(order, func(a, b int) bool {
			return remainders[order[a]] > remainders[order[b]]
		})
		for i := 0; i < leftover && i < n; i++ {
			tokens[order[i]]++
		}
		return
	}

	sort.SliceStable(order, func(a, b int) bool {
		return remainders[order[a]] < remainders[order[b]]
	})
	for leftover < 0 {
		took := false
		for _, idx := range order {
			if leftover == 0 {
				break
			}
			if tokens[idx] > 0 {
				tokens[idx]--
				leftover++
				took = true
			}
		}
		if !took {
			return
		}
	}
}
