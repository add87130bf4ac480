package search

import (
	"math/rand"
	"sort"

	"github.com/gammaqc/tsqc/internal/construct"
	"github.com/gammaqc/tsqc/internal/graph"
	"github.com/gammaqc/tsqc/internal/solution"
)

// SolveMaxK ascends k from the size greedy_until_γ reaches up to n,
// calling SolveFixedK at each admissible k and returning the largest
// γ-feasible subset found. A degree-prefix-sum upper bound prunes k values
// that cannot possibly be γ-feasible before paying for a tabu search.
func SolveMaxK(g *graph.Graph, p Params, rng *rand.Rand) *solution.Solution {
	best := construct.GreedyUntilGamma(g, p.GammaTarget, rng)
	prefix := degreePrefixSums(g)

	for k := best.Size(); k <= g.N(); k++ {
		if k == best.Size() {
			continue
		}
		required := requiredEdges(k, p.GammaTarget)
		if ubEdges(prefix, k) < required {
			if k > best.Size() {
				break
			}
			continue
		}

		kp := p
		kp.RunIterCap = runIterCap(k)
		result := SolveFixedK(g, k, kp, rng)
		if result.IsGammaFeasible(p.GammaTarget) {
			best = result
			continue
		}
		if k > best.Size() {
			break
		}
	}

	return best
}

// degreePrefixSums returns the prefix sums of the degree sequence sorted
// descending: prefix[i] = sum of the i highest degrees, prefix[0] = 0.
func degreePrefixSums(g *graph.Graph) []int {
	degs := make([]int, g.N())
	for v := range degs {
		degs[v] = g.Degree(v)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(degs)))

	prefix := make([]int, len(degs)+1)
	for i, d := range degs {
		prefix[i+1] = prefix[i] + d
	}
	return prefix
}

// ubEdges returns ⌊½·Σ_{i<k} min(deg_desc[i], k-1)⌋, an upper bound on the
// edge count of any k-subset, read off the precomputed degree-sequence
// prefix sums.
func ubEdges(prefix []int, k int) int {
	if k == 0 {
		return 0
	}
	sum := 0
	for i := 0; i < k; i++ {
		capped := prefix[i+1] - prefix[i]
		if capped > k-1 {
			capped = k - 1
		}
		sum += capped
	}
	return sum / 2
}
