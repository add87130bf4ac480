// Package construct builds an initial vertex subset S0 for the tabu search
// to refine, by one of four strategies ranging from purely random to
// density-aware greedy.
package construct

import (
	"math/rand"

	"github.com/gammaqc/tsqc/internal/graph"
	"github.com/gammaqc/tsqc/internal/solution"
)

// RandomK returns a uniform random k-subset of g's vertices. Panics if
// k > g.N().
func RandomK(g *graph.Graph, k int, rng *rand.Rand) *solution.Solution {
	if k > g.N() {
		panic("construct: k larger than graph size")
	}
	idx := rng.Perm(g.N())
	s := solution.New(g)
	for _, v := range idx[:k] {
		s.Add(v)
	}
	return s
}

// GreedyK returns the k highest-degree vertices, ties broken by index.
// Panics if k > g.N().
func GreedyK(g *graph.Graph, k int) *solution.Solution {
	if k > g.N() {
		panic("construct: k larger than graph size")
	}
	idx := make([]int, g.N())
	for v := range idx {
		idx[v] = v
	}
	sortByDegreeDesc(g, idx)

	s := solution.New(g)
	for _, v := range idx[:k] {
		s.Add(v)
	}
	return s
}

// sortByDegreeDesc sorts idx by descending graph degree, breaking ties by
// ascending vertex index, using a plain insertion sort; correctness over
// cleverness here.
func sortByDegreeDesc(g *graph.Graph, idx []int) {
	less := func(i, j int) bool {
		di, dj := g.Degree(idx[i]), g.Degree(idx[j])
		if di != dj {
			return di > dj
		}
		return idx[i] < idx[j]
	}
	// insertion sort over the whole of idx
	for i := 1; i < len(idx); i++ {
		for j := i; j > 0 && less(j, j-1); j-- {
			idx[j], idx[j-1] = idx[j-1], idx[j]
		}
	}
}

// GreedyRandomK seeds with one uniformly random vertex, then repeatedly
// adds the outsider maximizing |N(.) ∩ S|, breaking ties uniformly at
// random, until |S| = k. Panics if k > g.N().
func GreedyRandomK(g *graph.Graph, k int, rng *rand.Rand) *solution.Solution {
	if k > g.N() {
		panic("construct: k larger than graph size")
	}
	s := solution.New(g)
	if k == 0 {
		return s
	}
	s.Add(rng.Intn(g.N()))

	for s.Size() < k {
		w, ok := PickBestOutsider(g, s, rng)
		if !ok {
			break
		}
		s.Add(w)
	}
	return s
}

// GreedyUntilGamma seeds with a random edge (or two random vertices if the
// graph is edgeless), then repeatedly inserts the outsider maximizing
// |N(.) ∩ S| as long as the resulting density stays >= gamma - Epsilon. A
// final scan retries every remaining outsider once more, since an earlier
// insertion may have raised density enough to admit a vertex rejected
// before it.
func GreedyUntilGamma(g *graph.Graph, gamma float64, rng *rand.Rand) *solution.Solution {
	s := solution.New(g)
	if g.N() == 0 {
		return s
	}
	seedEdges(g, s, rng)

	for {
		progressed := false
		for {
			w, ok := PickBestOutsider(g, s, rng)
			if !ok {
				break
			}
			s.Add(w)
			if s.IsGammaFeasible(gamma) {
				progressed = true
				continue
			}
			s.Remove(w)
			break
		}
		if progressed {
			continue
		}
		if !finalOutsiderScan(g, s, gamma) {
			break
		}
	}
	return s
}

// seedEdges picks a random edge incident to some vertex as the two-vertex
// seed, or falls back to two distinct random vertices if g has no edges.
func seedEdges(g *graph.Graph, s *solution.Solution, rng *rand.Rand) {
	edges := g.EdgeList()
	if len(edges) > 0 {
		e := edges[rng.Intn(len(edges))]
		s.Add(e[0])
		s.Add(e[1])
		return
	}
	if g.N() == 1 {
		s.Add(0)
		return
	}
	perm := rng.Perm(g.N())
	s.Add(perm[0])
	s.Add(perm[1])
}

// PickBestOutsider returns the outsider vertex with maximal |N(.) ∩ S|,
// breaking ties uniformly at random, or ok=false if S already spans all
// vertices.
func PickBestOutsider(g *graph.Graph, s *solution.Solution, rng *rand.Rand) (int, bool) {
	best := -1
	var candidates []int
	for w := 0; w < g.N(); w++ {
		if s.Contains(w) {
			continue
		}
		n := g.CountNeighboursIn(w, s.Members())
		switch {
		case n > best:
			best = n
			candidates = candidates[:0]
			candidates = append(candidates, w)
		case n == best:
			candidates = append(candidates, w)
		}
	}
	if len(candidates) == 0 {
		return 0, false
	}
	return candidates[rng.Intn(len(candidates))], true
}

// finalOutsiderScan tries each remaining outsider once, in vertex order,
// accepting the first whose insertion keeps density >= gamma - Epsilon.
// Returns whether any insertion succeeded.
func finalOutsiderScan(g *graph.Graph, s *solution.Solution, gamma float64) bool {
	for w := 0; w < g.N(); w++ {
		if s.Contains(w) {
			continue
		}
		s.Add(w)
		if s.IsGammaFeasible(gamma) {
			return true
		}
		s.Remove(w)
	}
	return false
}
