// Package neighbour implements the one-swap neighbourhood that drives the
// tabu search's intensification phase: each call considers removing one
// critical-in vertex and adding one critical-out vertex, respecting the
// dual tabu memory unless the aspiration criterion overrides it.
package neighbour

import (
	"math/rand"

	"github.com/gammaqc/tsqc/internal/graph"
	"github.com/gammaqc/tsqc/internal/solution"
	"github.com/gammaqc/tsqc/internal/tabu"
)

// Freq is the long-term frequency memory shared across runs of the fixed-k
// controller: freq[v] counts how often v has been swapped in or out.
type Freq []int

// NewFreq returns a zeroed frequency vector over n vertices.
func NewFreq(n int) Freq { return make(Freq, n) }

// bump increments freq[v] and, if it now exceeds limit, zeroes every entry
// (the swap neighbourhood's freq-overflow reset rule).
func (f Freq) bump(v, limit int) {
	f[v]++
	if f[v] > limit {
		clear(f)
	}
}

// candidate pairs a critical-in vertex u with a critical-out vertex v and
// the resulting edge delta.
type candidate struct {
	u, v int
	dm   int // Δm = |N(v)∩S\{u}| - |N(u)∩S|
}

// Step performs at most one swap on s: moving one vertex of minimal
// in-degree out and one vertex of maximal out-degree in, subject to the
// dual tabu memory and the aspiration criterion (bestDensitySoFar). t's
// iteration counter always advances by one; its tenures are only
// recomputed, and the forbid lists only updated, when a swap is actually
// executed. Identical (s, t, freq, gamma, bestDensitySoFar, rng) state
// reproduces an identical trajectory, since every random choice below
// consumes rng in a fixed scan order. Returns whether a swap was executed.
func Step(s *solution.Solution, t *tabu.DualTabu, freq Freq, gamma, bestDensitySoFar float64, rng *rand.Rand) bool {
	u, v, ok := pickSwap(s, t, bestDensitySoFar)
	if !ok {
		t.Step()
		return false
	}

	s.Remove(u)
	s.Add(v)
	limit := s.Size()
	freq.bump(u, limit)
	freq.bump(v, limit)

	t.ForbidU(u)
	t.ForbidV(v)
	t.Step()
	t.UpdateTenures(s.Size(), s.Edges(), gamma, rng)
	return true
}

// pickSwap chooses the swap to execute, if any, without mutating s or t.
func pickSwap(s *solution.Solution, t *tabu.DualTabu, bestDensitySoFar float64) (u, v int, ok bool) {
	g := s.Graph()

	a, minInS := criticalIn(g, s)
	b, _ := criticalOut(g, s)
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, false
	}

	var allowed, aspirational []candidate

	for _, u := range a {
		for _, v := range b {
			degVExclU := g.CountNeighboursIn(v, s.Members())
			if g.Row(v).Test(u) {
				degVExclU--
			}
			dm := degVExclU - minInS

			forbidden := t.IsTabuV(u) || t.IsTabuU(v)
			c := candidate{u: u, v: v, dm: dm}
			switch {
			case !forbidden && dm >= 0:
				allowed = append(allowed, c)
			case forbidden:
				if swapDensity(s, dm) > bestDensitySoFar {
					aspirational = append(aspirational, c)
				}
			}
		}
	}

	chosen, found := bestByDensity(s, allowed)
	if !found {
		chosen, found = bestByDensity(s, aspirational)
	}
	if !found {
		return 0, 0, false
	}
	return chosen.u, chosen.v, true
}

// bestByDensity returns the candidate with maximal resulting density,
// ties broken by scan order (first seen wins, since cands is already in
// scan order).
func bestByDensity(s *solution.Solution, cands []candidate) (candidate, bool) {
	if len(cands) == 0 {
		return candidate{}, false
	}
	best := cands[0]
	bestDensity := swapDensity(s, best.dm)
	for _, c := range cands[1:] {
		d := swapDensity(s, c.dm)
		if d > bestDensity {
			best, bestDensity = c, d
		}
	}
	return best, true
}

// swapDensity returns the density S would have after a swap with edge
// delta dm, without mutating s.
func swapDensity(s *solution.Solution, dm int) float64 {
	size := s.Size()
	if size < 2 {
		return 0
	}
	return 2 * float64(s.Edges()+dm) / float64(size*(size-1))
}

// criticalIn returns A = {u in S : |N(u)∩S| = MinInS} and MinInS.
func criticalIn(g *graph.Graph, s *solution.Solution) ([]int, int) {
	minIn := -1
	var a []int
	for u := range s.Members().All() {
		d := g.CountNeighboursIn(u, s.Members())
		switch {
		case minIn == -1 || d < minIn:
			minIn = d
			a = a[:0]
			a = append(a, u)
		case d == minIn:
			a = append(a, u)
		}
	}
	if minIn == -1 {
		minIn = 0
	}
	return a, minIn
}

// criticalOut returns B = {v not in S : |N(v)∩S| = MaxOutS} and MaxOutS.
func criticalOut(g *graph.Graph, s *solution.Solution) ([]int, int) {
	maxOut := -1
	var b []int
	for v := 0; v < g.N(); v++ {
		if s.Contains(v) {
			continue
		}
		d := g.CountNeighboursIn(v, s.Members())
		switch {
		case d > maxOut:
			maxOut = d
			b = b[:0]
			b = append(b, v)
		case d == maxOut:
			b = append(b, v)
		}
	}
	if maxOut == -1 {
		maxOut = 0
	}
	return b, maxOut
}
