// Package perturb implements the two diversification moves invoked once
// the swap neighbourhood has stagnated: a heavy shake that discards most
// of the local structure around one vertex, and a mild shake that nudges
// the critical sets by one swap. Both preserve |S| and reset the dual
// tabu memory.
package perturb

import (
	"math"
	"math/rand"

	"github.com/gammaqc/tsqc/internal/neighbour"
	"github.com/gammaqc/tsqc/internal/solution"
	"github.com/gammaqc/tsqc/internal/tabu"
)

// Heavy removes one uniformly random member of s, then adds back one
// uniformly random vertex from among the outsiders whose connection into
// the (now k-1 sized) solution falls below an adaptive threshold — loose
// when the graph is sparse, tight when it is dense — falling back to the
// minimally-connected outsiders if no vertex clears the threshold. It
// resets t and recomputes its tenures. No-op on an empty solution.
func Heavy(s *solution.Solution, t *tabu.DualTabu, freq neighbour.Freq, gamma float64, rng *rand.Rand) {
	k := s.Size()
	if k == 0 {
		return
	}

	u := randomMember(s, rng)
	s.Remove(u)

	h := heavyThreshold(s, k)
	v := pickHeavyCandidate(s, h, rng)
	s.Add(v)

	bumpBoth(freq, u, v, k)
	t.Reset()
	t.UpdateTenures(s.Size(), s.Edges(), gamma, rng)
}

// heavyThreshold returns ⌈k^0.85⌉ if the graph's global density is >= 0.5,
// else ⌈√k⌉, clamped to [1, k-1].
func heavyThreshold(s *solution.Solution, k int) int {
	g := s.Graph()
	var h float64
	if globalDensity(g.N(), g.M()) >= 0.5 {
		h = math.Ceil(math.Pow(float64(k), 0.85))
	} else {
		h = math.Ceil(math.Sqrt(float64(k)))
	}
	hi := k - 1
	if hi < 1 {
		hi = 1
	}
	return clampInt(int(h), 1, hi)
}

func globalDensity(n, m int) float64 {
	if n < 2 {
		return 0
	}
	return 2 * float64(m) / float64(n*(n-1))
}

// pickHeavyCandidate returns a uniformly random outsider with
// |N(v)∩S| < h, or, if no such outsider exists, a uniformly random
// outsider among those achieving the minimum |N(v)∩S|.
func pickHeavyCandidate(s *solution.Solution, h int, rng *rand.Rand) int {
	g := s.Graph()
	var below []int
	minDeg := -1
	var atMin []int
	for v := 0; v < g.N(); v++ {
		if s.Contains(v) {
			continue
		}
		d := g.CountNeighboursIn(v, s.Members())
		if d < h {
			below = append(below, v)
		}
		switch {
		case minDeg == -1 || d < minDeg:
			minDeg = d
			atMin = atMin[:0]
			atMin = append(atMin, v)
		case d == minDeg:
			atMin = append(atMin, v)
		}
	}
	if len(below) > 0 {
		return below[rng.Intn(len(below))]
	}
	return atMin[rng.Intn(len(atMin))]
}

// Mild removes one uniformly random critical-in vertex (minimal
// |N(u)∩S|) and adds one uniformly random critical-out vertex (maximal
// |N(v)∩S|). It resets t and recomputes its tenures. No-op if s is empty
// or spans every vertex of the graph.
func Mild(s *solution.Solution, t *tabu.DualTabu, freq neighbour.Freq, gamma float64, rng *rand.Rand) {
	a := argMinInS(s)
	b := argMaxOutS(s)
	if len(a) == 0 || len(b) == 0 {
		return
	}

	u := a[rng.Intn(len(a))]
	v := b[rng.Intn(len(b))]
	k := s.Size()

	s.Remove(u)
	s.Add(v)

	bumpBoth(freq, u, v, k)
	t.Reset()
	t.UpdateTenures(s.Size(), s.Edges(), gamma, rng)
}

func argMinInS(s *solution.Solution) []int {
	g := s.Graph()
	minDeg := -1
	var a []int
	for u := range s.Members().All() {
		d := g.CountNeighboursIn(u, s.Members())
		switch {
		case minDeg == -1 || d < minDeg:
			minDeg = d
			a = a[:0]
			a = append(a, u)
		case d == minDeg:
			a = append(a, u)
		}
	}
	return a
}

func argMaxOutS(s *solution.Solution) []int {
	g := s.Graph()
	maxDeg := -1
	var b []int
	for v := 0; v < g.N(); v++ {
		if s.Contains(v) {
			continue
		}
		d := g.CountNeighboursIn(v, s.Members())
		switch {
		case d > maxDeg:
			maxDeg = d
			b = b[:0]
			b = append(b, v)
		case d == maxDeg:
			b = append(b, v)
		}
	}
	return b
}

func randomMember(s *solution.Solution, rng *rand.Rand) int {
	idx := rng.Intn(s.Size())
	i := 0
	for v := range s.Members().All() {
		if i == idx {
			return v
		}
		i++
	}
	panic("perturb: randomMember called on empty solution")
}

// bumpBoth applies the frequency-memory update shared by both
// perturbations: increment freq[u] and freq[v], resetting the whole array
// if either now exceeds limit.
func bumpBoth(freq neighbour.Freq, u, v, limit int) {
	freq[u]++
	freq[v]++
	if freq[u] > limit || freq[v] > limit {
		clear(freq)
	}
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
