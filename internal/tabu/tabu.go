// Package tabu implements the dual tabu memory with adaptive tenures that
// guides the swap neighbourhood: tabu_u bans re-adding a recently-removed
// vertex, tabu_v bans removing a recently-added vertex.
package tabu

import (
	"math"
	"math/rand"
)

// DualTabu holds two bounded tabu memories over n vertices, keyed by a
// monotonically nondecreasing global iteration counter.
type DualTabu struct {
	expiryU []int // iteration at which re-adding v becomes legal again
	expiryV []int // iteration at which removing v becomes legal again
	iter    int
	tu      int
	tv      int
}

// New returns a DualTabu over n vertices with the given initial tenure
// seeds (clamped to at least 1; they are quickly overridden by UpdateTenures).
func New(n, initialTu, initialTv int) *DualTabu {
	return &DualTabu{
		expiryU: make([]int, n),
		expiryV: make([]int, n),
		tu:      max(initialTu, 1),
		tv:      max(initialTv, 1),
	}
}

// Iter returns the current global iteration counter.
func (t *DualTabu) Iter() int { return t.iter }

// Tu returns the current tabu_u tenure.
func (t *DualTabu) Tu() int { return t.tu }

// Tv returns the current tabu_v tenure.
func (t *DualTabu) Tv() int { return t.tv }

// IsTabuU reports whether re-adding v is currently forbidden.
func (t *DualTabu) IsTabuU(v int) bool { return t.expiryU[v] > t.iter }

// IsTabuV reports whether removing v is currently forbidden.
func (t *DualTabu) IsTabuV(v int) bool { return t.expiryV[v] > t.iter }

// ForbidU forbids v from being re-added for the next Tu iterations.
func (t *DualTabu) ForbidU(v int) { t.expiryU[v] = t.iter + t.tu }

// ForbidV forbids v from being removed for the next Tv iterations.
func (t *DualTabu) ForbidV(v int) { t.expiryV[v] = t.iter + t.tv }

// Step advances the global iteration counter by one. Call once per
// neighbourhood step, whether or not a move was made.
func (t *DualTabu) Step() { t.iter++ }

// Reset clears both tabu memories without touching the iteration counter.
func (t *DualTabu) Reset() {
	clear(t.expiryU)
	clear(t.expiryV)
}

// UpdateTenures recomputes Tu and Tv from the current solution's size,
// edges, and the target density gamma, per the adaptive deficit-based
// formula: tenures grow while the edge deficit is large and shrink as the
// solution nears feasibility, with a random component to avoid cycling.
func (t *DualTabu) UpdateTenures(size, edges int, gamma float64, rng *rand.Rand) {
	cliqueEdges := 0
	if size >= 2 {
		cliqueEdges = size * (size - 1) / 2
	}
	target := int(math.Ceil(gamma * float64(cliqueEdges)))
	deficit := target - edges
	if deficit < 0 {
		deficit = 0
	}
	l := min(deficit, 10)

	c := max(size/40, 6)

	randU := rng.Intn(c + 1)
	t.tu = max(l+1+randU, 1)

	vSpan := max(int(0.6*float64(c)), 1)
	randV := rng.Intn(vSpan + 1)
	baseV := int(0.6 * float64(l+1))
	t.tv = max(baseV+randV, 1)
}
