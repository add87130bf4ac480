// Package solution implements the mutable vertex-subset candidate the
// solver mutates: a bitset membership with incrementally maintained size
// and edge count.
package solution

import (
	"github.com/gammaqc/tsqc/internal/bitset"
	"github.com/gammaqc/tsqc/internal/graph"
)

// Epsilon is the numerical tolerance applied to every density-vs-gamma
// comparison in the solver, to avoid strict-equality misses when density
// lands exactly on the target.
const Epsilon = 1e-9

// Solution is a mutable vertex subset bound to exactly one Graph for its
// lifetime.
type Solution struct {
	g       *graph.Graph
	members *bitset.Set
	size    int
	edges   int
}

// New returns an empty Solution over g.
func New(g *graph.Graph) *Solution {
	return &Solution{g: g, members: bitset.New(g.N())}
}

// FromMembers builds a Solution from an existing membership bitset,
// computing the edge count from scratch. The caller retains ownership of
// members; it is cloned internally.
func FromMembers(g *graph.Graph, members *bitset.Set) *Solution {
	s := &Solution{g: g, members: members.Clone()}
	s.size = s.members.Count()
	for v := range s.members.All() {
		s.edges += g.CountNeighboursIn(v, s.members)
	}
	s.edges /= 2
	return s
}

// Graph returns the bound Graph.
func (s *Solution) Graph() *graph.Graph { return s.g }

// Members returns the underlying membership bitset. Callers must not mutate
// it directly; use Add/Remove/Toggle/Clear instead.
func (s *Solution) Members() *bitset.Set { return s.members }

// Size returns |S|.
func (s *Solution) Size() int { return s.size }

// Edges returns m(S).
func (s *Solution) Edges() int { return s.edges }

// Contains reports whether v ∈ S.
func (s *Solution) Contains(v int) bool { return s.members.Test(v) }

// Density returns ρ(S) = 2·m(S)/(|S|·(|S|-1)), or 0 when |S| < 2.
func (s *Solution) Density() float64 {
	if s.size < 2 {
		return 0
	}
	return 2 * float64(s.edges) / float64(s.size*(s.size-1))
}

// IsGammaFeasible reports whether ρ(S) ≥ γ - Epsilon.
func (s *Solution) IsGammaFeasible(gamma float64) bool {
	return s.Density()+Epsilon >= gamma
}

// DegreeIn returns |N(v) ∩ S|.
func (s *Solution) DegreeIn(v int) int {
	return s.g.CountNeighboursIn(v, s.members)
}

// Add inserts v into S. No-op if already present.
func (s *Solution) Add(v int) {
	if s.members.Test(v) {
		return
	}
	gained := s.g.CountNeighboursIn(v, s.members)
	s.members.SetBit(v, true)
	s.size++
	s.edges += gained
}

// Remove deletes v from S. No-op if absent.
func (s *Solution) Remove(v int) {
	if !s.members.Test(v) {
		return
	}
	lost := s.g.CountNeighboursIn(v, s.members)
	s.members.SetBit(v, false)
	s.size--
	s.edges -= lost
}

// Toggle flips membership of v, returning true if v is in S afterwards.
func (s *Solution) Toggle(v int) bool {
	if s.members.Test(v) {
		s.Remove(v)
		return false
	}
	s.Add(v)
	return true
}

// Clear empties S.
func (s *Solution) Clear() {
	s.members.Clear()
	s.size = 0
	s.edges = 0
}

// Clone returns an independent deep copy sharing the same Graph reference.
func (s *Solution) Clone() *Solution {
	return &Solution{
		g:       s.g,
		members: s.members.Clone(),
		size:    s.size,
		edges:   s.edges,
	}
}

// CopyFrom overwrites the receiver's state with other's. Both must share
// the same Graph.
func (s *Solution) CopyFrom(other *Solution) {
	s.members.CopyFrom(other.members)
	s.size = other.size
	s.edges = other.edges
}
