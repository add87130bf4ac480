package solution

import (
	"math"
	"testing"

	"github.com/gammaqc/tsqc/internal/graph"
)

func triangle() *graph.Graph {
	return graph.FromEdgeList(3, [][2]int{{0, 1}, {0, 2}, {1, 2}})
}

func TestAddRemoveRoundTrip(t *testing.T) {
	g := triangle()
	s := New(g)
	s.Add(0)
	s.Add(1)
	s.Add(2)

	before := s.Clone()
	s.Add(1) // no-op, already present
	s.Remove(1)
	s.Add(1)

	if s.Size() != before.Size() || s.Edges() != before.Edges() {
		t.Fatalf("add/remove round trip changed state: got size=%d edges=%d, want size=%d edges=%d",
			s.Size(), s.Edges(), before.Size(), before.Edges())
	}
}

func TestDensity(t *testing.T) {
	g := triangle()
	s := New(g)
	if d := s.Density(); d != 0 {
		t.Errorf("empty Density() = %v, want 0", d)
	}
	s.Add(0)
	if d := s.Density(); d != 0 {
		t.Errorf("singleton Density() = %v, want 0", d)
	}
	s.Add(1)
	s.Add(2)
	if d := s.Density(); math.Abs(d-1.0) > Epsilon {
		t.Errorf("triangle Density() = %v, want 1.0", d)
	}
}

func TestCacheConsistency(t *testing.T) {
	g := graph.FromEdgeList(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	s := New(g)
	for _, v := range []int{0, 1, 2, 3} {
		s.Add(v)
	}
	s.Remove(2)

	wantEdges := 0
	for v := range s.Members().All() {
		wantEdges += g.CountNeighboursIn(v, s.Members())
	}
	wantEdges /= 2
	if s.Edges() != wantEdges {
		t.Errorf("Edges() = %d, want %d (recomputed)", s.Edges(), wantEdges)
	}
	if s.Size() != s.Members().Count() {
		t.Errorf("Size() = %d, want %d (popcount)", s.Size(), s.Members().Count())
	}
}

func TestIsGammaFeasible(t *testing.T) {
	g := triangle()
	s := New(g)
	s.Add(0)
	s.Add(1)
	s.Add(2)
	if !s.IsGammaFeasible(1.0) {
		t.Error("triangle should be 1.0-feasible")
	}
	if !s.IsGammaFeasible(0.99) {
		t.Error("triangle should be 0.99-feasible")
	}
}

func TestCloneIndependence(t *testing.T) {
	g := triangle()
	s := New(g)
	s.Add(0)
	s.Add(1)

	clone := s.Clone()
	s.Add(2)

	if clone.Size() != 2 {
		t.Errorf("clone mutated by original's Add: clone.Size() = %d, want 2", clone.Size())
	}
}
