package perturb

import (
	"math/rand"
	"testing"

	"github.com/gammaqc/tsqc/internal/graph"
	"github.com/gammaqc/tsqc/internal/neighbour"
	"github.com/gammaqc/tsqc/internal/solution"
	"github.com/gammaqc/tsqc/internal/tabu"
)

func square() *graph.Graph {
	return graph.FromEdgeList(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
}

func TestHeavyPreservesSize(t *testing.T) {
	g := square()
	s := solution.New(g)
	s.Add(0)
	s.Add(1)
	s.Add(2)
	before := s.Size()

	tb := tabu.New(g.N(), 2, 2)
	freq := neighbour.NewFreq(g.N())
	rng := rand.New(rand.NewSource(7))

	Heavy(s, tb, freq, 0.5, rng)
	if s.Size() != before {
		t.Errorf("Size() = %d, want %d", s.Size(), before)
	}
}

func TestHeavyNoopOnEmpty(t *testing.T) {
	g := square()
	s := solution.New(g)
	tb := tabu.New(g.N(), 2, 2)
	freq := neighbour.NewFreq(g.N())
	rng := rand.New(rand.NewSource(1))

	Heavy(s, tb, freq, 0.5, rng)
	if s.Size() != 0 {
		t.Errorf("Size() = %d, want 0", s.Size())
	}
}

func TestHeavyResetsTabu(t *testing.T) {
	g := square()
	s := solution.New(g)
	s.Add(0)
	s.Add(1)
	s.Add(2)

	tb := tabu.New(g.N(), 5, 5)
	tb.ForbidU(3)
	freq := neighbour.NewFreq(g.N())
	rng := rand.New(rand.NewSource(1))

	Heavy(s, tb, freq, 0.5, rng)
	if tb.IsTabuU(3) {
		t.Error("expected Heavy to reset tabu memory")
	}
}

func TestMildPreservesSize(t *testing.T) {
	g := square()
	s := solution.New(g)
	s.Add(0)
	s.Add(1)
	s.Add(2)
	before := s.Size()

	tb := tabu.New(g.N(), 2, 2)
	freq := neighbour.NewFreq(g.N())
	rng := rand.New(rand.NewSource(3))

	Mild(s, tb, freq, 0.5, rng)
	if s.Size() != before {
		t.Errorf("Size() = %d, want %d", s.Size(), before)
	}
}

func TestMildNoopWhenSolutionSpansGraph(t *testing.T) {
	g := square()
	s := solution.New(g)
	for v := 0; v < g.N(); v++ {
		s.Add(v)
	}
	tb := tabu.New(g.N(), 2, 2)
	freq := neighbour.NewFreq(g.N())
	rng := rand.New(rand.NewSource(3))

	Mild(s, tb, freq, 0.5, rng)
	if s.Size() != g.N() {
		t.Errorf("Size() = %d, want %d (no outsiders available)", s.Size(), g.N())
	}
}

func TestHeavyThresholdSparseVsDense(t *testing.T) {
	sparse := solution.New(graph.New(100)) // 0 edges: density 0
	for v := 0; v < 25; v++ {
		sparse.Add(v)
	}
	if got := heavyThreshold(sparse, sparse.Size()); got < 1 {
		t.Errorf("heavyThreshold (sparse) = %d, want >= 1", got)
	}

	// dense graph: complete graph on 20 vertices, density 1.0 >= 0.5
	edges := [][2]int{}
	for i := 0; i < 20; i++ {
		for j := i + 1; j < 20; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}
	dense := solution.New(graph.FromEdgeList(20, edges))
	for v := 0; v < 10; v++ {
		dense.Add(v)
	}
	got := heavyThreshold(dense, dense.Size())
	if got < 1 || got > dense.Size()-1 {
		t.Errorf("heavyThreshold (dense) = %d, want in [1, %d]", got, dense.Size()-1)
	}
}
