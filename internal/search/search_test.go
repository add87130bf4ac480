package search

import (
	"math"
	"math/rand"
	"testing"

	"github.com/gammaqc/tsqc/internal/graph"
	"github.com/gammaqc/tsqc/internal/solution"
)

func triangleGraph() *graph.Graph {
	return graph.FromEdgeList(3, [][2]int{{0, 1}, {0, 2}, {1, 2}})
}

func fourCycleGraph() *graph.Graph {
	return graph.FromEdgeList(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
}

func k5MinusOneEdge() *graph.Graph {
	edges := [][2]int{}
	for i := 0; i < 5; i++ {
		for j := i + 1; j < 5; j++ {
			if i == 2 && j == 3 {
				continue
			}
			edges = append(edges, [2]int{i, j})
		}
	}
	return graph.FromEdgeList(5, edges)
}

func triangleWithPendant() *graph.Graph {
	return graph.FromEdgeList(4, [][2]int{{0, 1}, {1, 2}, {0, 2}, {2, 3}})
}

func twoDisjointTriangles() *graph.Graph {
	return graph.FromEdgeList(6, [][2]int{
		{0, 1}, {0, 2}, {1, 2},
		{3, 4}, {3, 5}, {4, 5},
	})
}

func TestSolveFixedKTriangle(t *testing.T) {
	g := triangleGraph()
	p := DefaultParams(3, 1.0)
	rng := rand.New(rand.NewSource(1))

	s := SolveFixedK(g, 3, p, rng)
	if math.Abs(s.Density()-1.0) > solution.Epsilon {
		t.Errorf("Density() = %v, want 1.0", s.Density())
	}
}

func TestSolveFixedKFourCycle(t *testing.T) {
	g := fourCycleGraph()
	p := DefaultParams(3, 0.5)
	rng := rand.New(rand.NewSource(1))

	s := SolveFixedK(g, 3, p, rng)
	if s.Density()+solution.Epsilon < 0.5 {
		t.Errorf("Density() = %v, want >= 0.5", s.Density())
	}
}

func TestSolveFixedKImpossibilityPrecheck(t *testing.T) {
	g := triangleGraph()
	p := DefaultParams(3, 1.0)
	rng := rand.New(rand.NewSource(1))

	// k(k-1)/2 = 3 for k=3; required = ceil(1.0*3) = 3, so 3 > 3 is false:
	// not impossible. Use an unreachable gamma instead to force the
	// precheck (gamma > 1 is out of the valid domain but the precheck
	// itself is a pure arithmetic guard worth exercising directly).
	pImpossible := p
	pImpossible.GammaTarget = 1.5
	s := SolveFixedK(g, 3, pImpossible, rng)
	if s.Size() != 0 {
		t.Errorf("Size() = %d, want 0 (impossibility precheck)", s.Size())
	}
}

func TestSolveMaxKTriangle(t *testing.T) {
	g := triangleGraph()
	p := DefaultParams(3, 1.0)
	rng := rand.New(rand.NewSource(1))

	s := SolveMaxK(g, p, rng)
	if s.Size() != 3 {
		t.Errorf("Size() = %d, want 3", s.Size())
	}
	if math.Abs(s.Density()-1.0) > solution.Epsilon {
		t.Errorf("Density() = %v, want 1.0", s.Density())
	}
}

func TestSolveMaxKK5MinusOneEdge(t *testing.T) {
	g := k5MinusOneEdge()
	p := DefaultParams(5, 0.9)
	rng := rand.New(rand.NewSource(2))

	s := SolveMaxK(g, p, rng)
	if s.Size() != 5 {
		t.Errorf("Size() = %d, want 5", s.Size())
	}
	if s.Density()+solution.Epsilon < 0.9 {
		t.Errorf("Density() = %v, want >= 0.9", s.Density())
	}
}

func TestSolveMaxKTriangleWithPendant(t *testing.T) {
	g := triangleWithPendant()
	p := DefaultParams(3, 1.0)
	rng := rand.New(rand.NewSource(3))

	s := SolveMaxK(g, p, rng)
	if s.Size() != 3 {
		t.Errorf("Size() = %d, want 3", s.Size())
	}
	if math.Abs(s.Density()-1.0) > solution.Epsilon {
		t.Errorf("Density() = %v, want 1.0", s.Density())
	}
}

func TestSolveMaxKEmptyGraph(t *testing.T) {
	g := graph.New(10)
	p := DefaultParams(2, 0.5)
	rng := rand.New(rand.NewSource(4))

	s := SolveMaxK(g, p, rng)
	if s.Size() > 2 {
		t.Errorf("Size() = %d, want <= 2 for an edgeless graph", s.Size())
	}
}

func TestSolveMaxKTwoDisjointTriangles(t *testing.T) {
	g := twoDisjointTriangles()
	p := DefaultParams(3, 1.0)
	rng := rand.New(rand.NewSource(5))

	s := SolveMaxK(g, p, rng)
	if s.Size() != 3 {
		t.Errorf("Size() = %d, want 3 (cannot merge across components)", s.Size())
	}
	if math.Abs(s.Density()-1.0) > solution.Epsilon {
		t.Errorf("Density() = %v, want 1.0", s.Density())
	}
}

func TestSolveFixedKDeterministic(t *testing.T) {
	g := k5MinusOneEdge()
	p := DefaultParams(4, 0.9)

	r1 := SolveFixedK(g, 4, p, rand.New(rand.NewSource(42)))
	r2 := SolveFixedK(g, 4, p, rand.New(rand.NewSource(42)))

	if r1.Size() != r2.Size() || r1.Edges() != r2.Edges() {
		t.Fatalf("identical seeds produced different results: (%d,%d) vs (%d,%d)",
			r1.Size(), r1.Edges(), r2.Size(), r2.Edges())
	}
	for v := 0; v < g.N(); v++ {
		if r1.Contains(v) != r2.Contains(v) {
			t.Fatalf("identical seeds produced different membership at vertex %d", v)
		}
	}
}

func TestUbEdgesMatchesCompleteGraph(t *testing.T) {
	g := k5MinusOneEdge()
	prefix := degreePrefixSums(g)
	// K5 minus one edge: every vertex has degree 4 except the two
	// endpoints of the missing edge (degree 3). ub_edges(5) should equal
	// the graph's actual edge count since k-1 = 4 = max possible degree.
	if got, want := ubEdges(prefix, 5), g.M(); got != want {
		t.Errorf("ubEdges(5) = %d, want %d", got, want)
	}
}
