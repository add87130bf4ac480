package benchmark

import (
	"math/rand"
	"testing"

	"github.com/gammaqc/tsqc/internal/construct"
	"github.com/gammaqc/tsqc/internal/graph"
)

func k4Graph() *graph.Graph {
	return graph.FromEdgeList(4, [][2]int{
		{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3},
	})
}

func fourCycleGraph() *graph.Graph {
	return graph.FromEdgeList(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
}

func TestRunReachesCliqueOnK4(t *testing.T) {
	g := k4Graph()
	rng := rand.New(rand.NewSource(1))
	seed := construct.RandomK(g, 4, rng)

	res, err := Run(g, seed, AcceptDropSlow, 50)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if res.Density != 1.0 {
		t.Errorf("Density = %v, want 1.0", res.Density)
	}
	if res.Solution.Size() != 4 {
		t.Errorf("Size() = %d, want 4", res.Solution.Size())
	}
}

func TestRunPreservesSubsetSize(t *testing.T) {
	g := fourCycleGraph()
	rng := rand.New(rand.NewSource(2))
	seed := construct.RandomK(g, 3, rng)

	res, err := Run(g, seed, AcceptTemp, 20)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if res.Solution.Size() != 3 {
		t.Errorf("Size() = %d, want 3 (mutate only swaps, never resizes)", res.Solution.Size())
	}
}

func TestMutateNoopWhenSeedSpansGraph(t *testing.T) {
	g := fourCycleGraph()
	rng := rand.New(rand.NewSource(3))
	seed := construct.RandomK(g, 4, rng)

	gen := &genome{sol: seed.Clone()}
	before := gen.sol.Density()
	gen.Mutate(rng)
	if gen.sol.Density() != before || gen.sol.Size() != 4 {
		t.Errorf("Mutate changed a solution spanning the whole graph")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := k4Graph()
	rng := rand.New(rand.NewSource(4))
	seed := construct.RandomK(g, 3, rng)

	gen := &genome{sol: seed}
	clone := gen.Clone().(*genome)

	clone.Mutate(rand.New(rand.NewSource(5)))
	if gen.sol.Density() == clone.sol.Density() && gen.sol.Size() == clone.sol.Size() {
		for v := 0; v < g.N(); v++ {
			if gen.sol.Contains(v) != clone.sol.Contains(v) {
				return
			}
		}
		t.Errorf("mutating the clone also changed the original")
	}
}

func TestUnknownAcceptStrategyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic for an unknown accept strategy")
		}
	}()
	acceptFunc("bogus")(1, 10, 0, 0)
}
