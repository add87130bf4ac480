package search

import (
	"math"
	"math/rand"

	"github.com/gammaqc/tsqc/internal/construct"
	"github.com/gammaqc/tsqc/internal/graph"
	"github.com/gammaqc/tsqc/internal/neighbour"
	"github.com/gammaqc/tsqc/internal/perturb"
	"github.com/gammaqc/tsqc/internal/solution"
	"github.com/gammaqc/tsqc/internal/tabu"
)

// SolveFixedK runs the adaptive multi-start tabu search for a fixed target
// size k, returning the densest γ-feasible subset found, or the densest
// infeasible one if none reached γ within MaxIterations moves. Identical
// (g, k, p, rng) state reproduces an identical trajectory.
func SolveFixedK(g *graph.Graph, k int, p Params, rng *rand.Rand) *solution.Solution {
	required := requiredEdges(k, p.GammaTarget)
	maxEdges := k * (k - 1) / 2
	if required > maxEdges {
		return solution.New(g)
	}

	freq := neighbour.NewFreq(g.N())
	bestGlobal := solution.New(g)
	bestRho := 0.0
	moves := 0
	firstRun := true

	for moves < p.MaxIterations {
		cur := buildInitialSolution(g, k, freq, firstRun, rng)
		firstRun = false

		tb := tabu.New(g.N(), p.InitialTenureU, p.InitialTenureV)
		tb.UpdateTenures(cur.Size(), cur.Edges(), p.GammaTarget, rng)

		bestRun := cur.Clone()
		rhoRun := cur.Density()
		stagn := 0
		runMoves := 0

		for {
			neighbour.Step(cur, tb, freq, p.GammaTarget, bestRho, rng)
			moves++
			runMoves++

			if d := cur.Density(); d > rhoRun {
				rhoRun = d
				bestRun.CopyFrom(cur)
				stagn = 0
			} else {
				stagn++
			}

			if rhoRun+solution.Epsilon >= p.GammaTarget {
				return bestRun
			}

			if u1TightInfeasible(cur, required) {
				break
			}

			if stagn >= p.StagnationLimit {
				if rng.Float64() < pHeavy(k, maxEdges, cur.Edges(), required) {
					perturb.Heavy(cur, tb, freq, p.GammaTarget, rng)
				} else {
					perturb.Mild(cur, tb, freq, p.GammaTarget, rng)
				}
				stagn = 0
			}

			if moves >= p.MaxIterations || runMoves >= p.RunIterCap {
				break
			}
		}

		if rhoRun > bestRho {
			bestRho = rhoRun
			bestGlobal = bestRun.Clone()
		}
		for v := range bestRun.Members().All() {
			freq[v]++
		}
	}

	return bestGlobal
}

// requiredEdges returns ⌈γ·k(k-1)/2⌉.
func requiredEdges(k int, gamma float64) int {
	if k < 2 {
		return 0
	}
	return int(math.Ceil(gamma * float64(k*(k-1)/2)))
}

// buildInitialSolution builds S0 for one restart: greedy_random_k on the
// first restart of a SolveFixedK invocation, or a least-used-seed greedy
// extension on later restarts.
func buildInitialSolution(g *graph.Graph, k int, freq neighbour.Freq, firstRun bool, rng *rand.Rand) *solution.Solution {
	if firstRun {
		return construct.GreedyRandomK(g, k, rng)
	}
	return seedByFrequencyThenExtend(g, k, freq, rng)
}

// seedByFrequencyThenExtend picks the seed vertex from argmin(freq) (random
// tie-break), then greedily extends it exactly like construct.GreedyRandomK
// until |S| = k.
func seedByFrequencyThenExtend(g *graph.Graph, k int, freq neighbour.Freq, rng *rand.Rand) *solution.Solution {
	minF := freq[0]
	for _, f := range freq[1:] {
		if f < minF {
			minF = f
		}
	}
	var pool []int
	for v, f := range freq {
		if f == minF {
			pool = append(pool, v)
		}
	}
	seed := pool[rng.Intn(len(pool))]

	s := solution.New(g)
	s.Add(seed)
	for s.Size() < k {
		w, ok := construct.PickBestOutsider(g, s, rng)
		if !ok {
			break
		}
		s.Add(w)
	}
	return s
}

// u1TightInfeasible reports whether the tight one-swap upper bound proves
// the current solution cannot reach `required` edges in one further swap.
func u1TightInfeasible(s *solution.Solution, required int) bool {
	g := s.Graph()
	minIn := -1
	for u := range s.Members().All() {
		d := g.CountNeighboursIn(u, s.Members())
		if minIn == -1 || d < minIn {
			minIn = d
		}
	}
	if minIn == -1 {
		minIn = 0
	}
	maxOut := 0
	for v := 0; v < g.N(); v++ {
		if s.Contains(v) {
			continue
		}
		d := g.CountNeighboursIn(v, s.Members())
		if d > maxOut {
			maxOut = d
		}
	}
	gain := maxOut - minIn
	if gain < 0 {
		gain = 0
	}
	ub := s.Edges() + gain
	return ub < required
}

// pHeavy returns the probability of choosing a heavy perturbation over a
// mild one: min(deficit/(maxEdges - m(S)) + 2/k, 1).
func pHeavy(k, maxEdges, edges, required int) float64 {
	deficit := required - edges
	if deficit < 0 {
		deficit = 0
	}
	denom := maxEdges - edges
	var p float64
	if denom > 0 {
		p = float64(deficit)/float64(denom) + 2/float64(k)
	} else {
		p = 1
	}
	if p > 1 {
		p = 1
	}
	return p
}
