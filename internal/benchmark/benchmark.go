// Package benchmark wraps a Solution as an eaopt.Genome so a
// simulated-annealing baseline can be run alongside the tabu search, as an
// alternative-paradigm point of comparison.
package benchmark

import (
	"math"
	"math/rand"

	"github.com/MaxHalford/eaopt"

	"github.com/gammaqc/tsqc/internal/graph"
	"github.com/gammaqc/tsqc/internal/solution"
)

// genome adapts a *solution.Solution to eaopt.Genome. Mutate swaps one
// random in-set vertex for one random out-of-set vertex; Evaluate returns
// -Density() since eaopt minimizes.
type genome struct {
	sol *solution.Solution
}

var _ eaopt.Genome = (*genome)(nil)

func (g *genome) Evaluate() (float64, error) {
	return -g.sol.Density(), nil
}

func (g *genome) Mutate(rng *rand.Rand) {
	s := g.sol
	if s.Size() == 0 || s.Size() == s.Graph().N() {
		return
	}
	u := randomMember(s, rng)
	v := randomOutsider(s, rng)
	s.Remove(u)
	s.Add(v)
}

func (g *genome) Crossover(other eaopt.Genome, rng *rand.Rand) {}

func (g *genome) Clone() eaopt.Genome {
	return &genome{sol: g.sol.Clone()}
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
	panic("benchmark: randomMember called on empty solution")
}

func randomOutsider(s *solution.Solution, rng *rand.Rand) int {
	n := s.Graph().N() - s.Size()
	idx := rng.Intn(n)
	i := 0
	for v := 0; v < s.Graph().N(); v++ {
		if s.Contains(v) {
			continue
		}
		if i == idx {
			return v
		}
		i++
	}
	panic("benchmark: randomOutsider called on a solution spanning the whole graph")
}

// Result reports the outcome of a simulated-annealing baseline run.
type Result struct {
	Solution *solution.Solution
	Density  float64
}

// AcceptStrategy names one of the teacher's simulated-annealing acceptance
// functions, reused unchanged: the probability of accepting a worse move
// decays over the run's generations in a shape chosen by name.
type AcceptStrategy string

const (
	AcceptAlways   AcceptStrategy = "always"
	AcceptNever    AcceptStrategy = "never"
	AcceptDropSlow AcceptStrategy = "drop-slow"
	AcceptTemp     AcceptStrategy = "temp"
	AcceptCold     AcceptStrategy = "cold"
	AcceptDropFast AcceptStrategy = "drop-fast"
)

func acceptFunc(strategy AcceptStrategy) func(g, ng uint, e0, e1 float64) float64 {
	return func(g, ng uint, e0, e1 float64) float64 {
		switch strategy {
		case AcceptAlways:
			return 1.0
		case AcceptNever:
			return 0.0
		case AcceptDropSlow:
			t := float64(g) / float64(ng)
			return (math.Cos(t*math.Pi) + 1.0) / 2.0
		case AcceptTemp:
			return 1.0 - float64(g)/float64(ng)
		case AcceptCold:
			t := 1.0 - float64(g)/float64(ng)
			return 0.5 * t
		case AcceptDropFast:
			t := 1.0 - float64(g)/float64(ng)
			return math.Exp(-3.0 * (1 - t))
		default:
			panic("benchmark: unknown accept strategy " + string(strategy))
		}
	}
}

// Run optimizes a k-vertex subset of g by simulated annealing for
// generations iterations, using seed as the starting subset (any k-sized
// Solution; its membership is not mutated). Returns the densest subset the
// SA run's hall of fame converged on.
func Run(g *graph.Graph, seed *solution.Solution, strategy AcceptStrategy, generations int) (Result, error) {
	cfg := eaopt.NewDefaultGAConfig()
	cfg.Model = eaopt.ModSimulatedAnnealing{Accept: acceptFunc(strategy)}
	cfg.NGenerations = uint(generations)

	ga, err := cfg.NewGA()
	if err != nil {
		return Result{}, err
	}

	start := seed.Clone()
	err = ga.Minimize(func(rng *rand.Rand) eaopt.Genome {
		return &genome{sol: start}
	})
	if err != nil {
		return Result{}, err
	}

	best := ga.HallOfFame[0].Genome.(*genome)
	return Result{Solution: best.sol, Density: best.sol.Density()}, nil
}
