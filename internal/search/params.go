// Package search implements the two solver entry points: SolveFixedK (the
// multi-start adaptive tabu search for one target size) and SolveMaxK (the
// k-ascending driver that calls it repeatedly under a degree-bound prune).
package search

// Params bundles every tunable of the search, mirroring the teacher's
// scaled-by-problem-size config pattern.
type Params struct {
	// GammaTarget is the required density γ ∈ (0,1].
	GammaTarget float64

	// InitialTenureU, InitialTenureV seed a fresh DualTabu before its
	// first UpdateTenures call.
	InitialTenureU int
	InitialTenureV int

	// StagnationLimit (L) is the number of consecutive non-improving
	// inner-loop steps before a perturbation is triggered.
	StagnationLimit int

	// MaxIterations (I_max) is the global cap on moves across all
	// restarts within one SolveFixedK call.
	MaxIterations int

	// RunIterCap bounds moves within a single restart's inner loop,
	// subordinate to StagnationLimit and MaxIterations — optional
	// belt-and-suspenders safety against a single run monopolizing the
	// iteration budget.
	RunIterCap int
}

// DefaultParams returns Params for a target clique size k, following the
// teacher's DefaultBLSParams(numFreeKeys) pattern. Only RunIterCap is
// derived from k; the stagnation limit and iteration cap are fixed values.
func DefaultParams(k int, gammaTarget float64) Params {
	return Params{
		GammaTarget:     gammaTarget,
		InitialTenureU:  7,
		InitialTenureV:  7,
		StagnationLimit: 200,
		MaxIterations:   100_000,
		RunIterCap:      runIterCap(k),
	}
}

func runIterCap(k int) int {
	n := 4 * k * k
	if n < 1 {
		return 1
	}
	return n
}
