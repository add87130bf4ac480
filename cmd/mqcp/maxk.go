package main

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/urfave/cli/v3"

	"github.com/gammaqc/tsqc/internal/graph"
	"github.com/gammaqc/tsqc/internal/search"
)

var maxkCommand = &cli.Command{
	Name:      "maxk",
	Aliases:   []string{"m"},
	Usage:     "find the largest γ-quasi-clique by ascending k",
	ArgsUsage: "<graph.clq>",
	Flags:     flagsSlice("gamma", "seed", "max-iterations", "stagnation-limit", "log-file", "quiet"),
	Action:    maxkAction,
}

func maxkAction(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("expected exactly 1 argument <graph.clq>, got %d", c.Args().Len())
	}

	g, err := graph.ParseDIMACSFile(c.Args().Get(0))
	if err != nil {
		return fmt.Errorf("could not parse graph: %w", err)
	}

	gamma := c.Float64("gamma")
	if gamma <= 0 || gamma > 1 {
		return fmt.Errorf("gamma must be in (0, 1], got %v", gamma)
	}

	p := search.DefaultParams(g.N(), gamma)
	p.MaxIterations = int(c.Int("max-iterations"))
	p.StagnationLimit = int(c.Int("stagnation-limit"))

	logger, closeLog, err := buildLogger(c)
	if err != nil {
		return err
	}
	defer closeLog()

	rng := rand.New(rand.NewSource(resolveSeed(c.Int64("seed"))))

	logger.LogStart(0, gamma)
	result := search.SolveMaxK(g, p, rng)
	logger.LogEnd(0, result.Density(), result.IsGammaFeasible(gamma))

	renderSolveResult(g, result, gamma)
	return nil
}
