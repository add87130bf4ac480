package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"

	"github.com/gammaqc/tsqc/internal/graph"
	"github.com/gammaqc/tsqc/internal/search"
	"github.com/gammaqc/tsqc/internal/solution"
)

var solveCommand = &cli.Command{
	Name:      "solve",
	Aliases:   []string{"s"},
	Usage:     "find a dense γ-quasi-clique of a fixed size k",
	ArgsUsage: "<graph.clq> <k>",
	Flags:     flagsSlice("gamma", "seed", "max-iterations", "stagnation-limit", "log-file", "quiet"),
	Action:    solveAction,
}

func solveAction(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 2 {
		return fmt.Errorf("expected exactly 2 arguments <graph.clq> <k>, got %d", c.Args().Len())
	}

	g, err := graph.ParseDIMACSFile(c.Args().Get(0))
	if err != nil {
		return fmt.Errorf("could not parse graph: %w", err)
	}

	k, err := parsePositiveInt(c.Args().Get(1))
	if err != nil {
		return fmt.Errorf("invalid k: %w", err)
	}
	if k > g.N() {
		return fmt.Errorf("k=%d exceeds graph order n=%d", k, g.N())
	}

	gamma := c.Float64("gamma")
	if gamma <= 0 || gamma > 1 {
		return fmt.Errorf("gamma must be in (0, 1], got %v", gamma)
	}

	p := search.DefaultParams(k, gamma)
	p.MaxIterations = int(c.Int("max-iterations"))
	p.StagnationLimit = int(c.Int("stagnation-limit"))

	logger, closeLog, err := buildLogger(c)
	if err != nil {
		return err
	}
	defer closeLog()

	rng := rand.New(rand.NewSource(resolveSeed(c.Int64("seed"))))

	logger.LogStart(k, gamma)
	result := search.SolveFixedK(g, k, p, rng)
	logger.LogEnd(0, result.Density(), result.IsGammaFeasible(gamma))

	renderSolveResult(g, result, gamma)
	return nil
}

func renderSolveResult(g *graph.Graph, s *solution.Solution, gamma float64) {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle("Quasi-Clique Result")
	tw.AppendHeader(table.Row{"metric", "value"})
	tw.AppendRow(table.Row{"vertices (n)", g.N()})
	tw.AppendRow(table.Row{"|S|", s.Size()})
	tw.AppendRow(table.Row{"m(S)", s.Edges()})
	tw.AppendRow(table.Row{"density ρ(S)", fmt.Sprintf("%.6f", s.Density())})
	tw.AppendRow(table.Row{"γ target", fmt.Sprintf("%.6f", gamma)})
	tw.AppendRow(table.Row{"feasible", s.IsGammaFeasible(gamma)})
	tw.Render()
}
