package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"

	"github.com/gammaqc/tsqc/internal/graph"
)

var parseCommand = &cli.Command{
	Name:      "parse",
	Aliases:   []string{"p"},
	Usage:     "load a DIMACS .clq graph and print a summary",
	ArgsUsage: "<graph.clq>",
	Action:    parseAction,
}

func parseAction(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("expected exactly 1 argument <graph.clq>, got %d", c.Args().Len())
	}

	g, err := graph.ParseDIMACSFile(c.Args().Get(0))
	if err != nil {
		return fmt.Errorf("could not parse graph: %w", err)
	}
	if err := g.Validate(); err != nil {
		return fmt.Errorf("graph failed validation: %w", err)
	}

	n, m := g.N(), g.M()
	maxEdges := n * (n - 1) / 2
	density := 0.0
	if maxEdges > 0 {
		density = float64(m) / float64(maxEdges)
	}

	minDeg, maxDeg, sumDeg := n, 0, 0
	for v := 0; v < n; v++ {
		d := g.Degree(v)
		if d < minDeg {
			minDeg = d
		}
		if d > maxDeg {
			maxDeg = d
		}
		sumDeg += d
	}
	avgDeg := 0.0
	if n > 0 {
		avgDeg = float64(sumDeg) / float64(n)
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle(c.Args().Get(0))
	tw.AppendHeader(table.Row{"metric", "value"})
	tw.AppendRow(table.Row{"vertices (n)", n})
	tw.AppendRow(table.Row{"edges (m)", m})
	tw.AppendRow(table.Row{"graph density", fmt.Sprintf("%.6f", density)})
	tw.AppendRow(table.Row{"min degree", minDeg})
	tw.AppendRow(table.Row{"max degree", maxDeg})
	tw.AppendRow(table.Row{"avg degree", fmt.Sprintf("%.2f", avgDeg)})
	tw.Render()

	return nil
}
