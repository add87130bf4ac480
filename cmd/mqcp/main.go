// Package main provides the CLI entrypoint for the mqcp command-line tool.
//
// solve.go implements the "solve" command, running the tabu search at a
// fixed k.
//
// maxk.go implements the "maxk" command, ascending k to find the largest
// γ-feasible subset.
//
// parse.go implements the "parse" command, loading a DIMACS graph file and
// printing a summary table.
//
// benchmark.go implements the "benchmark" command, comparing the tabu
// search against a simulated-annealing baseline.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v3"
)

// appFlagsMap centralizes CLI flags shared across commands, so each command
// can select only the flags it needs.
var appFlagsMap = map[string]cli.Flag{
	"gamma": &cli.Float64Flag{
		Name:    "gamma",
		Aliases: []string{"g"},
		Usage:   "density threshold γ in (0, 1]",
		Value:   0.9,
	},
	"seed": &cli.Int64Flag{
		Name:  "seed",
		Usage: "PRNG seed; 0 derives a seed from the current time",
		Value: 0,
	},
	"max-iterations": &cli.IntFlag{
		Name:  "max-iterations",
		Usage: "total move budget across all restarts",
		Value: 100_000,
	},
	"stagnation-limit": &cli.IntFlag{
		Name:  "stagnation-limit",
		Usage: "non-improving moves before a perturbation triggers",
		Value: 200,
	},
	"log-file": &cli.StringFlag{
		Name:  "log-file",
		Usage: "JSONL event log destination; empty disables file logging",
	},
	"quiet": &cli.BoolFlag{
		Name:    "quiet",
		Aliases: []string{"q"},
		Usage:   "suppress console progress logging",
	},
	"generations": &cli.UintFlag{
		Name:    "generations",
		Aliases: []string{"gens"},
		Usage:   "number of simulated-annealing generations",
		Value:   500,
	},
	"accept-worse": &cli.StringFlag{
		Name:    "accept-worse",
		Aliases: []string{"aw"},
		Usage:   fmt.Sprintf("accept-worse schedule: %v", validAcceptStrategies),
		Value:   "drop-slow",
	},
}

// flagsSlice converts selected flag keys from appFlagsMap to a slice, in the
// order requested.
func flagsSlice(keys ...string) []cli.Flag {
	flags := make([]cli.Flag, 0, len(keys))
	for _, k := range keys {
		if f, ok := appFlagsMap[k]; ok {
			flags = append(flags, f)
		}
	}
	return flags
}

func main() {
	cmd := &cli.Command{
		Name:  "mqcp",
		Usage: "a tabu-search solver for the maximum γ-quasi-clique problem",
		Commands: []*cli.Command{
			solveCommand,
			maxkCommand,
			parseCommand,
			benchmarkCommand,
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveSeed returns seed unchanged, or a clock-derived seed if it is 0.
func resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}
