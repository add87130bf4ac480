package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/gammaqc/tsqc/internal/mqlog"
)

// parsePositiveInt parses s as a strictly positive integer.
func parsePositiveInt(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("not an integer: %w", err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("must be positive, got %d", v)
	}
	return v, nil
}

// buildLogger opens the --log-file destination (if any) and returns an
// mqlog.Logger writing to it plus stdout (unless --quiet), and a close
// function the caller must defer.
func buildLogger(c *cli.Command) (*mqlog.Logger, func(), error) {
	var consoleW io.Writer
	if !c.Bool("quiet") {
		consoleW = os.Stdout
	}

	logPath := c.String("log-file")
	if logPath == "" {
		return mqlog.New(consoleW, nil), func() {}, nil
	}

	f, err := os.Create(logPath)
	if err != nil {
		return nil, nil, fmt.Errorf("could not create log file %s: %w", logPath, err)
	}
	return mqlog.New(consoleW, f), func() { _ = f.Close() }, nil
}
