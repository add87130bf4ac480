package graph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseDIMACS parses the DIMACS .clq ASCII format from any reader.
//
//	c ...              comment line, ignored
//	p edge N M         declares N vertices (M is advisory, not trusted)
//	e U V              undirected edge, U and V are 1-based
//
// Blank lines are ignored. Duplicate edges collapse; self-loops are ignored.
func ParseDIMACS(r io.Reader) (*Graph, error) {
	scanner := bufio.NewScanner(r)
	n := -1
	var edges [][2]int

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "p":
			if len(fields) < 3 {
				return nil, fmt.Errorf("dimacs: line %d: malformed problem line %q", lineNo, line)
			}
			parsed, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("dimacs: line %d: bad vertex count: %w", lineNo, err)
			}
			n = parsed
		case "e":
			if len(fields) < 3 {
				return nil, fmt.Errorf("dimacs: line %d: malformed edge line %q", lineNo, line)
			}
			u, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("dimacs: line %d: bad endpoint: %w", lineNo, err)
			}
			v, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("dimacs: line %d: bad endpoint: %w", lineNo, err)
			}
			edges = append(edges, [2]int{u - 1, v - 1})
		default:
			return nil, fmt.Errorf("dimacs: line %d: unrecognised line %q", lineNo, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dimacs: read error: %w", err)
	}
	if n < 0 {
		return nil, fmt.Errorf("dimacs: missing problem line (\"p edge N M\")")
	}

	for _, e := range edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			return nil, fmt.Errorf("dimacs: edge endpoint out of range 1..%d", n)
		}
	}

	return FromEdgeList(n, edges), nil
}

// ParseDIMACSFile opens path and parses it as DIMACS .clq.
func ParseDIMACSFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dimacs: could not open %s: %w", path, err)
	}
	defer f.Close()

	g, err := ParseDIMACS(f)
	if err != nil {
		return nil, fmt.Errorf("dimacs: %s: %w", path, err)
	}
	return g, nil
}
