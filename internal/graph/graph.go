// Package graph implements the immutable undirected simple graph the solver
// operates on: contiguous integer vertex indices, bit-row adjacency, and
// DIMACS .clq parsing.
package graph

import (
	"fmt"

	"github.com/gammaqc/tsqc/internal/bitset"
)

// Graph is an immutable undirected simple graph over vertices 0..n-1.
// Adjacency is stored as one bitset.Set row per vertex; rows are kept
// symmetric by construction.
type Graph struct {
	n    int
	rows []*bitset.Set
	m    int
}

// New returns an edgeless graph over n vertices.
func New(n int) *Graph {
	rows := make([]*bitset.Set, n)
	for i := range rows {
		rows[i] = bitset.New(n)
	}
	return &Graph{n: n, rows: rows}
}

// FromEdgeList builds a Graph from an explicit 0-based edge list. Duplicate
// edges and self-loops are silently collapsed/ignored, matching the DIMACS
// parser's "edges are symmetric; duplicate edges collapse" contract.
func FromEdgeList(n int, edges [][2]int) *Graph {
	g := New(n)
	for _, e := range edges {
		u, v := e[0], e[1]
		if u == v {
			continue
		}
		g.addEdge(u, v)
	}
	return g
}

func (g *Graph) addEdge(u, v int) {
	if g.rows[u].Test(v) {
		return
	}
	g.rows[u].SetBit(v, true)
	g.rows[v].SetBit(u, true)
	g.m++
}

// N returns the number of vertices.
func (g *Graph) N() int { return g.n }

// M returns the number of edges.
func (g *Graph) M() int { return g.m }

// Degree returns the degree of v.
func (g *Graph) Degree(v int) int { return g.rows[v].Count() }

// Row returns the raw adjacency bitset for v. Callers must not mutate it.
func (g *Graph) Row(v int) *bitset.Set { return g.rows[v] }

// Neighbours iterates the neighbours of v in ascending order.
func (g *Graph) Neighbours(v int) func(func(int) bool) {
	return g.rows[v].All()
}

// EdgeList returns every edge (u, v) with u < v.
func (g *Graph) EdgeList() [][2]int {
	edges := make([][2]int, 0, g.m)
	for u := 0; u < g.n; u++ {
		for v := range g.rows[u].All() {
			if v > u {
				edges = append(edges, [2]int{u, v})
			}
		}
	}
	return edges
}

// CountNeighboursIn returns |N(v) ∩ other|.
func (g *Graph) CountNeighboursIn(v int, other *bitset.Set) int {
	return g.rows[v].CountIntersection(other)
}

// Validate reports an error if n is negative, useful at parse/construction
// boundaries before the graph is handed to the solver.
func (g *Graph) Validate() error {
	if g.n < 0 {
		return fmt.Errorf("graph: negative vertex count %d", g.n)
	}
	return nil
}
