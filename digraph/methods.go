// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Read-only queries over a built Digraph.
// Determinism:
//   - Adjacency(v) is sorted by target, Edges() by (From, To).

package digraph

import "fmt"

// VertexCount returns |V|.
func (g *Digraph) VertexCount() int { return g.vertexCount }

// EdgeCount returns |E|.
func (g *Digraph) EdgeCount() int { return g.edgeCount }

// HasVertex reports whether v is a valid vertex id.
func (g *Digraph) HasVertex(v int) bool { return v >= 0 && v < g.vertexCount }

// Adjacency returns the outgoing arcs of v, sorted by target.
// The returned slice is shared with the graph and must not be modified.
// Complexity: O(1).
func (g *Digraph) Adjacency(v int) ([]Arc, error) {
	if !g.HasVertex(v) {
		return nil, g.outOfRange(v)
	}

	return g.arcs[v], nil
}

// OutDegree returns the number of outgoing edges of v.
func (g *Digraph) OutDegree(v int) (int, error) {
	if !g.HasVertex(v) {
		return 0, g.outOfRange(v)
	}

	return len(g.arcs[v]), nil
}

// Weight returns the weight of the edge from → to.
// Returns ErrVertexOutOfRange for invalid endpoints and ErrEdgeNotFound when
// no such edge exists.
// Complexity: O(1).
func (g *Digraph) Weight(from, to int) (Weight, error) {
	if !g.HasVertex(from) {
		return 0, g.outOfRange(from)
	}
	if !g.HasVertex(to) {
		return 0, g.outOfRange(to)
	}
	w, ok := g.weights[from][to]
	if !ok {
		return 0, fmt.Errorf("%w: %d→%d", ErrEdgeNotFound, from, to)
	}

	return w, nil
}

// HasEdge reports whether the edge from → to exists. Invalid ids yield false.
func (g *Digraph) HasEdge(from, to int) bool {
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return false
	}
	_, ok := g.weights[from][to]

	return ok
}

// Edges returns every edge, sorted by (From, To).
// Complexity: O(V + E).
func (g *Digraph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for from, list := range g.arcs {
		for _, a := range list {
			out = append(out, Edge{From: from, To: a.To, Weight: a.Weight})
		}
	}

	return out
}

func (g *Digraph) outOfRange(v int) error {
	return fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, v, g.vertexCount)
}
