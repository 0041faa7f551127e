// SPDX-License-Identifier: MIT
//
// File: builder.go
// Role: All-or-nothing construction of a Digraph from an ordered edge stream.

package digraph

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Builder accumulates edges for a Digraph.
//
// The first error is recorded and returned by every later call, and Build
// then yields no graph.
type Builder struct {
	vertexCount int
	edgeCount   int // declared; < 0 means not declared
	added       int

	weights []map[int]Weight
	err     error
}

// NewBuilder prepares a Builder for vertexCount vertices and edgeCount
// declared edges. Pass a negative edgeCount to skip the count check in Build.
// A vertexCount outside [0, MaxVertexCount] is recorded as the Builder's error.
// Complexity: O(V).
func NewBuilder(vertexCount, edgeCount int) *Builder {
	b := &Builder{vertexCount: vertexCount, edgeCount: edgeCount}
	switch {
	case vertexCount < 0:
		b.err = fmt.Errorf("%w: %d", ErrNegativeCount, vertexCount)
	case vertexCount > MaxVertexCount:
		b.err = fmt.Errorf("%w: %d > %d", ErrTooManyVertices, vertexCount, MaxVertexCount)
	default:
		// Per-vertex maps are created by the first edge leaving the vertex.
		b.weights = make([]map[int]Weight, vertexCount)
	}

	return b
}

// AddEdge appends the edge from → to with weight w.
//
// Steps:
//  1. Return the sticky error if an earlier call failed.
//  2. Validate both endpoints (ErrVertexOutOfRange).
//  3. Validate the weight (ErrInvalidWeight, ErrNegativeWeight).
//  4. Reject a second edge for the same ordered pair (ErrDuplicateEdge).
//
// Complexity: O(1) amortized.
func (b *Builder) AddEdge(from, to int, w Weight) error {
	if b.err != nil {
		return b.err
	}

	// 1) Endpoint bounds
	if from < 0 || from >= b.vertexCount {
		return b.fail(fmt.Errorf("%w: source %d not in [0,%d)", ErrVertexOutOfRange, from, b.vertexCount))
	}
	if to < 0 || to >= b.vertexCount {
		return b.fail(fmt.Errorf("%w: target %d not in [0,%d)", ErrVertexOutOfRange, to, b.vertexCount))
	}

	// 2) Weight policy
	if err := validWeight(w); err != nil {
		return b.fail(fmt.Errorf("%w: edge %d→%d weight=%g", err, from, to, w))
	}

	// 3) Single edge per ordered pair
	m := b.weights[from]
	if _, ok := m[to]; ok {
		return b.fail(fmt.Errorf("%w: %d→%d", ErrDuplicateEdge, from, to))
	}
	if m == nil {
		m = make(map[int]Weight)
		b.weights[from] = m
	}

	m[to] = w
	b.added++

	return nil
}

// Err returns the first error recorded by the Builder, if any.
func (b *Builder) Err() error { return b.err }

// Build finalizes the Digraph. On any recorded error, or if the declared edge
// count was not met exactly, Build returns a nil graph and the error.
// A successful Build spends the Builder: later AddEdge and Build calls
// return ErrBuilderSpent.
// Complexity: O(V + E log E).
func (b *Builder) Build() (*Digraph, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.edgeCount >= 0 && b.added != b.edgeCount {
		return nil, b.fail(fmt.Errorf("%w: declared %d, got %d", ErrEdgeCountMismatch, b.edgeCount, b.added))
	}

	arcs := make([][]Arc, b.vertexCount)
	for v, m := range b.weights {
		list := make([]Arc, 0, len(m))
		for to, w := range m {
			list = append(list, Arc{To: to, Weight: w})
		}
		slices.SortFunc(list, func(a, c Arc) int { return a.To - c.To })
		arcs[v] = list
	}

	g := &Digraph{
		vertexCount: b.vertexCount,
		edgeCount:   b.added,
		weights:     b.weights,
		arcs:        arcs,
	}
	// The graph now owns the maps.
	b.fail(ErrBuilderSpent)

	return g, nil
}

func (b *Builder) fail(err error) error {
	b.err = err
	b.weights = nil

	return err
}

// New builds a Digraph with vertexCount vertices from a literal edge list.
// The edge count is taken from len(edges).
func New(vertexCount int, edges ...Edge) (*Digraph, error) {
	b := NewBuilder(vertexCount, len(edges))
	for _, e := range edges {
		if err := b.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}

	return b.Build()
}
