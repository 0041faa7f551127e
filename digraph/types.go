// SPDX-License-Identifier: MIT

package digraph

import (
	"errors"
	"math"
)

// Sentinel errors for digraph construction and queries.
var (
	// ErrVertexOutOfRange indicates a vertex id outside [0, VertexCount).
	ErrVertexOutOfRange = errors.New("digraph: vertex out of range")

	// ErrNegativeWeight indicates an edge with weight < 0.
	ErrNegativeWeight = errors.New("digraph: negative edge weight")

	// ErrInvalidWeight indicates an edge weight that is NaN or infinite.
	ErrInvalidWeight = errors.New("digraph: invalid edge weight")

	// ErrDuplicateEdge indicates a second edge for an ordered pair that already has one.
	ErrDuplicateEdge = errors.New("digraph: duplicate edge")

	// ErrEdgeNotFound indicates a query for an ordered pair with no edge.
	ErrEdgeNotFound = errors.New("digraph: edge not found")

	// ErrNegativeCount indicates a negative vertex count.
	ErrNegativeCount = errors.New("digraph: negative vertex count")

	// ErrTooManyVertices indicates a vertex count above MaxVertexCount.
	ErrTooManyVertices = errors.New("digraph: vertex count exceeds limit")

	// ErrBuilderSpent indicates use of a Builder after a successful Build.
	ErrBuilderSpent = errors.New("digraph: builder already built")

	// ErrEdgeCountMismatch indicates that the number of edges supplied differs
	// from the declared edge count.
	ErrEdgeCountMismatch = errors.New("digraph: edge count mismatch")
)

// MaxVertexCount bounds the vertex count accepted by NewBuilder. Every run
// allocates a few words per vertex, so larger graphs are refused up front.
const MaxVertexCount = 1 << 26

// Weight is the numeric type of edge weights and path distances.
// Single precision matches the EWD data sets this package is fed with.
type Weight = float32

// Edge is a directed, weighted connection From → To.
type Edge struct {
	From   int
	To     int
	Weight Weight
}

// Arc is one outgoing adjacency entry: the target vertex and edge weight.
type Arc struct {
	To     int
	Weight Weight
}

// Digraph is an immutable edge-weighted directed graph over vertices
// [0, VertexCount).
//
// weights[v] maps target → weight for O(1) Weight lookups and is nil when v
// has no outgoing edge; arcs[v] holds the same entries sorted by target for
// deterministic iteration.
type Digraph struct {
	vertexCount int
	edgeCount   int

	weights []map[int]Weight
	arcs    [][]Arc
}

// validWeight reports the sentinel for an unusable weight, or nil.
func validWeight(w Weight) error {
	f := float64(w)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return ErrInvalidWeight
	}
	if w < 0 {
		return ErrNegativeWeight
	}

	return nil
}
