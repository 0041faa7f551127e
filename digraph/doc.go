// SPDX-License-Identifier: MIT

// Package digraph provides an immutable, edge-weighted directed graph over
// dense integer vertex ids, the storage layer for multi-source shortest-path
// runs.
//
// A Digraph G = (V, E) is described by:
//
//   - VertexCount: vertices are the integers [0, VertexCount).
//   - For every vertex, an outgoing adjacency mapping target → weight.
//   - A single edge per ordered pair (from, to); parallel edges are rejected.
//   - Non-negative, finite float32 weights (self-loops are allowed).
//
// Construction:
//
//	// Streaming, all-or-nothing:
//	b := digraph.NewBuilder(4, 5)
//	_ = b.AddEdge(0, 1, 2.0)
//	...
//	g, err := b.Build()
//
//	// Or from a literal edge list:
//	g, err := digraph.New(4,
//	    digraph.Edge{From: 0, To: 1, Weight: 2.0},
//	    digraph.Edge{From: 1, To: 2, Weight: 1.0},
//	)
//
// The first failure seen by a Builder is sticky: later AddEdge calls return
// it again and Build returns a nil graph, so a partially built structure is
// never handed out.
//
// Determinism:
//
//   - Adjacency(v) returns arcs sorted by target id.
//   - Edges() returns edges sorted by (From, To).
//
// Errors:
//
//	ErrVertexOutOfRange  - vertex id outside [0, VertexCount).
//	ErrNegativeWeight    - edge weight < 0.
//	ErrInvalidWeight     - edge weight is NaN or ±Inf.
//	ErrDuplicateEdge     - the same ordered pair was added twice.
//	ErrEdgeNotFound      - Weight queried for a pair with no edge.
//	ErrNegativeCount     - negative vertex count.
//	ErrEdgeCountMismatch - declared and actual edge counts differ.
//
// Thread safety:
//
//   - A built *Digraph is never mutated, so any number of goroutines may read
//     it concurrently without locking.
//   - A *Builder is not safe for concurrent use.
package digraph
