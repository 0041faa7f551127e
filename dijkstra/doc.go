// SPDX-License-Identifier: MIT

// Package dijkstra computes a multi-source shortest-path forest on an
// edge-weighted digraph with non-negative weights.
//
// Overview:
//
//   - Every source starts at distance 0. All sources together behave like a
//     single virtual source joined to each of them by a zero-weight edge, so
//     dist[v] is the distance from the nearest source.
//   - Vertices are settled in non-decreasing order of final distance using
//     an indexed binary heap (package ipq) with true decrease-key: every
//     vertex has at most one live queue entry.
//   - Extraction ties are broken by the smaller vertex id, so two runs on the
//     same graph and source set return identical tables.
//
// Vertex lifecycle:
//
//	Unvisited ──relax──▶ Frontier ──extract──▶ Settled
//	(dist = +Inf)         (queued)              (dist final)
//
// Key features:
//
//   - Sources(ids...): one or more starting vertices (duplicates collapse).
//   - WithMaxDistance(d): vertices farther than d stay Unvisited.
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are impassable.
//   - WithLogger(l): debug tracing through a logrus.FieldLogger.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V); each vertex is inserted and extracted at most
//     once and each successful relaxation costs one O(log V) heap operation.
//   - Space: O(V) for tables and queue; the graph is only read.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:          nil *digraph.Digraph.
//   - ErrInvalidSourceSet:  no sources, or a source outside [0, V).
//   - ErrBadMaxDistance:    WithMaxDistance given a negative or NaN value.
//   - ErrBadInfThreshold:   WithInfEdgeThreshold given a value ≤ 0 or NaN.
//   - ErrCorruptRun:        an internal queue operation failed; the run is
//     aborted and no partial result is returned.
//
// Weight precision:
//
//   - Distances are float32 sums, matching digraph.Weight. Long paths over
//     many fractional weights accumulate single-precision rounding.
//
// Thread safety:
//
//   - A run owns its queue and tables exclusively and never suspends.
//   - The *digraph.Digraph is only read, so independent runs (with different
//     source sets) may share one graph across goroutines.
//
// See also:
//
//   - digraph.Builder: constructing the immutable input graph.
//   - report.Build: turning a Result into printable rows.
package dijkstra
