// SPDX-License-Identifier: MIT

// Package msdijkstra computes multi-source shortest-path forests over
// edge-weighted directed graphs with non-negative weights.
//
// The module is split into small packages, leaf first:
//
//	digraph/  - immutable weighted digraph, all-or-nothing Builder, reachability
//	ipq/      - indexed min-priority queue with decrease-key
//	dijkstra/ - the search itself: options, per-run state, Result snapshot
//	ewd/      - EWD text format reader/writer and source-list parsing
//	report/   - forest rows rendered as a table, CSV, JSON or run metrics
//	cmd/msdijkstra - command-line front end
//
// Quick start:
//
//	g, err := ewd.ReadFile("tinyEWD.txt")
//	if err != nil {
//		return err
//	}
//	res, err := dijkstra.Dijkstra(g, dijkstra.Sources(2, 4, 5, 7))
//	if err != nil {
//		return err
//	}
//	d, _ := res.Distance(0)
//
// Every vertex ends up with the length of the shortest path from its nearest
// source and the predecessor on that path; vertices no source can reach keep
// dijkstra.Infinity and dijkstra.NoPredecessor.
package msdijkstra
