// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/msdijkstra/digraph"
)

// Stats counts queue activity during one run.
type Stats struct {
	Extractions  int // vertices settled
	Insertions   int // vertices moved to the Frontier (sources included)
	Relaxations  int // successful edge relaxations
	DecreaseKeys int // relaxations that lowered a queued key
}

// Result is the read-only outcome of a run: the shortest-path forest as a
// distance table and a predecessor table.
//
// Slices returned by Distances, Predecessors and Sources are copies.
type Result struct {
	sources  []int
	isSource []bool
	dist     []digraph.Weight
	pred     []int
	state    []VertexState
	stats    Stats
}

// VertexCount returns the number of vertices covered by the tables.
func (res *Result) VertexCount() int { return len(res.dist) }

// Sources returns the sorted, de-duplicated source ids of the run.
func (res *Result) Sources() []int { return slices.Clone(res.sources) }

// Distances returns a copy of the distance table. Unreached vertices hold
// Infinity.
func (res *Result) Distances() []digraph.Weight { return slices.Clone(res.dist) }

// Predecessors returns a copy of the predecessor table. Sources and
// unreached vertices hold NoPredecessor.
func (res *Result) Predecessors() []int { return slices.Clone(res.pred) }

// Stats returns the run's queue counters.
func (res *Result) Stats() Stats { return res.stats }

// Distance returns the shortest distance from the nearest source to v.
func (res *Result) Distance(v int) (digraph.Weight, error) {
	if err := res.check(v); err != nil {
		return 0, err
	}

	return res.dist[v], nil
}

// Predecessor returns the vertex preceding v on its shortest path, or
// NoPredecessor.
func (res *Result) Predecessor(v int) (int, error) {
	if err := res.check(v); err != nil {
		return NoPredecessor, err
	}

	return res.pred[v], nil
}

// State returns the final lifecycle stage of v: Settled if reached,
// Unvisited otherwise.
func (res *Result) State(v int) (VertexState, error) {
	if err := res.check(v); err != nil {
		return Unvisited, err
	}

	return res.state[v], nil
}

// IsSource reports whether v was one of the run's sources. Invalid ids yield false.
func (res *Result) IsSource(v int) bool {
	return v >= 0 && v < len(res.isSource) && res.isSource[v]
}

// Reachable reports whether v has a finite distance. Invalid ids yield false.
func (res *Result) Reachable(v int) bool {
	return v >= 0 && v < len(res.dist) && res.dist[v] != Infinity
}

func (res *Result) check(v int) error {
	if v < 0 || v >= len(res.dist) {
		return fmt.Errorf("%w: %d not in [0,%d)", digraph.ErrVertexOutOfRange, v, len(res.dist))
	}

	return nil
}
