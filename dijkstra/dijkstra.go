// SPDX-License-Identifier: MIT
//
// File: dijkstra.go
// Role: Entry point and relaxation loop of the multi-source engine.
// Notes on implementation choices:
//   - Negative weights are rejected by digraph at construction, so no
//     pre-scan of edges is needed here.
//   - Decrease-key is done in place on the indexed heap; there are no stale
//     queue entries to skip.
//   - Any queue error is treated as corruption and aborts the run.

package dijkstra

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/msdijkstra/digraph"
	"github.com/katalvlaran/msdijkstra/ipq"
)

// Dijkstra computes shortest distances and predecessors from the set of
// sources given via Sources(...) to every vertex of g.
//
// Returns:
//
//   - *Result: read-only distance/predecessor snapshot. Unreached vertices
//     have distance Infinity and predecessor NoPredecessor; so do sources,
//     except their distance is 0.
//   - err: ErrNilGraph, ErrBadMaxDistance, ErrBadInfThreshold,
//     ErrInvalidSourceSet, ErrDistanceOverflow, or ErrCorruptRun.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Every option must be valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  3. At least one source, all in [0, V) (ErrInvalidSourceSet).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func Dijkstra(g *digraph.Digraph, opts ...Option) (*Result, error) {
	// 1) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 3) Validate and normalize the source set
	sources, err := normalizeSources(cfg.Sources, g.VertexCount())
	if err != nil {
		return nil, err
	}

	// 4) Allocate per-run state; nothing outlives this call except the Result.
	n := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		sources: sources,
		dist:    make([]digraph.Weight, n),
		pred:    make([]int, n),
		state:   make([]VertexState, n),
		pq:      ipq.New[digraph.Weight](n),
		log: cfg.Logger.WithFields(logrus.Fields{
			"vertices": n,
			"edges":    g.EdgeCount(),
			"sources":  len(sources),
		}),
	}

	// 5) Seed sources and run the main loop.
	r.log.Debug("dijkstra: run started")
	if err = r.init(); err != nil {
		return nil, err
	}
	if err = r.process(); err == nil {
		err = r.checkOverflow()
	}
	if err != nil {
		r.log.WithError(err).Debug("dijkstra: run aborted")
		return nil, err
	}
	r.log.WithFields(logrus.Fields{
		"extractions":   r.stats.Extractions,
		"relaxations":   r.stats.Relaxations,
		"decrease_keys": r.stats.DecreaseKeys,
	}).Debug("dijkstra: run finished")

	return r.result(), nil
}

// normalizeSources checks bounds and returns the sorted, de-duplicated ids.
func normalizeSources(ids []int, n int) ([]int, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: no sources given", ErrInvalidSourceSet)
	}
	for _, s := range ids {
		if s < 0 || s >= n {
			return nil, fmt.Errorf("%w: source %d not in [0,%d)", ErrInvalidSourceSet, s, n)
		}
	}
	out := slices.Clone(ids)
	slices.Sort(out)

	return slices.Compact(out), nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *digraph.Digraph                // input graph; read-only
	options Options                         // validated configuration
	sources []int                           // sorted unique sources
	dist    []digraph.Weight                // vertex → best known distance
	pred    []int                           // vertex → predecessor on best known path
	state   []VertexState                   // vertex → lifecycle stage
	pq      *ipq.IndexMinPQ[digraph.Weight] // frontier keyed by distance
	stats   Stats
	log     logrus.FieldLogger

	overflowed []int // vertices whose tentative distance overflowed to +Inf
}

// init sets every vertex Unvisited at Infinity, then moves each source to
// the Frontier with distance 0.
func (r *runner) init() error {
	for v := range r.dist {
		r.dist[v] = Infinity
		r.pred[v] = NoPredecessor
		r.state[v] = Unvisited
	}

	for _, s := range r.sources {
		r.dist[s] = 0
		if err := r.pq.Insert(s, 0); err != nil {
			return fmt.Errorf("%w: %w", ErrCorruptRun, err)
		}
		r.state[s] = Frontier
		r.stats.Insertions++
	}

	return nil
}

// process is the core loop. It repeatedly settles the Frontier vertex with
// the smallest distance and relaxes its outgoing arcs until the queue is empty.
func (r *runner) process() error {
	for !r.pq.IsEmpty() {
		// 1) Extract the minimum; ties resolve to the smaller id.
		u, _, err := r.pq.ExtractMin()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrCorruptRun, err)
		}
		r.stats.Extractions++

		// 2) u's distance is now final.
		r.state[u] = Settled

		// 3) Relax every outgoing arc.
		if err = r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every out-neighbor of the settled vertex u.
func (r *runner) relax(u int) error {
	arcs, err := r.g.Adjacency(u)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCorruptRun, err)
	}

	du := r.dist[u]
	for _, a := range arcs {
		v, w := a.To, a.Weight

		// Impassable edge.
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		nd := du + w
		if nd > r.options.MaxDistance {
			continue
		}
		// Finite operands, infinite sum: remember v and decide after the run
		// whether another path reached it.
		if math.IsInf(float64(nd), 1) {
			if r.state[v] == Unvisited {
				r.overflowed = append(r.overflowed, v)
			}
			continue
		}
		// Strict improvement only; equal-cost paths keep the first predecessor.
		if !(nd < r.dist[v]) {
			continue
		}
		// With non-negative weights a settled vertex can never improve.
		if r.state[v] == Settled {
			return fmt.Errorf("%w: settled vertex %d improved via %d", ErrCorruptRun, v, u)
		}

		r.dist[v] = nd
		r.pred[v] = u
		r.stats.Relaxations++

		if r.state[v] == Frontier {
			if err = r.pq.DecreaseKey(v, nd); err != nil {
				return fmt.Errorf("%w: %w", ErrCorruptRun, err)
			}
			r.stats.DecreaseKeys++
			continue
		}
		if err = r.pq.Insert(v, nd); err != nil {
			return fmt.Errorf("%w: %w", ErrCorruptRun, err)
		}
		r.state[v] = Frontier
		r.stats.Insertions++
	}

	return nil
}

// checkOverflow fails the run if a vertex seen only through an overflowing
// path was left Unvisited, which would otherwise look unreachable.
func (r *runner) checkOverflow() error {
	for _, v := range r.overflowed {
		if r.state[v] == Unvisited {
			return fmt.Errorf("%w: vertex %d", ErrDistanceOverflow, v)
		}
	}

	return nil
}

// result hands the tables over to an immutable Result. The runner must not
// be used afterwards.
func (r *runner) result() *Result {
	isSource := make([]bool, len(r.dist))
	for _, s := range r.sources {
		isSource[s] = true
	}

	return &Result{
		sources:  r.sources,
		isSource: isSource,
		dist:     r.dist,
		pred:     r.pred,
		state:    r.state,
		stats:    r.stats,
	}
}
