// SPDX-License-Identifier: MIT

// Package dijkstra defines configuration options, sentinel errors and vertex
// states for the multi-source shortest-path engine.
package dijkstra

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/msdijkstra/digraph"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *digraph.Digraph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrInvalidSourceSet indicates an empty source set or a source id
	// outside [0, VertexCount).
	ErrInvalidSourceSet = errors.New("dijkstra: invalid source set")

	// ErrBadMaxDistance indicates that MaxDistance was negative or NaN.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was zero, negative or NaN,
	// which would treat every edge (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrDistanceOverflow indicates a vertex that is reachable only along paths
	// whose length exceeds the largest finite Weight.
	ErrDistanceOverflow = errors.New("dijkstra: path length overflows weight range")

	// ErrCorruptRun indicates that a priority-queue operation failed during a
	// run. The tables can no longer be trusted and the run is aborted.
	ErrCorruptRun = errors.New("dijkstra: run aborted on inconsistent state")
)

// NoPredecessor marks sources and unreached vertices in the predecessor table.
const NoPredecessor = -1

// Infinity is the distance of every vertex not reached from any source.
var Infinity = digraph.Weight(math.Inf(1))

// VertexState is the lifecycle stage of a vertex within one run.
type VertexState uint8

const (
	// Unvisited: distance is Infinity and the vertex was never queued.
	Unvisited VertexState = iota
	// Frontier: finite tentative distance, present in the queue.
	Frontier
	// Settled: extracted from the queue; the distance is final.
	Settled
)

// String implements fmt.Stringer.
func (s VertexState) String() string {
	switch s {
	case Unvisited:
		return "unvisited"
	case Frontier:
		return "frontier"
	case Settled:
		return "settled"
	default:
		return fmt.Sprintf("VertexState(%d)", uint8(s))
	}
}

// Options configures one run of the Dijkstra algorithm.
//
//	Sources:          starting vertex ids (at least one, each in range).
//	MaxDistance:      vertices whose distance would exceed this stay Unvisited.
//	InfEdgeThreshold: edges with weight ≥ this value are never traversed.
//	Logger:           receives Debug-level tracing of the run.
type Options struct {
	Sources          []int
	MaxDistance      digraph.Weight
	InfEdgeThreshold digraph.Weight
	Logger           logrus.FieldLogger

	// first invalid option, surfaced by Dijkstra
	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Sources adds starting vertices. It may be given several times; the union
// of all ids is used and duplicates collapse.
func Sources(ids ...int) Option {
	return func(o *Options) {
		o.Sources = append(o.Sources, ids...)
	}
}

// WithMaxDistance caps exploration: a vertex is only reached if its
// distance is ≤ max. A negative or NaN value makes Dijkstra return
// ErrBadMaxDistance.
func WithMaxDistance(max digraph.Weight) Option {
	return func(o *Options) {
		if max < 0 || max != max {
			o.setErr(fmt.Errorf("%w: %g", ErrBadMaxDistance, max))
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold makes every edge with weight ≥ threshold impassable.
// A zero, negative or NaN threshold makes Dijkstra return ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold digraph.Weight) Option {
	return func(o *Options) {
		if !(threshold > 0) {
			o.setErr(fmt.Errorf("%w: %g", ErrBadInfThreshold, threshold))
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithLogger routes run tracing to l. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Options with no sources, no distance cap, no
// impassable edges and a logger that discards everything.
func DefaultOptions() Options {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	return Options{
		MaxDistance:      Infinity,
		InfEdgeThreshold: Infinity,
		Logger:           quiet,
	}
}

func (o *Options) setErr(err error) {
	if o.err == nil {
		o.err = err
	}
}
