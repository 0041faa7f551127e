// SPDX-License-Identifier: MIT

// Package report turns a shortest-path forest into printable rows and
// renders them as an aligned text table, CSV or JSON.
//
// One Row is produced per vertex. Sources, reachable vertices and unreachable
// vertices are distinguishable from the row alone, so every renderer can
// mark them differently:
//
//	Vertex   Edge      Edge Weight   Total Weight
//	0        Source    0.0           0.0
//	1        0->1      2.0           2.0
//	4        -         -             inf
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/msdijkstra/digraph"
	"github.com/katalvlaran/msdijkstra/dijkstra"
	"github.com/katalvlaran/msdijkstra/ewd"
)

// Sentinel errors for report construction.
var (
	// ErrNilInput indicates a nil graph or result.
	ErrNilInput = errors.New("report: nil graph or result")

	// ErrSizeMismatch indicates that the result does not belong to the graph.
	ErrSizeMismatch = errors.New("report: result and graph differ in vertex count")

	// ErrUnknownFormat indicates an unsupported output format name.
	ErrUnknownFormat = errors.New("report: unknown format")
)

// Format selects a renderer.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatCSV, FormatJSON:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q (want text, csv or json)", ErrUnknownFormat, s)
	}
}

// Distance is a path length that renders +Inf as "inf" in text and CSV and
// as null in JSON.
type Distance digraph.Weight

// IsInf reports whether the vertex was not reached.
func (d Distance) IsInf() bool { return math.IsInf(float64(d), 1) }

// String implements fmt.Stringer.
func (d Distance) String() string {
	if d.IsInf() {
		return "inf"
	}

	return ewd.FormatWeight(digraph.Weight(d))
}

// MarshalCSV implements gocsv.TypeMarshaller.
func (d Distance) MarshalCSV() (string, error) { return d.String(), nil }

// MarshalJSON implements json.Marshaler.
func (d Distance) MarshalJSON() ([]byte, error) {
	if d.IsInf() {
		return []byte("null"), nil
	}

	return json.Marshal(float32(d))
}

// Row is one line of the shortest-path forest.
//
// Predecessor is dijkstra.NoPredecessor and EdgeWeight is 0 for sources and
// unreachable vertices.
type Row struct {
	Vertex      int            `csv:"vertex" json:"vertex"`
	Source      bool           `csv:"source" json:"source"`
	Reachable   bool           `csv:"reachable" json:"reachable"`
	Predecessor int            `csv:"predecessor" json:"predecessor"`
	EdgeWeight  digraph.Weight `csv:"edge_weight" json:"edge_weight"`
	Distance    Distance       `csv:"distance" json:"distance"`
}

// Edge renders the tree edge "pred->v", "Source" or "-".
func (r Row) Edge() string {
	switch {
	case r.Source:
		return "Source"
	case r.Predecessor == dijkstra.NoPredecessor:
		return "-"
	default:
		return fmt.Sprintf("%d->%d", r.Predecessor, r.Vertex)
	}
}

// Build assembles one Row per vertex of g from res.
//
// The weight of each tree edge is looked up in g, so a predecessor table that
// does not match the graph surfaces digraph.ErrEdgeNotFound instead of a
// silently wrong row.
// Complexity: O(V).
func Build(g *digraph.Digraph, res *dijkstra.Result) ([]Row, error) {
	if g == nil || res == nil {
		return nil, ErrNilInput
	}
	if g.VertexCount() != res.VertexCount() {
		return nil, fmt.Errorf("%w: graph %d, result %d", ErrSizeMismatch, g.VertexCount(), res.VertexCount())
	}

	dist := res.Distances()
	pred := res.Predecessors()
	rows := make([]Row, len(dist))
	for v := range dist {
		row := Row{
			Vertex:      v,
			Source:      res.IsSource(v),
			Reachable:   res.Reachable(v),
			Predecessor: pred[v],
			Distance:    Distance(dist[v]),
		}
		if pred[v] != dijkstra.NoPredecessor {
			w, err := g.Weight(pred[v], v)
			if err != nil {
				return nil, fmt.Errorf("report: vertex %d: %w", v, err)
			}
			row.EdgeWeight = w
		}
		rows[v] = row
	}

	return rows, nil
}
