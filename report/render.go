// SPDX-License-Identifier: MIT

package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/gocarina/gocsv"
	"github.com/tidwall/pretty"

	"github.com/katalvlaran/msdijkstra/digraph"
	"github.com/katalvlaran/msdijkstra/ewd"
)

// Write renders rows in the given format.
func Write(w io.Writer, f Format, rows []Row, colored bool) error {
	switch f {
	case FormatText, "":
		return WriteTable(w, rows, colored)
	case FormatCSV:
		return WriteCSV(w, rows)
	case FormatJSON:
		return WriteJSON(w, rows, true)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// WriteTable writes an aligned Vertex / Edge / Edge Weight / Total Weight
// table. Source rows read "Source 0.0 0.0"; when colored they are also
// highlighted. Unreachable rows read "- - inf".
func WriteTable(w io.Writer, rows []Row, colored bool) error {
	var b bytes.Buffer
	tw := tabwriter.NewWriter(&b, 0, 0, 3, ' ', 0)
	if _, err := fmt.Fprintln(tw, "Vertex\tEdge\tEdge Weight\tTotal Weight"); err != nil {
		return err
	}
	for _, r := range rows {
		edgeW := "-"
		switch {
		case r.Source:
			edgeW = ewd.FormatWeight(0)
		case r.Reachable:
			edgeW = ewd.FormatWeight(r.EdgeWeight)
		}
		if _, err := fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", r.Vertex, r.Edge(), edgeW, r.Distance); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	// Colour whole lines after alignment so escape codes do not skew widths.
	lines := strings.SplitAfter(b.String(), "\n")
	header := color.New(color.Bold)
	source := color.New(color.FgGreen, color.Bold)
	unreached := color.New(color.FgHiBlack)
	for _, c := range []*color.Color{header, source, unreached} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	var out strings.Builder
	for i, line := range lines {
		if line == "" {
			continue
		}
		body := strings.TrimSuffix(line, "\n")
		switch {
		case i == 0:
			body = header.Sprint(body)
		case rows[i-1].Source:
			body = source.Sprint(body)
		case !rows[i-1].Reachable:
			body = unreached.Sprint(body)
		}
		out.WriteString(body)
		out.WriteByte('\n')
	}
	_, err := io.WriteString(w, out.String())

	return err
}

// WriteCSV writes rows as CSV with a header line.
func WriteCSV(w io.Writer, rows []Row) error {
	return gocsv.Marshal(rows, w)
}

// WriteJSON writes rows as a JSON array. Unreached distances are null.
func WriteJSON(w io.Writer, rows []Row, indent bool) error {
	b, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	if indent {
		b = pretty.Pretty(b)
	} else {
		b = append(b, '\n')
	}
	_, err = w.Write(b)

	return err
}

// Summary aggregates a row set for logs and metrics.
type Summary struct {
	Vertices    int
	Sources     int
	Reachable   int
	Unreachable int
	MaxDistance digraph.Weight // largest finite distance
}

// Summarize counts sources and reachable vertices in rows.
func Summarize(rows []Row) Summary {
	s := Summary{Vertices: len(rows)}
	for _, r := range rows {
		if r.Source {
			s.Sources++
		}
		if !r.Reachable {
			s.Unreachable++
			continue
		}
		s.Reachable++
		if d := digraph.Weight(r.Distance); d > s.MaxDistance {
			s.MaxDistance = d
		}
	}

	return s
}
