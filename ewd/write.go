// SPDX-License-Identifier: MIT

package ewd

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/msdijkstra/digraph"
)

// Write emits g in EWD format, edges sorted by (from, to). Weights always
// carry a decimal point ("1.0", "0.35") so older readers that insist on one
// accept the output.
func Write(w io.Writer, g *digraph.Digraph) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(strconv.Itoa(g.VertexCount()))
	bw.WriteByte('\n')
	bw.WriteString(strconv.Itoa(g.EdgeCount()))
	bw.WriteByte('\n')
	for _, e := range g.Edges() {
		bw.WriteString(strconv.Itoa(e.From))
		bw.WriteByte(' ')
		bw.WriteString(strconv.Itoa(e.To))
		bw.WriteByte(' ')
		bw.WriteString(FormatWeight(e.Weight))
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// FormatWeight renders w in plain decimal notation with at least one
// fractional digit.
func FormatWeight(w digraph.Weight) string {
	s := strconv.FormatFloat(float64(w), 'f', -1, 32)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}

	return s
}
