// SPDX-License-Identifier: MIT

package ewd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/msdijkstra/digraph"
)

// ParseSources reads a whitespace-separated list of vertex ids such as
// "2 4 5 7". Tokens that are not integers yield ErrParse; ids outside
// [0, vertexCount) yield digraph.ErrVertexOutOfRange. The order of the input
// is kept and duplicates are not removed.
func ParseSources(text string, vertexCount int) ([]int, error) {
	fields := strings.Fields(text)
	out := make([]int, 0, len(fields))
	for i, f := range fields {
		id, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: source #%d %q is not an integer", ErrParse, i+1, f)
		}
		if id < 0 || id >= vertexCount {
			return nil, fmt.Errorf("%w: source %d not in [0,%d)", digraph.ErrVertexOutOfRange, id, vertexCount)
		}
		out = append(out, id)
	}

	return out, nil
}
