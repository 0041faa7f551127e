// SPDX-License-Identifier: MIT

package digraph

// Reachable runs a breadth-first search from all sources at once and returns
// a mask with mask[v] == true iff v is reachable from at least one source.
// Every source is reachable from itself.
//
// Returns ErrVertexOutOfRange if any source id is invalid.
// Complexity: O(V + E) time, O(V) space.
func (g *Digraph) Reachable(sources ...int) ([]bool, error) {
	// 1) Validate sources before allocating anything.
	for _, s := range sources {
		if !g.HasVertex(s) {
			return nil, g.outOfRange(s)
		}
	}

	// 2) Seed the queue with every unseen source.
	seen := make([]bool, g.vertexCount)
	queue := make([]int, 0, g.vertexCount)
	for _, s := range sources {
		if !seen[s] {
			seen[s] = true
			queue = append(queue, s)
		}
	}

	// 3) Standard FIFO expansion over outgoing arcs.
	for head := 0; head < len(queue); head++ {
		for _, a := range g.arcs[queue[head]] {
			if !seen[a.To] {
				seen[a.To] = true
				queue = append(queue, a.To)
			}
		}
	}

	return seen, nil
}
