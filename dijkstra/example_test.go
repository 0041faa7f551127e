// SPDX-License-Identifier: MIT
// Package dijkstra_test provides examples demonstrating multi-source runs.
// Each example is runnable via “go test -run Example”.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/msdijkstra/digraph"
	"github.com/katalvlaran/msdijkstra/dijkstra"
)

// ExampleDijkstra computes a single-source shortest-path tree.
func ExampleDijkstra() {
	// 1) Build the graph: 0→1:2, 0→2:5, 1→2:1, 1→3:4, 2→3:1.
	g, err := digraph.New(4,
		digraph.Edge{From: 0, To: 1, Weight: 2},
		digraph.Edge{From: 0, To: 2, Weight: 5},
		digraph.Edge{From: 1, To: 2, Weight: 1},
		digraph.Edge{From: 1, To: 3, Weight: 4},
		digraph.Edge{From: 2, To: 3, Weight: 1},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Run from vertex 0.
	res, err := dijkstra.Dijkstra(g, dijkstra.Sources(0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Print the tables.
	fmt.Println(res.Distances())
	fmt.Println(res.Predecessors())
	// Output:
	// [0 2 3 4]
	// [-1 0 1 2]
}

// ExampleSources runs from two sources at once: every vertex is attached to
// its nearest source.
func ExampleSources() {
	g, _ := digraph.New(5,
		digraph.Edge{From: 0, To: 1, Weight: 2},
		digraph.Edge{From: 0, To: 2, Weight: 5},
		digraph.Edge{From: 1, To: 2, Weight: 1},
		digraph.Edge{From: 1, To: 3, Weight: 4},
		digraph.Edge{From: 2, To: 3, Weight: 1},
	)

	res, _ := dijkstra.Dijkstra(g, dijkstra.Sources(0, 2))
	for v := 0; v < res.VertexCount(); v++ {
		d, _ := res.Distance(v)
		p, _ := res.Predecessor(v)
		fmt.Printf("v=%d dist=%g pred=%d source=%t\n", v, d, p, res.IsSource(v))
	}
	// Output:
	// v=0 dist=0 pred=-1 source=true
	// v=1 dist=2 pred=0 source=false
	// v=2 dist=0 pred=-1 source=true
	// v=3 dist=1 pred=2 source=false
	// v=4 dist=+Inf pred=-1 source=false
}
