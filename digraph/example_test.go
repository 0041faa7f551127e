// SPDX-License-Identifier: MIT
package digraph_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/msdijkstra/digraph"
)

// ExampleNewBuilder streams edges into a Builder and queries the result.
func ExampleNewBuilder() {
	// 1) Declare 3 vertices and 2 edges up front.
	b := digraph.NewBuilder(3, 2)
	// 2) Add the edges in order; each call validates bounds and weight.
	_ = b.AddEdge(0, 1, 1.5)
	_ = b.AddEdge(1, 2, 0.25)
	// 3) Build checks the declared count and freezes the graph.
	g, err := b.Build()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	w, _ := g.Weight(0, 1)
	fmt.Println(g.VertexCount(), g.EdgeCount(), w)
	// Output: 3 2 1.5
}

// ExampleNew_negativeWeight shows that negative weights never reach a graph.
func ExampleNew_negativeWeight() {
	_, err := digraph.New(2, digraph.Edge{From: 0, To: 1, Weight: -1})
	fmt.Println(errors.Is(err, digraph.ErrNegativeWeight))
	// Output: true
}
