// SPDX-License-Identifier: MIT
package ipq_test

import (
	"fmt"

	"github.com/katalvlaran/msdijkstra/ipq"
)

// ExampleIndexMinPQ_DecreaseKey shows decrease-key moving an entry to the front.
func ExampleIndexMinPQ_DecreaseKey() {
	pq := ipq.New[float32](3)
	_ = pq.Insert(0, 4)
	_ = pq.Insert(1, 2)
	_ = pq.Insert(2, 9)

	// Vertex 2 found a cheaper path.
	_ = pq.DecreaseKey(2, 1)

	for !pq.IsEmpty() {
		id, key, _ := pq.ExtractMin()
		fmt.Printf("%d:%g ", id, key)
	}
	fmt.Println()
	// Output: 2:1 1:2 0:4
}
