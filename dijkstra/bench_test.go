// SPDX-License-Identifier: MIT
// Package dijkstra_test provides benchmarks for multi-source Dijkstra.
package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/msdijkstra/dijkstra"
)

// BenchmarkDijkstra_Sparse runs on 2000 vertices and ~8000 edges.
func BenchmarkDijkstra_Sparse(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	g := randomGraph(b, rng, 2000, 8000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.Dijkstra(g, dijkstra.Sources(0)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDijkstra_ManySources seeds 100 sources on the same graph.
func BenchmarkDijkstra_ManySources(b *testing.B) {
	rng := rand.New(rand.NewSource(2))
	g := randomGraph(b, rng, 2000, 8000)
	sources := make([]int, 100)
	for i := range sources {
		sources[i] = i * 20
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.Dijkstra(g, dijkstra.Sources(sources...)); err != nil {
			b.Fatal(err)
		}
	}
}
