// SPDX-License-Identifier: MIT

package report

import (
	"io"

	"github.com/VictoriaMetrics/metrics"

	"github.com/katalvlaran/msdijkstra/dijkstra"
)

// WriteStats writes the queue counters of one run and the row summary in
// Prometheus text exposition format. A fresh metrics.Set is used per call,
// so nothing is registered globally.
func WriteStats(w io.Writer, st dijkstra.Stats, sum Summary) {
	set := metrics.NewSet()

	set.NewCounter("msdijkstra_extractions_total").Set(uint64(st.Extractions))
	set.NewCounter("msdijkstra_insertions_total").Set(uint64(st.Insertions))
	set.NewCounter("msdijkstra_relaxations_total").Set(uint64(st.Relaxations))
	set.NewCounter("msdijkstra_decrease_keys_total").Set(uint64(st.DecreaseKeys))

	set.NewGauge(`msdijkstra_vertices{state="source"}`, func() float64 { return float64(sum.Sources) })
	set.NewGauge(`msdijkstra_vertices{state="reachable"}`, func() float64 { return float64(sum.Reachable) })
	set.NewGauge(`msdijkstra_vertices{state="unreachable"}`, func() float64 { return float64(sum.Unreachable) })
	set.NewGauge("msdijkstra_max_distance", func() float64 { return float64(sum.MaxDistance) })

	set.WritePrometheus(w)
}
