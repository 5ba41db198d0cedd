// SPDX-License-Identifier: MIT

package core_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/pqpath/core"
)

func benchmarkLoad(b *testing.B, opts ...core.GraphOption) {
	ids := make([]string, 4096)
	for i := range ids {
		ids[i] = "n" + strconv.Itoa(i)
	}
	g := core.NewGraph(opts...)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge("root", ids[i%len(ids)], float64(i%17))
	}
}

func BenchmarkAddEdge_Undirected(b *testing.B) { benchmarkLoad(b) }

func BenchmarkAddEdge_Directed(b *testing.B) { benchmarkLoad(b, core.WithDirected(true)) }

// BenchmarkAdjacency measures the snapshot handed to the solver.
func BenchmarkAdjacency(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 1000; i++ {
		_ = g.AddEdge("n"+strconv.Itoa(i), "n"+strconv.Itoa((i*31+7)%1000), float64(i%9))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Adjacency()
	}
}
