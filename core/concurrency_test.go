// SPDX-License-Identifier: MIT

package core_test

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pqpath/core"
)

// parallel runs fn(0..n-1) on n goroutines and waits for all of them.
func parallel(n int, fn func(i int)) {
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			fn(i)
		}()
	}
	wg.Wait()
}

func TestGraph_ParallelLoad(t *testing.T) {
	g := core.NewGraph()
	const spokes = 200
	parallel(spokes, func(i int) {
		assert.NoError(t, g.AddEdge("hub", "s"+strconv.Itoa(i), float64(i)))
	})

	nbrs, err := g.Neighbors("hub")
	require.NoError(t, err)
	assert.Len(t, nbrs, spokes)
	assert.Equal(t, spokes, g.EdgeCount())
	assert.Equal(t, spokes+1, g.VertexCount())
}

func TestGraph_ParallelAddAndRemove(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddVertex("hub"))

	parallel(200, func(i int) {
		to := "s" + strconv.Itoa(i/2)
		if i%2 == 0 {
			_ = g.AddEdge("hub", to, 1)
		} else {
			_ = g.RemoveEdge("hub", to)
		}
	})

	nbrs, err := g.Neighbors("hub")
	require.NoError(t, err)
	assert.Equal(t, len(nbrs), g.EdgeCount())
}

func TestGraph_SnapshotsWhileLoading(t *testing.T) {
	g := core.NewGraph()
	const loaders, rows = 8, 50

	parallel(2*loaders, func(i int) {
		if i < loaders {
			for j := 0; j < rows; j++ {
				_ = g.AddEdge("L"+strconv.Itoa(i), "R"+strconv.Itoa(j), 1)
			}
			return
		}
		for j := 0; j < rows; j++ {
			adj := g.Adjacency()
			for from, nbrs := range adj {
				for to := range nbrs {
					if _, ok := adj[to][from]; !ok {
						t.Errorf("snapshot lost mirror of %s→%s", from, to)
					}
				}
			}
		}
	})

	assert.Equal(t, loaders*rows, g.EdgeCount())
}
