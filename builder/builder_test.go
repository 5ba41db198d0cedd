// SPDX-License-Identifier: MIT

package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pqpath/builder"
	"github.com/katalvlaran/pqpath/core"
	"github.com/katalvlaran/pqpath/dijkstra"
)

func build(t *testing.T, gopts []core.GraphOption, bopts []builder.BuilderOption, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(gopts, bopts, cons...)
	require.NoError(t, err)
	return g
}

func TestTopologies_Counts(t *testing.T) {
	cases := []struct {
		name      string
		con       builder.Constructor
		vertices  int
		edges     int
		gopts     []core.GraphOption
		connected bool
	}{
		{"Path", builder.Path(5), 5, 4, nil, true},
		{"Cycle", builder.Cycle(5), 5, 5, nil, true},
		{"Star", builder.Star(5), 5, 4, nil, true},
		{"Complete", builder.Complete(5), 5, 10, nil, true},
		{"CompleteDirected", builder.Complete(4), 4, 12, []core.GraphOption{core.WithDirected(true)}, true},
		{"Grid", builder.Grid(3, 4), 12, 17, nil, true},
		{"GridDirected", builder.Grid(2, 2), 4, 8, []core.GraphOption{core.WithDirected(true)}, true},
		{"RandomFull", builder.RandomSparse(4, 1), 4, 6, nil, true},
		{"RandomEmpty", builder.RandomSparse(4, 0), 4, 0, nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := build(t, tc.gopts, nil, tc.con)
			assert.Equal(t, tc.vertices, g.VertexCount())
			assert.Equal(t, tc.edges, g.EdgeCount())

			vs := g.Vertices()
			s, err := dijkstra.New(g.Adjacency(), vs[0])
			require.NoError(t, err)
			all := true
			for _, v := range vs {
				all = all && s.Reachable(v)
			}
			assert.Equal(t, tc.connected, all)
		})
	}
}

func TestTopologies_TooSmall(t *testing.T) {
	for name, con := range map[string]builder.Constructor{
		"Path":     builder.Path(1),
		"Cycle":    builder.Cycle(2),
		"Star":     builder.Star(1),
		"Complete": builder.Complete(0),
		"Grid":     builder.Grid(0, 3),
		"Random":   builder.RandomSparse(0, 0.5),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, nil, con)
			assert.ErrorIs(t, err, builder.ErrTooFewVertices)
		})
	}
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Path(3), nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestRandomSparse_Validation(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.RandomSparse(5, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildGraph(nil, nil, builder.RandomSparse(5, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestRandomSparse_Deterministic(t *testing.T) {
	opts := func() []builder.BuilderOption {
		return []builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.IntWeight(1, 9))}
	}
	a := build(t, nil, opts(), builder.RandomSparse(20, 0.3))
	b := build(t, nil, opts(), builder.RandomSparse(20, 0.3))
	assert.Equal(t, a.Adjacency(), b.Adjacency())

	for from, nbrs := range a.Adjacency() {
		for to, w := range nbrs {
			assert.NotEqual(t, from, to)
			assert.Equal(t, math.Trunc(w), w)
			assert.True(t, w >= 1 && w <= 9)
		}
	}
}

func TestRandomSparse_Loops(t *testing.T) {
	g := build(t, []core.GraphOption{core.WithLoops()}, nil, builder.RandomSparse(3, 1))
	assert.Equal(t, 6, g.EdgeCount())
	assert.True(t, g.HasEdge("1", "1"))
}

func TestGrid_IDsAndWeights(t *testing.T) {
	g := build(t, nil, []builder.BuilderOption{builder.WithWeightFn(builder.ConstantWeight(2))}, builder.Grid(2, 3))
	assert.True(t, g.HasVertex(builder.GridID(1, 2)))
	assert.True(t, g.HasEdge("0,0", "0,1"))
	assert.True(t, g.HasEdge("0,0", "1,0"))
	assert.False(t, g.HasEdge("0,0", "1,1"))

	s, err := dijkstra.New(g.Adjacency(), "0,0")
	require.NoError(t, err)
	d, err := s.DistanceTo("1,2")
	require.NoError(t, err)
	assert.Equal(t, 6.0, d)
}

func TestStar_Center(t *testing.T) {
	g := build(t, nil, []builder.BuilderOption{builder.WithIDScheme(builder.PrefixNamer("leaf"))}, builder.Star(4))
	nbrs, err := g.Neighbors(builder.StarCenterID)
	require.NoError(t, err)
	assert.Equal(t, []string{"leaf0", "leaf1", "leaf2"}, nbrs)
}

func TestComposition(t *testing.T) {
	// Two paths sharing their first vertices overlap instead of duplicating.
	g := build(t, nil, nil, builder.Path(3), builder.Path(5))
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())
}

func TestNamers(t *testing.T) {
	assert.Equal(t, "7", builder.IndexNamer(7))
	assert.Equal(t, "A", builder.LetterNamer(0))
	assert.Equal(t, "Z", builder.LetterNamer(25))
	assert.Equal(t, "AA", builder.LetterNamer(26))
	assert.Equal(t, "AZ", builder.LetterNamer(51))
	assert.Equal(t, "BA", builder.LetterNamer(52))
	assert.Equal(t, "v3", builder.PrefixNamer("v")(3))
	assert.Panics(t, func() { builder.LetterNamer(-1) })
	assert.Panics(t, func() { builder.WithIDScheme(nil) })

	g := build(t, nil, []builder.BuilderOption{builder.WithIDScheme(builder.LetterNamer)}, builder.Path(3))
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
}

func TestWeightFns(t *testing.T) {
	assert.Equal(t, 3.0, builder.ConstantWeight(3)(nil))
	assert.Equal(t, 2.0, builder.UniformWeight(2, 5)(nil))
	assert.Equal(t, 4.0, builder.IntWeight(4, 8)(nil))
	assert.Panics(t, func() { builder.ConstantWeight(-1) })
	assert.Panics(t, func() { builder.UniformWeight(3, 2) })
	assert.Panics(t, func() { builder.IntWeight(-1, 2) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })

	// Unset, every edge weighs UnitWeight.
	g := build(t, nil, nil, builder.Path(2))
	w, err := g.Weight("0", "1")
	require.NoError(t, err)
	assert.Equal(t, builder.UnitWeight, w)
}

func TestUniformWeight_Range(t *testing.T) {
	g := build(t, nil, []builder.BuilderOption{
		builder.WithRand(rand.New(rand.NewSource(3))),
		builder.WithWeightFn(builder.UniformWeight(0.5, 2)),
	}, builder.Complete(6))
	for _, nbrs := range g.Adjacency() {
		for _, w := range nbrs {
			assert.True(t, w >= 0.5 && w < 2, "weight %g", w)
		}
	}
}

func TestByName(t *testing.T) {
	for _, name := range builder.Topologies {
		con, err := builder.ByName(name, 4, 1)
		require.NoError(t, err, name)
		_, err = builder.BuildGraph(nil, nil, con)
		require.NoError(t, err, name)
	}

	_, err := builder.ByName("torus", 4, 0)
	assert.ErrorIs(t, err, builder.ErrUnknownTopology)
}
