// SPDX-License-Identifier: MIT

// api.go: BuildGraph and the helpers every constructor shares.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pqpath/core"
)

// Constructor adds one shape to g. It checks its own size parameters first
// and reports problems as errors wrapping the package sentinels.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph makes an empty core.Graph from gopts and runs cons over it in
// order, all sharing the settings resolved from bopts. Constructors that
// name the same vertices overlap rather than duplicate. The first failure
// aborts the build and no graph is returned.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, con := range cons {
		if con == nil {
			return nil, fmt.Errorf("BuildGraph: constructor %d is nil: %w", i, ErrConstructFailed)
		}
		if err := con(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// link adds the road u→v (or u—v) with a freshly drawn weight.
func link(g *core.Graph, cfg builderConfig, shape, u, v string) error {
	w := cfg.edgeWeight()
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: edge %s→%s (%g): %w", shape, u, v, w, err)
	}
	return nil
}

// linkBoth is link in both orientations on a directed graph and a single
// link otherwise, so the shape stays traversable either way.
func linkBoth(g *core.Graph, cfg builderConfig, shape, u, v string) error {
	if err := link(g, cfg, shape, u, v); err != nil {
		return err
	}
	if g.Directed() {
		return link(g, cfg, shape, v, u)
	}
	return nil
}

// namedVertices adds n vertices named by cfg.namer and returns their IDs
// in index order.
func namedVertices(g *core.Graph, cfg builderConfig, shape string, n int) ([]string, error) {
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id := cfg.namer(i)
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("%s: vertex %q: %w", shape, id, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// tooSmall formats the size error shared by all constructors.
func tooSmall(shape string, got, least int) error {
	return fmt.Errorf("%s: size %d, need at least %d: %w", shape, got, least, ErrTooFewVertices)
}
