// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"math"
)

// AddEdge stores from→to with weight w, creating missing endpoints. On an
// undirected graph the reverse direction is written too. Re-adding an edge
// overwrites its weight and leaves EdgeCount unchanged.
//
// Errors:
//   - ErrEmptyVertexID for an empty endpoint.
//   - ErrNegativeWeight for w < 0, -Inf included.
//   - ErrBadWeight for NaN or +Inf.
//   - ErrLoopNotAllowed for from == to without WithLoops.
//
// Nothing is stored when an error is returned.
func (g *Graph) AddEdge(from, to string, w float64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if err := checkWeight(w); err != nil {
		return fmt.Errorf("%w: %s→%s", err, from, to)
	}
	if from == to && !g.loops {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	out, in := g.bucket(from), g.bucket(to)
	if _, seen := out[to]; !seen {
		g.edges++
	}
	out[to] = w
	if !g.directed {
		in[from] = w
	}
	return nil
}

// checkWeight admits finite weights >= 0.
func checkWeight(w float64) error {
	switch {
	case math.IsNaN(w), math.IsInf(w, 1):
		return fmt.Errorf("%w (%v)", ErrBadWeight, w)
	case w < 0:
		return fmt.Errorf("%w (%v)", ErrNegativeWeight, w)
	}
	return nil
}

// RemoveEdge deletes from→to, and to→from on an undirected graph.
// Both endpoints stay. Returns ErrEdgeNotFound when there is no such edge.
func (g *Graph) RemoveEdge(from, to string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adj[from][to]; !ok {
		return fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, from, to)
	}
	delete(g.adj[from], to)
	if !g.directed {
		delete(g.adj[to], from)
	}
	g.edges--
	return nil
}

// HasEdge reports whether from→to exists. It is symmetric on an undirected
// graph.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[from][to]
	return ok
}

// Weight returns the weight of from→to.
func (g *Graph) Weight(from, to string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if w, ok := g.adj[from][to]; ok {
		return w, nil
	}
	return 0, fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, from, to)
}

// EdgeCount returns the number of logical edges; an undirected edge counts
// once although both directions are stored.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.edges
}
