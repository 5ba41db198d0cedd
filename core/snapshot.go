// SPDX-License-Identifier: MIT

// File: snapshot.go
// Role: Copies of the graph, including the solver input mapping.
//
// Every copy is built under the read lock and shares no maps with g.

package core

import "github.com/katalvlaran/pqpath/dijkstra"

// Adjacency returns the graph as a solver input mapping. Every vertex is a
// key, isolated ones with an empty row, so the solver sees exactly
// Vertices(). Undirected edges appear in both directions.
func (g *Graph) Adjacency() dijkstra.Graph[string] {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return dijkstra.Graph[string](g.copyAdj(true))
}

// CloneEmpty returns a graph with the same options and vertices and no
// edges.
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return &Graph{directed: g.directed, loops: g.loops, adj: g.copyAdj(false)}
}

// Clone returns a deep copy; later changes to either graph do not show in
// the other.
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return &Graph{directed: g.directed, loops: g.loops, adj: g.copyAdj(true), edges: g.edges}
}

// Clear drops every vertex and edge and keeps the options.
func (g *Graph) Clear() {
	g.mu.Lock()
	g.adj = make(map[string]map[string]float64)
	g.edges = 0
	g.mu.Unlock()
}

// copyAdj copies the vertex set, with the weights when withEdges is set.
// Caller holds mu.
func (g *Graph) copyAdj(withEdges bool) map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(g.adj))
	for id, nbrs := range g.adj {
		if !withEdges {
			out[id] = make(map[string]float64)
			continue
		}
		row := make(map[string]float64, len(nbrs))
		for to, w := range nbrs {
			row[to] = w
		}
		out[id] = row
	}
	return out
}
