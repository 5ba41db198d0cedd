// SPDX-License-Identifier: MIT

// File: graph.go
// Role: Graph type, options, sentinel errors and summary getters.
//
// Concurrency:
//   - One sync.RWMutex guards adj and edges; every exported method takes it.

package core

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrBadWeight indicates a weight that is NaN or +Inf.
	ErrBadWeight = errors.New("core: edge weight is not a finite number")

	// ErrLoopNotAllowed indicates a self-loop on a graph built without WithLoops.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// GraphOption configures a Graph at construction.
type GraphOption func(g *Graph)

// WithDirected makes every edge one-way when directed is true.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops accepts edges from a vertex to itself.
func WithLoops() GraphOption {
	return func(g *Graph) { g.loops = true }
}

// Graph is a weighted adjacency store feeding the shortest-path solver.
//
// Each ordered pair (from, to) carries at most one weight; adding an edge
// that already exists overwrites its weight. Undirected graphs keep both
// directions of every edge in step. The zero value is not usable; call
// NewGraph.
type Graph struct {
	mu       sync.RWMutex
	directed bool
	loops    bool

	// adj holds one bucket per vertex, so its key set is the vertex set.
	adj   map[string]map[string]float64
	edges int // an undirected pair counts once
}

// NewGraph returns an empty graph, undirected and loop-free unless opts
// say otherwise.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{adj: make(map[string]map[string]float64)}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Directed reports whether edges are stored one-way.
func (g *Graph) Directed() bool { return g.directed }

// Looped reports whether self-loops are accepted.
func (g *Graph) Looped() bool { return g.loops }

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	Directed    bool
	Loops       bool
	VertexCount int
	EdgeCount   int
}

// String renders the summary on one line, for logs.
func (s GraphStats) String() string {
	return fmt.Sprintf("vertices=%d edges=%d directed=%t loops=%t",
		s.VertexCount, s.EdgeCount, s.Directed, s.Loops)
}

// Stats reads the flags and both counts under one lock.
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return GraphStats{
		Directed:    g.directed,
		Loops:       g.loops,
		VertexCount: len(g.adj),
		EdgeCount:   g.edges,
	}
}
