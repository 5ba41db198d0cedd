// SPDX-License-Identifier: MIT

// Package core provides a thread-safe, weighted in-memory Graph that serves
// as the building surface for shortest-path inputs.
//
// The Graph G = (V,E) stores at most one non-negative float64 weight per
// ordered vertex pair:
//
//   - Directed vs. undirected edges (WithDirected). Undirected edges are
//     mirrored, adjacency[from][to] and adjacency[to][from] always agree.
//   - Self-loops (WithLoops); rejected with ErrLoopNotAllowed otherwise.
//   - Last write wins: adding an existing edge overwrites its weight.
//   - Safe for concurrent use; one sync.RWMutex guards the whole store.
//
// Weights are validated on insertion, which is where negative input is
// stopped before it can reach the solver:
//
//	ErrNegativeWeight - weight < 0
//	ErrBadWeight      - NaN or +Inf
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                   // O(1)
//	HasVertex(id string) bool                    // O(1)
//	RemoveVertex(id string) error                // O(V)
//
//	// Edge lifecycle
//	AddEdge(from, to string, w float64) error    // O(1)
//	RemoveEdge(from, to string) error            // O(1)
//	HasEdge(from, to string) bool                // O(1)
//	Weight(from, to string) (float64, error)     // O(1)
//
//	// Query
//	Vertices() []string                          // O(V·log V), sorted
//	Neighbors(id string) ([]string, error)       // O(d·log d), sorted
//	VertexCount(), EdgeCount() int               // O(1)
//	Stats() GraphStats                           // O(1)
//
//	// Cloning & views
//	CloneEmpty(), Clone() *Graph                 // O(V), O(V+E)
//	Adjacency() dijkstra.Graph[string]           // O(V+E) snapshot for the solver
//
// Errors:
//
//	ErrEmptyVertexID   - zero-length vertex ID
//	ErrVertexNotFound  - missing vertex
//	ErrEdgeNotFound    - missing edge
//	ErrNegativeWeight  - weight below zero
//	ErrBadWeight       - NaN or +Inf weight
//	ErrLoopNotAllowed  - self-loop when loops disabled
//
// Example:
//
//	g := core.NewGraph()
//	_ = g.AddEdge("A", "B", 1)
//	_ = g.AddEdge("B", "C", 2)
//	s, err := dijkstra.New(g.Adjacency(), "A")
package core
