package dijkstra

import (
	"errors"

	"github.com/katalvlaran/pqpath/pq"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil adjacency mapping was passed to New.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptyGraph indicates that the adjacency mapping has no vertices.
	ErrEmptyGraph = errors.New("dijkstra: graph has no vertices")

	// ErrVertexNotFound indicates that the source vertex, or a vertex passed
	// to a query, is not part of the solved vertex set.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found")
)

// Graph is an adjacency mapping: vertex → neighbor → non-negative weight.
//
// K is the vertex identity. It must be comparable (a valid map key with
// equality and a stable hash). A vertex with no outgoing edges is a key with
// an empty (or nil) inner map.
type Graph[K comparable] map[K]map[K]float64

// Options configures a solver run.
//
// Backend  – priority-queue implementation driving the run.
// Capacity – initial queue capacity; ≤ 0 sizes the queue to the vertex count.
type Options struct {
	Backend  pq.Backend // Which indexed queue to use
	Capacity int        // Initial queue capacity hint
}

// Option represents a functional option for configuring the solver.
type Option func(*Options)

// WithBackend selects the priority-queue backend.
// Default is pq.BinaryHeapBackend.
func WithBackend(b pq.Backend) Option {
	return func(o *Options) {
		o.Backend = b
	}
}

// WithCapacity overrides the initial queue capacity. Non-positive values keep
// the default (the number of vertices in the mapping).
func WithCapacity(n int) Option {
	return func(o *Options) {
		o.Capacity = n
	}
}

// DefaultOptions returns the options used when none are given:
//   - Backend:  pq.BinaryHeapBackend.
//   - Capacity: 0 (sized to the vertex count).
func DefaultOptions() Options {
	return Options{
		Backend:  pq.BinaryHeapBackend,
		Capacity: 0,
	}
}
