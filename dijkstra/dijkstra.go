package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pqpath/pq"
)

// Solver holds the result of one single-source run. It is built and fully
// solved by New; afterwards it only answers queries.
type Solver[K comparable] struct {
	source  K
	backend pq.Backend
	dist    map[K]float64 // vertex → final distance from source (+Inf if unreached)
	pred    map[K]K       // vertex → previous vertex on the shortest path
}

// New runs Dijkstra's algorithm over g from source and returns the solved
// result. It accepts functional options (WithBackend, WithCapacity).
//
// Preconditions and validation (in order):
//  1. Backend must be valid (pq.ErrUnknownBackend).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must have at least one vertex (ErrEmptyGraph).
//  4. source must be a key of g (ErrVertexNotFound).
//
// Edge weights are not validated: they must be non-negative.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with the binary heap.
//   - Space: O(V).
func New[K comparable](g Graph[K], source K, opts ...Option) (*Solver[K], error) {
	// 1) Build options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if !cfg.Backend.Valid() {
		return nil, fmt.Errorf("dijkstra: %w: %d", pq.ErrUnknownBackend, int(cfg.Backend))
	}

	// 2) Validate the mapping and the source.
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(g) == 0 {
		return nil, ErrEmptyGraph
	}
	if _, ok := g[source]; !ok {
		return nil, fmt.Errorf("%w: source %v", ErrVertexNotFound, source)
	}

	capacity := cfg.Capacity
	if capacity <= 0 {
		capacity = len(g)
	}

	// 3) Run.
	r := &runner[K]{
		g:       g,
		q:       pq.New[K, float64](cfg.Backend, capacity),
		dist:    make(map[K]float64, len(g)),
		pred:    make(map[K]K, len(g)),
		visited: make(map[K]bool, len(g)),
	}
	if err := r.init(source); err != nil {
		return nil, err
	}
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Solver[K]{
		source:  source,
		backend: cfg.Backend,
		dist:    r.dist,
		pred:    r.pred,
	}, nil
}

// runner holds the mutable state of a single run.
type runner[K comparable] struct {
	g       Graph[K]             // input mapping; read-only
	q       pq.Queue[K, float64] // vertices not finalized yet
	dist    map[K]float64        // best known distance
	pred    map[K]K              // predecessor on the best known path
	visited map[K]bool           // finalized vertices
}

// init queues every vertex at +Inf and lowers the source to 0.
func (r *runner[K]) init(source K) error {
	inf := math.Inf(1)
	for v := range r.g {
		r.q.Insert(v, inf)
		r.dist[v] = inf
	}

	// The source is already queued: this is a decrease-key, not an insert.
	if err := r.q.DecreaseKey(source, 0); err != nil {
		return fmt.Errorf("dijkstra: seeding source %v: %w", source, err)
	}
	r.dist[source] = 0

	return nil
}

// process extracts vertices in order of distance until the queue is empty.
func (r *runner[K]) process() error {
	for r.q.Len() > 0 {
		u, err := r.q.ExtractMin()
		if err != nil {
			return fmt.Errorf("dijkstra: %w", err)
		}
		r.visited[u] = true
		r.relax(u)
	}

	return nil
}

// relax tries to improve every neighbor of the freshly finalized vertex u.
func (r *runner[K]) relax(u K) {
	du := r.dist[u]
	for v, w := range r.g[u] {
		// Final distances cannot improve.
		if r.visited[v] {
			continue
		}

		candidate := du + w

		// v only appears as a neighbor and was never queued.
		if !r.q.Contains(v) {
			r.q.Insert(v, candidate)
			r.pred[v] = u
			r.dist[v] = candidate
			continue
		}

		current, err := r.q.Priority(v)
		if err != nil || !(candidate < current) {
			continue
		}
		_ = r.q.DecreaseKey(v, candidate)
		r.pred[v] = u
		r.dist[v] = candidate
	}
}

// Source returns the vertex the run started from.
func (s *Solver[K]) Source() K { return s.source }

// Backend returns the queue backend used for the run.
func (s *Solver[K]) Backend() pq.Backend { return s.backend }

// DistanceTo returns the shortest distance from the source to dest, or
// +Inf when dest was never reached. ErrVertexNotFound if dest is not part
// of the vertex set.
func (s *Solver[K]) DistanceTo(dest K) (float64, error) {
	d, ok := s.dist[dest]
	if !ok {
		return math.Inf(1), fmt.Errorf("%w: %v", ErrVertexNotFound, dest)
	}

	return d, nil
}

// Reachable reports whether dest has a finite distance from the source.
func (s *Solver[K]) Reachable(dest K) bool {
	d, ok := s.dist[dest]
	return ok && !math.IsInf(d, 1)
}

// PathTo walks the predecessor chain back from dest and returns it in
// source-to-dest order. For a vertex that was never reached the chain is just
// dest itself, so the result is [dest]; check Reachable to distinguish that
// from the trivial path of the source. ErrVertexNotFound if dest is not part
// of the vertex set.
func (s *Solver[K]) PathTo(dest K) ([]K, error) {
	if _, ok := s.dist[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, dest)
	}

	// Every predecessor was finalized before its successor, so the chain ends.
	path := []K{dest}
	for cur := dest; ; {
		p, ok := s.pred[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Distances returns a copy of the distance map, one row per vertex.
func (s *Solver[K]) Distances() map[K]float64 {
	out := make(map[K]float64, len(s.dist))
	for v, d := range s.dist {
		out[v] = d
	}

	return out
}
