// Package dijkstra implements Dijkstra's single-source shortest-path algorithm
// on top of the indexed priority queues of package pq.
//
// The solver consumes an adjacency mapping (vertex → neighbor → weight) and a
// source vertex, runs the whole relaxation loop inside New, and afterwards
// answers distance and path queries from its distance and predecessor maps.
//
// Algorithm:
//
//  1. Every vertex of the mapping is queued at +Inf with distance +Inf.
//  2. The source is lowered to 0 with a decrease-key (not a fresh insert).
//  3. Until the queue is empty: extract the minimum u, mark it visited and
//     relax every edge u→v. Visited neighbors are final and skipped; a
//     neighbor that is not queued (it only appears as a neighbor, never as a
//     key) is inserted at the candidate distance; a queued neighbor is
//     decreased when the candidate is strictly better.
//
// Unlike a lazy-deletion heap, the indexed queue never holds stale entries:
// each vertex is queued exactly once and extracted exactly once.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with pq.BinaryHeapBackend,
//     O(V² + E·V) worst case with pq.SortedBackend.
//   - Space: O(V) for the queue, distance, predecessor and visited maps.
//
// Preconditions:
//
//   - Edge weights must be non-negative. The solver does not check this; a
//     negative weight produces an unspecified result. Reject such input before
//     building the mapping (see package core and package edgelist).
//   - The mapping must not be mutated while New runs.
//
// Errors (sentinel):
//
//   - ErrNilGraph       the mapping is nil.
//   - ErrEmptyGraph     the mapping has no vertices.
//   - ErrVertexNotFound the source, or a queried vertex, is not in the vertex set.
//
// Paths to unreachable vertices:
//
// PathTo keeps the predecessor-walk semantics: for a vertex that was never
// reached it returns the one-element path [dest], which looks exactly like
// the trivial path of the source. Use Reachable or DistanceTo to tell the two
// apart.
//
// Example usage:
//
//	g := dijkstra.Graph[string]{
//	    "A": {"B": 1, "C": 5},
//	    "B": {"A": 1, "C": 2},
//	    "C": {"A": 5, "B": 2},
//	}
//	s, err := dijkstra.New(g, "A", dijkstra.WithBackend(pq.SortedBackend))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d, _ := s.DistanceTo("C") // 3
//	p, _ := s.PathTo("C")     // [A B C]
package dijkstra
