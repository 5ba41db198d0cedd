// Package pqpath is a small shortest-path toolkit built around indexed
// priority queues.
//
// What is in here?
//
//	pq/        generic indexed min-priority queues (binary heap, sorted array)
//	           with O(1) handle lookup, so DecreaseKey never searches
//	dijkstra/  single-source shortest paths driven by any pq backend
//	core/      thread-safe weighted Graph that validates input and hands
//	           the solver an adjacency snapshot
//	edgelist/  reader and writer for whitespace-delimited "from to weight" triples
//	builder/   deterministic topology generators (path, cycle, grid, random...)
//	cmd/pqpath command line front end (shortest path, table, generate, dumpconfig)
//
// Quick example:
//
//	    A──1──B
//	     \    │
//	      5   2
//	       \  │
//	         C
//
//	g, _ := edgelist.Parse("A B 1\nB C 2\nA C 5")
//	s, _ := dijkstra.New(g.Adjacency(), "A")
//	s.PathTo("C") // [A B C], distance 3
//
// Both queue backends produce the same distances; the heap is the default,
// the sorted array is there for small inputs and for comparison.
//
//	go install github.com/katalvlaran/pqpath/cmd/pqpath@latest
package pqpath
