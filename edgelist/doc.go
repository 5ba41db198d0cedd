// Package edgelist reads weighted edge lists into a core.Graph and writes
// them back out.
//
// The format is a stream of whitespace-delimited triples:
//
//	from to weight
//
// Vertex IDs are arbitrary non-blank words; weight is a decimal or
// scientific-notation float. Line breaks carry no meaning, so a triple may
// span lines and a line may hold several triples. A '#' starts a comment
// that runs to the end of its line.
//
// By default the graph is undirected: each triple is stored in both
// directions and a repeated pair keeps the last weight read. A negative
// weight aborts the whole read with an error wrapping core.ErrNegativeWeight.
//
// Example:
//
//	g, err := edgelist.Parse("A B 1\nB C 2\nA C 5")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	s, _ := dijkstra.New(g.Adjacency(), "A")
package edgelist
