// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"

	"github.com/katalvlaran/pqpath/core"
	"github.com/katalvlaran/pqpath/dijkstra"
)

// ExampleGraph closes a road and watches the map change.
func ExampleGraph() {
	g := core.NewGraph()
	_ = g.AddEdge("Depot", "Mill", 4)
	_ = g.AddEdge("Mill", "Port", 2)
	_ = g.AddEdge("Port", "Depot", 7)
	fmt.Println(g.Stats())

	_ = g.RemoveEdge("Port", "Depot")
	fmt.Println(g.HasEdge("Depot", "Port"), g.EdgeCount())

	_ = g.RemoveVertex("Mill")
	fmt.Println(g.Vertices(), g.EdgeCount())

	// Output:
	// vertices=3 edges=3 directed=false loops=false
	// false 2
	// [Depot Port] 0
}

// ExampleGraph_Adjacency feeds a built graph to the shortest-path solver.
func ExampleGraph_Adjacency() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 2)
	_ = g.AddEdge("A", "C", 5)

	s, err := dijkstra.New(g.Adjacency(), "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	d, _ := s.DistanceTo("C")
	p, _ := s.PathTo("C")
	fmt.Println(d, p)
	// Output: 3 [A B C]
}

// ExampleGraph_AddEdge shows a negative weight being refused.
func ExampleGraph_AddEdge() {
	g := core.NewGraph()
	err := g.AddEdge("A", "B", -1)
	fmt.Println(err)
	// Output: core: negative edge weight (-1): A→B
}
