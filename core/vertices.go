// SPDX-License-Identifier: MIT

package core

import "sort"

// AddVertex registers id. Adding a known vertex is a no-op.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	g.bucket(id)
	g.mu.Unlock()
	return nil
}

// HasVertex reports whether id is a vertex.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	_, ok := g.adj[id]
	g.mu.RUnlock()
	return ok
}

// RemoveVertex deletes id together with every edge that starts or ends
// at it. O(V) because incoming edges have no index.
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	out, ok := g.adj[id]
	if !ok {
		return ErrVertexNotFound
	}
	// Undirected edges are mirrored, so counting the outgoing bucket counts
	// each of them once; only directed graphs have uncounted incoming edges.
	g.edges -= len(out)
	delete(g.adj, id)
	for _, nbrs := range g.adj {
		if _, in := nbrs[id]; in {
			delete(nbrs, id)
			if g.directed {
				g.edges--
			}
		}
	}
	return nil
}

// Vertices lists every vertex ID in ascending order.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	ids := keys(g.adj)
	g.mu.RUnlock()
	return ids
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.adj)
}

// Neighbors lists the heads of the edges leaving id, in ascending order.
// A self-loop lists id itself.
func (g *Graph) Neighbors(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adj[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	return keys(nbrs), nil
}

// bucket returns the neighbor map of id, creating the vertex if needed.
// Caller holds mu for writing.
func (g *Graph) bucket(id string) map[string]float64 {
	nbrs, ok := g.adj[id]
	if !ok {
		nbrs = make(map[string]float64)
		g.adj[id] = nbrs
	}
	return nbrs
}

func keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
