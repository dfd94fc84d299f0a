// File: methods_edges.go
// Role: Edge lifecycle & adjacency queries.
//
// Policy:
//   - Edges are undirected: both adjacency buckets are written and cleared together.
//   - The graph is simple: a second AddEdge for a connected pair is a no-op
//     and does NOT overwrite the stored weight.
//   - Weights are not validated. Zero or negative weights are a caller error that
//     breaks shortest-path optimality.
package core

import "sort"

// AddEdge connects a and b with weight w in both directions.
//
// It is a no-op (returns false) when either endpoint is missing, when a == b,
// or when the edge already exists. Returns true when a new edge was stored.
//
// Complexity: O(1)
func (g *Graph) AddEdge(a, b string, w int64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	na, okA := g.adjacency[a]
	nb, okB := g.adjacency[b]
	if !okA || !okB || a == b {
		return false
	}
	if _, exists := na[b]; exists {
		return false
	}

	na[b] = w
	nb[a] = w
	g.edges++

	return true
}

// RemoveEdge deletes the edge {a,b} from both endpoints. No-op if absent.
// Complexity: O(1)
func (g *Graph) RemoveEdge(a, b string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	na, okA := g.adjacency[a]
	nb, okB := g.adjacency[b]
	if !okA || !okB {
		return
	}
	if _, exists := na[b]; !exists {
		return
	}
	delete(na, b)
	delete(nb, a)
	g.edges--
}

// HasEdge reports whether {a,b} is an edge. HasEdge(a,b) == HasEdge(b,a).
// Complexity: O(1)
func (g *Graph) HasEdge(a, b string) bool {
	_, ok := g.Weight(a, b)
	return ok
}

// Weight returns the weight of edge {a,b}.
func (g *Graph) Weight(a, b string) (int64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	na, ok := g.adjacency[a]
	if !ok {
		return 0, false
	}
	if _, ok = g.adjacency[b]; !ok {
		return 0, false
	}
	w, ok := na[b]

	return w, ok
}

// EdgeCount returns the number of undirected edges, each counted once.
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// NeighborsOf returns the (neighbor, weight) pairs of key sorted by neighbor key.
// An absent or isolated node yields an empty, non-nil slice.
//
// Complexity: O(d log d) where d = deg(key).
func (g *Graph) NeighborsOf(key string) []Arc {
	g.mu.RLock()
	nbrs := g.adjacency[key]
	out := make([]Arc, 0, len(nbrs))
	for to, w := range nbrs {
		out = append(out, Arc{To: to, Weight: w})
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out
}
