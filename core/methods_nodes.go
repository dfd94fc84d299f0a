// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns keys sorted lexicographically ascending.
//
// Concurrency:
//   - Node catalog and adjacency are both protected by g.mu.
package core

import "sort"

// AddNode inserts a node if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty key (ErrEmptyNodeKey).
//   - Stage 2: Under the write lock, allocate an empty adjacency bucket if absent.
//
// Behavior highlights:
//   - A second call with the same key is a no-op; existing adjacency is preserved.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddNode(key string) error {
	if key == "" {
		return ErrEmptyNodeKey
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.adjacency[key]; exists {
		return nil // keep current neighbors
	}
	g.adjacency[key] = make(map[string]int64)

	return nil
}

// HasNode reports whether the node exists (empty key ⇒ false).
// Complexity: O(1)
func (g *Graph) HasNode(key string) bool {
	if key == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[key]

	return ok
}

// RemoveNode deletes a node and every edge incident to it.
//
// Implementation:
//   - Stage 1: Under the write lock, look the node up; absent ⇒ no-op.
//   - Stage 2: For each neighbor, delete the back-edge and decrement the edge count.
//   - Stage 3: Drop the node's own bucket.
//
// Complexity:
//   - Time O(deg(key)), Space O(1).
func (g *Graph) RemoveNode(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	nbrs, ok := g.adjacency[key]
	if !ok {
		return
	}
	for nbr := range nbrs {
		delete(g.adjacency[nbr], key)
		g.edges--
	}
	delete(g.adjacency, key)
}

// Nodes returns all node keys sorted ascending.
// Complexity: O(V log V)
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	keys := make([]string, 0, len(g.adjacency))
	for k := range g.adjacency {
		keys = append(keys, k)
	}
	g.mu.RUnlock()

	sort.Strings(keys)

	return keys
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}
