// File: snapshot.go
// Role: Immutable, dense-index copies of a Graph for searches.
//
// Determinism:
//   - Node indices follow Nodes() order (sorted keys), so index i always names the
//     same key for a given graph state.
//   - Each adjacency row is sorted by neighbor index.
//
// Concurrency:
//   - Snapshot() holds the read lock only while copying.
//   - A Snapshot is never mutated after construction and is safe to share
//     between concurrent searches.

package core

import "sort"

// IndexedArc is an Arc whose endpoint is a Snapshot index instead of a key.
type IndexedArc struct {
	To     int
	Weight int64
}

// Snapshot is a read-only copy of a Graph's topology with nodes numbered 0..Len()-1.
type Snapshot struct {
	keys  []string
	index map[string]int
	adj   [][]IndexedArc
	edges int
}

// Snapshot copies the current topology into an immutable Snapshot.
//
// Implementation:
//   - Stage 1: Under the read lock, collect and sort keys, then assign indices.
//   - Stage 2: Copy every adjacency bucket into an index-addressed row.
//   - Stage 3: Sort each row by neighbor index.
//
// Complexity: O(V log V + E log d)
func (g *Graph) Snapshot() *Snapshot {
	g.mu.RLock()
	keys := make([]string, 0, len(g.adjacency))
	for k := range g.adjacency {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := &Snapshot{
		keys:  keys,
		index: make(map[string]int, len(keys)),
		adj:   make([][]IndexedArc, len(keys)),
		edges: g.edges,
	}
	for i, k := range keys {
		s.index[k] = i
	}
	for i, k := range keys {
		row := make([]IndexedArc, 0, len(g.adjacency[k]))
		for to, w := range g.adjacency[k] {
			row = append(row, IndexedArc{To: s.index[to], Weight: w})
		}
		s.adj[i] = row
	}
	g.mu.RUnlock()

	for _, row := range s.adj {
		sort.Slice(row, func(a, b int) bool { return row[a].To < row[b].To })
	}

	return s
}

// Len returns the number of nodes in the snapshot.
func (s *Snapshot) Len() int { return len(s.keys) }

// EdgeCount returns the number of undirected edges in the snapshot.
func (s *Snapshot) EdgeCount() int { return s.edges }

// Index returns the dense index of key.
func (s *Snapshot) Index(key string) (int, bool) {
	i, ok := s.index[key]
	return i, ok
}

// Key returns the node key at index i. Panics if i is out of range.
func (s *Snapshot) Key(i int) string { return s.keys[i] }

// Keys maps a sequence of indices back to node keys.
func (s *Snapshot) Keys(idx []int) []string {
	out := make([]string, len(idx))
	for i, v := range idx {
		out[i] = s.keys[v]
	}

	return out
}

// Neighbors returns the adjacency row of node i. The slice is shared; callers must not modify it.
func (s *Snapshot) Neighbors(i int) []IndexedArc { return s.adj[i] }
