// Package core provides the thread-safe, in-memory route network Graph used by
// every search in lvroute.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected: every edge is stored on both endpoints with the same weight.
//   - Simple: no parallel edges, no self-loops. Re-adding an existing edge is a no-op.
//   - Weighted: each edge carries a positive integer weight in "distance units".
//   - String-keyed: node keys follow the "<LINE_CODE>~<DISPLAY_NAME>" convention.
//     The convention is an external contract; Graph stores any non-empty key.
//
// Ownership:
//
//   - There is no package-level graph. Every NewGraph call returns an independent
//     instance, so several networks (or tests) can live in one process.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(key string) error            // O(1), idempotent
//	RemoveNode(key string)               // O(deg), removes back-edges, no-op if absent
//	HasNode(key string) bool             // O(1)
//
//	// Edge lifecycle
//	AddEdge(a, b string, w int64) bool   // O(1), no-op if endpoint missing or edge exists
//	RemoveEdge(a, b string)              // O(1), symmetric, no-op if absent
//	HasEdge(a, b string) bool            // O(1), symmetric
//	Weight(a, b string) (int64, bool)    // O(1)
//
//	// Query
//	NeighborsOf(key string) []Arc        // O(d log d), sorted by neighbor key
//	Nodes() []string                     // O(V log V), sorted
//	NodeCount() int                      // O(1)
//	EdgeCount() int                      // O(1), each undirected edge once
//
//	// Snapshots
//	Snapshot() *Snapshot                 // O(V + E), immutable dense-index copy
//
// Concurrency:
//
//   - A single sync.RWMutex guards the node catalog and adjacency. Mutators take
//     the write lock; queries take the read lock.
//   - Searches never read the live maps: they call Snapshot() once and work on the
//     immutable copy. Any number of searches may share one Snapshot.
//
// Errors:
//
//	ErrEmptyNodeKey – zero-length node key passed to AddNode
package core
