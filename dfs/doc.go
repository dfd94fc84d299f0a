// Package dfs implements depth-first traversal and reachability checks on core.Graph.
//
// The traversal is iterative: an explicit stack replaces recursion, so call depth
// stays constant on long chains or pathological networks. Visited sets are
// github.com/yourbasic/bit sets over core.Snapshot indices.
//
// Key features:
//   - DFS(g, start, opts...): pre-order traversal with depth and parent records
//   - Reachable(g, from, to, opts...): early-exit path existence check, the cheap
//     rejection test callers may run before a weighted search
//   - Component(g, start, opts...): every node reachable from start, sorted
//   - Cancellation via context.Context, depth limit via WithMaxDepth
//
// Determinism:
//
//   - Neighbors are explored in ascending key order, so Order is reproducible.
//
// Complexity:
//
//   - Time:   O(V + E) plus one O(V log V + E) snapshot per call.
//   - Memory: O(V) for the stack, the bit set and result maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if a start or target node is missing.
//   - ctx.Err()                 if the context is cancelled mid-walk.
package dfs
