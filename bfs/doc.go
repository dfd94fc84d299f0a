// Package bfs provides breadth-first search over a core.Graph, returning
// hop counts, parent links and visit order, plus FewestLegs for the route
// that uses the smallest number of edges regardless of weight.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node.
//   - Result holds Order (visit sequence), Depth (node → hops) and
//     Parent (node → predecessor in the BFS tree).
//   - WithContext cancels a long walk.
//   - WithFilterNeighbor prunes individual edges, e.g. to avoid a line.
//   - WithMaxDepth bounds the number of hops (0 means no limit).
//
// Determinism
//
//	The walk runs on a core.Snapshot whose rows are sorted by key, so the
//	visit order and every reconstructed path are reproducible.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
