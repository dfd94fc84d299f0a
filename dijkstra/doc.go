// Package dijkstra computes least-cost routes between two nodes of a core.Graph
// under a selectable cost model.
//
// Overview:
//
//   - ShortestPath(g, source, dest, opts...) runs Dijkstra's algorithm on an
//     immutable snapshot of g and returns the node sequence and total cost of one
//     cheapest route.
//   - The frontier is a pqueue.Heap keyed by node index. Every node is seeded up
//     front (source at 0, others at +∞) and improved in place with DecreaseKey,
//     so exactly one record per node is ever resident.
//   - The search stops as soon as the destination is extracted. Non-negative edge
//     costs guarantee no later extraction can be cheaper.
//
// Cost models:
//
//   - Distance: cost(edge) = weight.
//   - Time:     cost(edge) = TransferOverhead + PerUnit × weight, in seconds.
//     Defaults are 120 s and 40 s per distance unit (DefaultTimeParams); override
//     with WithTimeParams. Both models read the same edge weight.
//
// Result mapping:
//
//   - Success:          (*Route, nil)
//   - INVALID_ENDPOINTS: (nil, ErrInvalidEndpoints), checked before any heap work
//   - UNREACHABLE:       (nil, ErrUnreachable), the frontier ran out
//
// Branch on the failures with errors.Is. ErrNegativeWeight and ErrFrontierCorrupt
// signal caller or programming errors, never an ordinary "no route".
//
// Options:
//
//   - WithCostModel(m)    selects Distance (default) or Time.
//   - WithTimeParams(p)   overrides the Time model constants.
//   - WithPreCheck()      runs an unweighted reachability walk (dfs.ReachableIn) first
//     as a fast rejection path; it always agrees with ErrUnreachable.
//
// Complexity:
//
//   - Time:  O((V + E) log V) for the search, plus O(V log V + E) for the snapshot.
//   - Space: O(V + E). Paths share prefixes, so carrying one per record costs O(1) per relaxation.
//
// Thread safety:
//
//   - The graph is read once through core.Graph.Snapshot; later mutations do not
//     affect a running search. Concurrent searches on the same graph are safe and
//     share no mutable state.
//   - There is no cancellation: a search always runs to Found or Exhausted.
package dijkstra
