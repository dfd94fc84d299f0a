// Package lvroute finds cheapest routes through a line-coded transit network
// and renders them as itineraries with interchanges.
//
// What is lvroute?
//
//	A small, thread-safe routing toolkit built from focused packages:
//		• pqueue/    — generic indexed min-heap with decrease-key
//		• core/      — undirected weighted Graph and immutable Snapshot
//		• dfs/       — iterative reachability and components
//		• bfs/       — hop-count search, FewestLegs
//		• dijkstra/  — single-pair ShortestPath under Distance or Time cost
//		• itinerary/ — "LINE~Name" keys to segments and interchange counts
//		• network/   — YAML network documents
//		• server/    — gin HTTP API over one loaded network
//
// Node keys follow the "<line code>~<display name>" convention, e.g.
// "DEL~Indira Gandhi International Airport, Delhi". A change of line code
// between consecutive nodes of a route counts as one interchange.
//
// Quick example:
//
//	g := core.NewGraph()
//	_ = g.AddNode("A~Alpha")
//	_ = g.AddNode("B~Beta")
//	g.AddEdge("A~Alpha", "B~Beta", 10)
//
//	route, _ := dijkstra.ShortestPath(g, "A~Alpha", "B~Beta", dijkstra.WithCostModel(dijkstra.Time))
//	it, _ := itinerary.Format(route)
//	fmt.Println(it, itinerary.Minutes(it.Cost))
//
// The cmd/lvroute executable serves the API for the network named by
// NETWORK_FILE (network.yaml by default).
//
//	go run ./cmd/lvroute
package lvroute
