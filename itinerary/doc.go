// Package itinerary turns a dijkstra.Route into a human-readable, segmented
// itinerary annotated with line changes.
//
// Node keys follow "<LINE_CODE>~<DISPLAY_NAME>" with exactly one '~'. Two
// consecutive nodes whose line codes differ form an interchange: Format emits a
// change segment between them and counts it.
//
// Errors:
//
//   - ErrMalformedNodeName  a key on the route breaks the separator convention.
//     This is a data-integrity failure, distinct from the dijkstra failures.
//   - ErrEmptyRoute         nil route or route without nodes.
//
// Format never converts units: Cost is carried through unchanged (seconds for
// the Time model). Minutes is provided for callers that present time in minutes.
package itinerary
