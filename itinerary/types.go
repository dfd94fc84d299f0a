package itinerary

import (
	"errors"

	"github.com/katalvlaran/lvroute/dijkstra"
)

// Separator splits a node key into line code and display name.
const Separator = "~"

var (
	// ErrMalformedNodeName indicates a node key without exactly one Separator
	// or with an empty line code.
	ErrMalformedNodeName = errors.New("itinerary: malformed node name")

	// ErrUnknownStation indicates Resolve found neither a node key nor a line code.
	ErrUnknownStation = errors.New("itinerary: unknown station")

	// ErrAmbiguousCode indicates Resolve matched a line code shared by several nodes.
	ErrAmbiguousCode = errors.New("itinerary: ambiguous station code")

	// ErrEmptyRoute indicates Format received a nil route or one without nodes.
	ErrEmptyRoute = errors.New("itinerary: empty route")
)

// SegmentKind tags a display segment.
type SegmentKind string

const (
	// SegmentStart opens every itinerary.
	SegmentStart SegmentKind = "start"

	// SegmentNode is one visited node, in travel order.
	SegmentNode SegmentKind = "node"

	// SegmentChange marks a switch between line codes of consecutive nodes.
	SegmentChange SegmentKind = "change"

	// SegmentEnd closes every itinerary.
	SegmentEnd SegmentKind = "end"
)

// Segment is one display line of an itinerary.
//
// For SegmentNode, Node is the visited key. For SegmentChange, FromLine and
// ToLine are the line codes and Node is the key where the change happens
// (the last node on FromLine). Start and End carry no data.
type Segment struct {
	Kind     SegmentKind `json:"kind"`
	Node     string      `json:"node,omitempty"`
	FromLine string      `json:"fromLine,omitempty"`
	ToLine   string      `json:"toLine,omitempty"`
}

// Itinerary is the formatted view of a Route. It holds no state of its own.
type Itinerary struct {
	Segments     []Segment          `json:"segments"`
	Interchanges int                `json:"interchanges"`
	Cost         int64              `json:"cost"`
	Model        dijkstra.CostModel `json:"-"`
}

// Station is a node key split into its parts.
type Station struct {
	Key  string `json:"key"`
	Line string `json:"line"`
	Name string `json:"name"`
}
