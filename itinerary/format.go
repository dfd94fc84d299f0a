package itinerary

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
)

// ParseKey splits a node key into a Station.
func ParseKey(key string) (Station, error) {
	if strings.Count(key, Separator) != 1 {
		return Station{}, fmt.Errorf("%w: %q", ErrMalformedNodeName, key)
	}
	line, name, _ := strings.Cut(key, Separator)
	if line == "" {
		return Station{}, fmt.Errorf("%w: empty line code in %q", ErrMalformedNodeName, key)
	}

	return Station{Key: key, Line: line, Name: name}, nil
}

// LineCode returns the part of key before the separator.
func LineCode(key string) (string, error) {
	st, err := ParseKey(key)
	if err != nil {
		return "", err
	}

	return st.Line, nil
}

// Format walks the route's consecutive node pairs and builds the itinerary.
// Cost and Model are copied from route unchanged.
func Format(route *dijkstra.Route) (*Itinerary, error) {
	if route == nil {
		return nil, ErrEmptyRoute
	}
	it, err := FormatNodes(route.Nodes)
	if err != nil {
		return nil, err
	}
	it.Cost, it.Model = route.Cost, route.Model

	return it, nil
}

// FormatNodes builds an itinerary from a bare node sequence, leaving Cost zero.
//
// Implementation:
//   - Stage 1: Reject empty input (ErrEmptyRoute) and parse every key up
//     front, so a malformed key fails the whole call before any output is built.
//   - Stage 2: Emit Start, the first node, then for each following node a change
//     segment when the line code differs, followed by the node itself.
//   - Stage 3: Emit End.
//
// Complexity: O(len(nodes)).
func FormatNodes(nodes []string) (*Itinerary, error) {
	if len(nodes) == 0 {
		return nil, ErrEmptyRoute
	}

	stations := make([]Station, len(nodes))
	for i, key := range nodes {
		st, err := ParseKey(key)
		if err != nil {
			return nil, err
		}
		stations[i] = st
	}

	it := &Itinerary{Segments: make([]Segment, 0, len(stations)+2)}
	it.Segments = append(it.Segments,
		Segment{Kind: SegmentStart},
		Segment{Kind: SegmentNode, Node: stations[0].Key},
	)

	var prev, cur Station
	for i := 1; i < len(stations); i++ {
		prev, cur = stations[i-1], stations[i]
		if prev.Line != cur.Line {
			it.Interchanges++
			it.Segments = append(it.Segments, Segment{
				Kind:     SegmentChange,
				Node:     prev.Key,
				FromLine: prev.Line,
				ToLine:   cur.Line,
			})
		}
		it.Segments = append(it.Segments, Segment{Kind: SegmentNode, Node: cur.Key})
	}
	it.Segments = append(it.Segments, Segment{Kind: SegmentEnd})

	return it, nil
}

// String renders one segment as display text.
func (s Segment) String() string {
	switch s.Kind {
	case SegmentStart:
		return "START"
	case SegmentEnd:
		return "END"
	case SegmentChange:
		return fmt.Sprintf("CHANGE FROM %s LINE TO %s LINE AT %s", s.FromLine, s.ToLine, s.Node)
	default:
		return s.Node
	}
}

// String renders the itinerary as arrow-prefixed lines:
//
//	START ==> A~Alpha
//	    ==> CHANGE FROM A LINE TO B LINE AT A~Alpha
//	    ==> B~Beta
//	    ==> END
func (it *Itinerary) String() string {
	var sb strings.Builder
	for i, seg := range it.Segments {
		switch {
		case seg.Kind == SegmentStart:
			sb.WriteString(seg.String())
		case i == 1:
			sb.WriteString(" ==> ")
			sb.WriteString(seg.String())
		default:
			sb.WriteString("\n    ==> ")
			sb.WriteString(seg.String())
		}
	}

	return sb.String()
}

// Nodes returns the node keys in travel order, without markers or changes.
func (it *Itinerary) Nodes() []string {
	out := make([]string, 0, len(it.Segments))
	for _, seg := range it.Segments {
		if seg.Kind == SegmentNode {
			out = append(out, seg.Node)
		}
	}

	return out
}

// Minutes converts seconds to whole minutes, rounding up. Non-positive input yields 0.
func Minutes(seconds int64) int64 {
	if seconds <= 0 {
		return 0
	}

	return (seconds + 59) / 60
}

// Stations lists every node of g split into line code and name, sorted by key.
// The first malformed key aborts with ErrMalformedNodeName.
func Stations(g *core.Graph) ([]Station, error) {
	keys := g.Nodes()
	out := make([]Station, 0, len(keys))
	for _, k := range keys {
		st, err := ParseKey(k)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}

	return out, nil
}

// DisplayName returns the part of key after the separator.
func DisplayName(key string) (string, error) {
	st, err := ParseKey(key)
	if err != nil {
		return "", err
	}

	return st.Name, nil
}

// StationCodes returns the upper-cased line code of every node in g, in node
// key order. Codes repeat when several stations share a line.
func StationCodes(g *core.Graph) ([]string, error) {
	stations, err := Stations(g)
	if err != nil {
		return nil, err
	}
	codes := make([]string, len(stations))
	for i, st := range stations {
		codes[i] = strings.ToUpper(st.Line)
	}

	return codes, nil
}

// Resolve maps a user-supplied station reference to a node key of g.
// An exact node key wins; otherwise query is matched case-insensitively
// against line codes, skipping malformed keys. No match yields
// ErrUnknownStation and several matches yield ErrAmbiguousCode.
func Resolve(g *core.Graph, query string) (string, error) {
	if g.HasNode(query) {
		return query, nil
	}

	code := strings.ToUpper(strings.TrimSpace(query))
	var matches []string
	for _, key := range g.Nodes() {
		st, err := ParseKey(key)
		if err != nil {
			continue
		}
		if strings.ToUpper(st.Line) == code {
			matches = append(matches, key)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %q", ErrUnknownStation, query)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %q matches %s", ErrAmbiguousCode, query, strings.Join(matches, ", "))
	}
}
