package itinerary_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/itinerary"
)

func TestFormat_ThreeLines(t *testing.T) {
	g := core.NewGraph()
	for _, k := range []string{"A~Alpha", "B~Beta", "C~Gamma"} {
		require.NoError(t, g.AddNode(k))
	}
	g.AddEdge("A~Alpha", "B~Beta", 10)
	g.AddEdge("B~Beta", "C~Gamma", 5)

	route, err := dijkstra.ShortestPath(g, "A~Alpha", "C~Gamma")
	require.NoError(t, err)

	it, err := itinerary.Format(route)
	require.NoError(t, err)

	assert.Equal(t, 2, it.Interchanges)
	assert.Equal(t, int64(15), it.Cost)
	assert.Equal(t, []itinerary.Segment{
		{Kind: itinerary.SegmentStart},
		{Kind: itinerary.SegmentNode, Node: "A~Alpha"},
		{Kind: itinerary.SegmentChange, Node: "A~Alpha", FromLine: "A", ToLine: "B"},
		{Kind: itinerary.SegmentNode, Node: "B~Beta"},
		{Kind: itinerary.SegmentChange, Node: "B~Beta", FromLine: "B", ToLine: "C"},
		{Kind: itinerary.SegmentNode, Node: "C~Gamma"},
		{Kind: itinerary.SegmentEnd},
	}, it.Segments)
	assert.Equal(t, []string{"A~Alpha", "B~Beta", "C~Gamma"}, it.Nodes())
}

func TestFormat_SameLineNoInterchange(t *testing.T) {
	route := &dijkstra.Route{
		Nodes: []string{"RED~One", "RED~Two", "RED~Three"},
		Cost:  7,
	}
	it, err := itinerary.Format(route)
	require.NoError(t, err)
	assert.Equal(t, 0, it.Interchanges)
	assert.Len(t, it.Segments, 5)
}

func TestFormat_TimeCostUnchanged(t *testing.T) {
	route := &dijkstra.Route{
		Nodes: []string{"A~Alpha", "B~Beta", "C~Gamma"},
		Cost:  840,
		Model: dijkstra.Time,
	}
	it, err := itinerary.Format(route)
	require.NoError(t, err)
	assert.Equal(t, int64(840), it.Cost, "seconds are carried through")
	assert.Equal(t, dijkstra.Time, it.Model)
	assert.Equal(t, int64(14), itinerary.Minutes(it.Cost))
}

func TestFormat_SingleNode(t *testing.T) {
	it, err := itinerary.Format(&dijkstra.Route{Nodes: []string{"A~Alpha"}})
	require.NoError(t, err)
	assert.Equal(t, 0, it.Interchanges)
	assert.Equal(t, "START ==> A~Alpha\n    ==> END", it.String())
}

func TestFormat_String(t *testing.T) {
	it, err := itinerary.Format(&dijkstra.Route{Nodes: []string{"RED~Central", "RED~Harbour", "BLUE~Harbour"}})
	require.NoError(t, err)
	want := "START ==> RED~Central" +
		"\n    ==> RED~Harbour" +
		"\n    ==> CHANGE FROM RED LINE TO BLUE LINE AT RED~Harbour" +
		"\n    ==> BLUE~Harbour" +
		"\n    ==> END"
	assert.Equal(t, want, it.String())
}

func TestFormat_Malformed(t *testing.T) {
	cases := map[string][]string{
		"missing separator": {"A~Alpha", "Beta"},
		"double separator":  {"A~Alpha", "B~Be~ta"},
		"empty line code":   {"~Alpha", "B~Beta"},
	}
	for name, nodes := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := itinerary.Format(&dijkstra.Route{Nodes: nodes})
			require.ErrorIs(t, err, itinerary.ErrMalformedNodeName)
			assert.False(t, errors.Is(err, dijkstra.ErrUnreachable))
			assert.False(t, errors.Is(err, dijkstra.ErrInvalidEndpoints))
		})
	}
}

func TestFormat_EmptyRoute(t *testing.T) {
	_, err := itinerary.Format(nil)
	require.ErrorIs(t, err, itinerary.ErrEmptyRoute)

	_, err = itinerary.Format(&dijkstra.Route{})
	require.ErrorIs(t, err, itinerary.ErrEmptyRoute)
}

func TestMinutes(t *testing.T) {
	cases := map[int64]int64{0: 0, -5: 0, 1: 1, 59: 1, 60: 1, 61: 2, 840: 14, 841: 15}
	for in, want := range cases {
		assert.Equal(t, want, itinerary.Minutes(in), "Minutes(%d)", in)
	}
}

func TestParseKeyAndStations(t *testing.T) {
	st, err := itinerary.ParseKey("DEL~Indira Gandhi International Airport, Delhi")
	require.NoError(t, err)
	assert.Equal(t, "DEL", st.Line)
	assert.Equal(t, "Indira Gandhi International Airport, Delhi", st.Name)

	line, err := itinerary.LineCode("BOM~Mumbai")
	require.NoError(t, err)
	assert.Equal(t, "BOM", line)

	g := core.NewGraph()
	require.NoError(t, g.AddNode("B~Beta"))
	require.NoError(t, g.AddNode("A~Alpha"))
	stations, err := itinerary.Stations(g)
	require.NoError(t, err)
	assert.Equal(t, []itinerary.Station{
		{Key: "A~Alpha", Line: "A", Name: "Alpha"},
		{Key: "B~Beta", Line: "B", Name: "Beta"},
	}, stations)

	require.NoError(t, g.AddNode("broken"))
	_, err = itinerary.Stations(g)
	require.ErrorIs(t, err, itinerary.ErrMalformedNodeName)
}

func TestDisplayNameAndStationCodes(t *testing.T) {
	name, err := itinerary.DisplayName("CE~Central")
	require.NoError(t, err)
	assert.Equal(t, "Central", name)

	_, err = itinerary.DisplayName("Central")
	assert.ErrorIs(t, err, itinerary.ErrMalformedNodeName)

	g := core.NewGraph()
	for _, k := range []string{"B~Beta", "A~Alpha", "B~Bravo"} {
		require.NoError(t, g.AddNode(k))
	}
	codes, err := itinerary.StationCodes(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "B"}, codes)

	require.NoError(t, g.AddNode("bogus"))
	_, err = itinerary.StationCodes(g)
	assert.ErrorIs(t, err, itinerary.ErrMalformedNodeName)
}

func TestFormatNodes(t *testing.T) {
	it, err := itinerary.FormatNodes([]string{"R~North", "R~Centre", "G~South"})
	require.NoError(t, err)
	assert.Equal(t, 1, it.Interchanges)
	assert.Equal(t, int64(0), it.Cost)
	assert.Equal(t, []string{"R~North", "R~Centre", "G~South"}, it.Nodes())

	_, err = itinerary.FormatNodes(nil)
	assert.ErrorIs(t, err, itinerary.ErrEmptyRoute)
}

func TestResolve(t *testing.T) {
	g := core.NewGraph()
	for _, k := range []string{"DEL~Delhi", "bom~Mumbai", "LHR~Heathrow", "LHR~Gatwick", "Bogus"} {
		require.NoError(t, g.AddNode(k))
	}

	cases := []struct {
		query string
		want  string
		err   error
	}{
		{"DEL~Delhi", "DEL~Delhi", nil},
		{"del", "DEL~Delhi", nil},
		{" Del ", "DEL~Delhi", nil},
		{"BOM", "bom~Mumbai", nil},
		{"Bogus", "Bogus", nil},
		{"LHR", "", itinerary.ErrAmbiguousCode},
		{"lhr", "", itinerary.ErrAmbiguousCode},
		{"JFK", "", itinerary.ErrUnknownStation},
		{"DEL~Dehli", "", itinerary.ErrUnknownStation},
		{"", "", itinerary.ErrUnknownStation},
	}
	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			got, err := itinerary.Resolve(g, tc.query)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStationCodes_UpperCased(t *testing.T) {
	g := core.NewGraph()
	for _, k := range []string{"del~Delhi", "BOM~Mumbai"} {
		require.NoError(t, g.AddNode(k))
	}
	codes, err := itinerary.StationCodes(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"BOM", "DEL"}, codes)
}
