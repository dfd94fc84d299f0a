package network_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/itinerary"
	"github.com/katalvlaran/lvroute/network"
)

func TestLoadFile_Metro(t *testing.T) {
	g, err := network.LoadFile("testdata/metro.yaml")
	require.NoError(t, err)

	assert.Equal(t, []string{"A~Alpha", "A~Beta", "A~Gamma", "B~Beta", "B~Delta", "X~Exchange"}, g.Nodes())
	assert.Equal(t, 5, g.EdgeCount())
	w, ok := g.Weight("A~Gamma", "A~Beta")
	require.True(t, ok)
	assert.Equal(t, int64(6), w)

	route, err := dijkstra.ShortestPath(g, "A~Alpha", "B~Delta")
	require.NoError(t, err)
	assert.Equal(t, []string{"A~Alpha", "A~Beta", "B~Beta", "B~Delta"}, route.Nodes)
	assert.Equal(t, int64(6), route.Cost)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := network.LoadFile("testdata/absent.yaml")
	require.Error(t, err)
}

func TestLoad_Empty(t *testing.T) {
	g, err := network.Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, g.NodeCount())
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"unknown endpoint", "nodes: [A~a]\nedges: [{from: A~a, to: B~b, weight: 1}]", network.ErrUnknownNode},
		{"negative", "nodes: [A~a, B~b]\nedges: [{from: A~a, to: B~b, weight: -1}]", network.ErrNegativeWeight},
		{"self loop", "nodes: [A~a]\nedges: [{from: A~a, to: A~a, weight: 1}]", network.ErrSelfLoop},
		{"conflict", "nodes: [A~a, B~b]\nedges: [{from: A~a, to: B~b, weight: 1}, {from: B~b, to: A~a, weight: 2}]", network.ErrConflictingEdge},
		{"line shape", "lines: [{code: A, stops: [a, b], weights: []}]", network.ErrLineShape},
		{"line negative", "lines: [{code: A, stops: [a, b], weights: [-3]}]", network.ErrNegativeWeight},
		{"bad stop", "lines: [{code: A, stops: [\"x~y\"], weights: []}]", itinerary.ErrMalformedNodeName},
		{"empty code", "lines: [{code: \"\", stops: [a], weights: []}]", itinerary.ErrMalformedNodeName},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := network.Load(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoad_RejectsUnknownFields(t *testing.T) {
	_, err := network.Load(strings.NewReader("nodes: [A~a]\nstations: [B~b]\n"))
	require.Error(t, err)
}

func TestLoad_DuplicateEdgeSameWeight(t *testing.T) {
	g, err := network.Load(strings.NewReader("nodes: [A~a, B~b]\nedges: [{from: A~a, to: B~b, weight: 7}, {from: B~b, to: A~a, weight: 7}]"))
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestEncode_RoundTrip(t *testing.T) {
	g, err := network.LoadFile("testdata/metro.yaml")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, network.Encode(&buf, g))

	back, err := network.Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.String(), back.String())
	assert.Equal(t, network.Flatten(g), network.Flatten(back))
}

func TestLoadFile_BundledAirNetwork(t *testing.T) {
	g, err := network.LoadFile("../network.yaml")
	require.NoError(t, err)
	assert.Equal(t, 20, g.NodeCount())
	assert.Equal(t, 33, g.EdgeCount())

	_, err = itinerary.Stations(g)
	require.NoError(t, err)

	const (
		del = "DEL~Indira Gandhi International Airport, Delhi"
		hyd = "HYD~Rajiv Gandhi International Airport, Hyderabad"
		goi = "GOI~Goa International Airport (Dabolim), Goa"
	)
	route, err := dijkstra.ShortestPath(g, del, goi)
	require.NoError(t, err)
	assert.Equal(t, []string{del, hyd, goi}, route.Nodes)
	assert.Equal(t, int64(180), route.Cost)

	route, err = dijkstra.ShortestPath(g, del, goi, dijkstra.WithCostModel(dijkstra.Time))
	require.NoError(t, err)
	assert.Equal(t, int64(7440), route.Cost)
	assert.Equal(t, int64(124), itinerary.Minutes(route.Cost))
}
