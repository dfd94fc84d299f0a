package network

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/itinerary"
)

// LoadFile opens path and calls Load on its contents.
func LoadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("network: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// Load decodes a YAML Document from r and builds a graph from it.
// Unknown fields are rejected. An empty stream yields an empty graph.
func Load(r io.Reader) (*core.Graph, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("network: decode: %w", err)
	}

	return Build(doc)
}

// Build validates doc and materializes it as a core.Graph.
//
// Steps:
//  1. Add every explicit node, then every line's stops as "<code>~<stop>"
//     (line stations must form well-formed keys) and chain them.
//  2. Add explicit edges between declared nodes.
//
// The first violation aborts with a sentinel error wrapped with context.
func Build(doc Document) (*core.Graph, error) {
	g := core.NewGraph()

	for _, key := range doc.Nodes {
		if err := g.AddNode(key); err != nil {
			return nil, fmt.Errorf("network: node %q: %w", key, err)
		}
	}

	for li, line := range doc.Lines {
		if err := addLine(g, line); err != nil {
			return nil, fmt.Errorf("network: line #%d (%s): %w", li, line.Code, err)
		}
	}

	for ei, e := range doc.Edges {
		if err := addEdge(g, e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("network: edge #%d: %w", ei, err)
		}
	}

	return g, nil
}

func addLine(g *core.Graph, line LineSpec) error {
	if len(line.Stops) == 0 || len(line.Weights) != len(line.Stops)-1 {
		return fmt.Errorf("%d stops, %d weights: %w", len(line.Stops), len(line.Weights), ErrLineShape)
	}

	keys := make([]string, len(line.Stops))
	for i, stop := range line.Stops {
		keys[i] = line.Code + itinerary.Separator + stop
		if _, err := itinerary.ParseKey(keys[i]); err != nil {
			return err
		}
		if err := g.AddNode(keys[i]); err != nil {
			return err
		}
	}
	for i := 1; i < len(keys); i++ {
		if err := addEdge(g, keys[i-1], keys[i], line.Weights[i-1]); err != nil {
			return err
		}
	}

	return nil
}

func addEdge(g *core.Graph, from, to string, w int64) error {
	switch {
	case w < 0:
		return fmt.Errorf("%s-%s weight %d: %w", from, to, w, ErrNegativeWeight)
	case from == to:
		return fmt.Errorf("%s: %w", from, ErrSelfLoop)
	case !g.HasNode(from):
		return fmt.Errorf("%q: %w", from, ErrUnknownNode)
	case !g.HasNode(to):
		return fmt.Errorf("%q: %w", to, ErrUnknownNode)
	}
	if old, ok := g.Weight(from, to); ok && old != w {
		return fmt.Errorf("%s-%s has %d, got %d: %w", from, to, old, w, ErrConflictingEdge)
	}
	g.AddEdge(from, to, w)

	return nil
}
