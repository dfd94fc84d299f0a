package network

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvroute/core"
)

// Flatten converts g into a nodes+edges Document. Nodes are sorted by key
// and every undirected edge appears once, smaller key first.
func Flatten(g *core.Graph) Document {
	snap := g.Snapshot()
	doc := Document{
		Nodes: make([]string, snap.Len()),
		Edges: make([]EdgeSpec, 0, snap.EdgeCount()),
	}
	for i := 0; i < snap.Len(); i++ {
		doc.Nodes[i] = snap.Key(i)
		for _, arc := range snap.Neighbors(i) {
			if arc.To > i {
				doc.Edges = append(doc.Edges, EdgeSpec{From: snap.Key(i), To: snap.Key(arc.To), Weight: arc.Weight})
			}
		}
	}

	return doc
}

// Encode writes g to w as YAML.
func Encode(w io.Writer, g *core.Graph) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Flatten(g)); err != nil {
		return fmt.Errorf("network: encode: %w", err)
	}

	return enc.Close()
}
