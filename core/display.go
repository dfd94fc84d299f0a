package core

import (
	"fmt"
	"strings"
)

// String renders the network map: one block per node (sorted), listing each
// neighbor and edge weight on its own tab-indented line.
//
//	A~Alpha =>
//		B~Beta	10
//
// The output reflects a single Snapshot, so concurrent mutation cannot
// leave a half-removed node in it.
func (g *Graph) String() string {
	return g.Snapshot().String()
}

// String renders the snapshot in the same layout as Graph.String.
func (s *Snapshot) String() string {
	var sb strings.Builder
	for i := 0; i < s.Len(); i++ {
		fmt.Fprintf(&sb, "%s =>\n", s.Key(i))
		for _, arc := range s.Neighbors(i) {
			fmt.Fprintf(&sb, "\t%s\t%d\n", s.Key(arc.To), arc.Weight)
		}
	}

	return sb.String()
}
