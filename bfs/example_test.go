package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvroute/bfs"
	"github.com/katalvlaran/lvroute/core"
)

// ExampleFewestLegs picks the two-leg route even though the three-leg
// route through the bypass is cheaper by weight.
func ExampleFewestLegs() {
	g := core.NewGraph()
	for _, k := range []string{"R~North", "R~Centre", "G~South", "B~Bypass"} {
		_ = g.AddNode(k)
	}
	g.AddEdge("R~North", "R~Centre", 10)
	g.AddEdge("R~Centre", "G~South", 10)
	g.AddEdge("R~North", "B~Bypass", 1)
	g.AddEdge("B~Bypass", "R~Centre", 1)

	path, err := bfs.FewestLegs(g, "R~North", "G~South")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path)
	// Output:
	// [R~North R~Centre G~South]
}
