package paths_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/paths"
	"github.com/katalvlaran/gridpath/relax"
)

// ExampleOptimalCells counts the cells on any cheapest route through a maze
// where two routes around the central wall tie at six steps.
func ExampleOptimalCells() {
	g, _ := gridmap.ParseString("" +
		"#######\n" +
		"#....E#\n" +
		"#.###.#\n" +
		"#S....#\n" +
		"#######\n")
	start, end, _ := g.Markers()

	res, _ := relax.Run(g, relax.Position{At: start}, relax.UnitStep[relax.Position], relax.WithTies())
	terminals := []relax.Position{{At: end}}
	cells, ok := paths.OptimalCells(res, terminals)

	fmt.Println("reachable:", ok)
	fmt.Println("distance:", res.MinDistance(terminals...))
	fmt.Println("cells on optimal paths:", cells.Size())
	// Output:
	// reachable: true
	// distance: 6
	// cells on optimal paths: 12
}

// ExampleOne extracts one explicit cheapest route.
func ExampleOne() {
	g, _ := gridmap.ParseString("S.#\n#.E\n")
	start, end, _ := g.Markers()

	res, _ := relax.Run(g, relax.Position{At: start}, relax.UnitStep[relax.Position])
	route, _ := paths.One(res, relax.Position{At: end})
	for _, p := range route {
		fmt.Print(p.At, " ")
	}
	fmt.Println()
	// Output: 0,0 1,0 1,1 2,1
}
