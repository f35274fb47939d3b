package gridmap_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridmap"
)

// ExampleBounds_Neighbors decodes a small maze, locates its markers and lists
// the cells reachable in one step from Start.
func ExampleBounds_Neighbors() {
	g, err := gridmap.ParseString("#####\n#S.E#\n#.###\n#####\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	start, end, _ := g.Markers()
	fmt.Println("start:", start, "end:", end)
	for _, n := range g.Neighbors(start) {
		fmt.Printf("%s -> %v %s\n", n.Facing, n.At, g.Get(n.At))
	}
	// Output:
	// start: 1,1 end: 3,1
	// up -> 1,0 #
	// down -> 1,2 .
	// left -> 0,1 #
	// right -> 2,1 .
}
