package relax_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/relax"
)

// BenchmarkRun_TurnPenalty141 measures the directional search with tie
// tracking on a 141×141 grid with 30% random walls, for each worklist.
func BenchmarkRun_TurnPenalty141(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	g := randomGrid(b, rng, 141, 141, 0.3)
	src := relax.Heading{Facing: gridmap.Right}

	for _, w := range worklists {
		b.Run(w.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = relax.Run(g, src, relax.TurnPenalty, relax.WithTies(), relax.WithWorklist(w))
			}
		})
	}
}

// BenchmarkRun_UnitStep71 measures the undirected search on an open 71×71 grid.
func BenchmarkRun_UnitStep71(b *testing.B) {
	g, err := gridmap.New(71, 71, nil)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = relax.Run(g, relax.Position{}, relax.UnitStep[relax.Position])
	}
}
