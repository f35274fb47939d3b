package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/obstacles"
	"github.com/katalvlaran/gridpath/paths"
	"github.com/katalvlaran/gridpath/relax"
	"github.com/katalvlaran/gridpath/trails"
)

type params struct {
	cfg      *config.Config
	worklist relax.Worklist
	bisect   bool
}

type puzzleFunc func(r io.Reader, w io.Writer, p params) error

var puzzles = map[string]puzzleFunc{
	"maze":   solveMaze,
	"bytes":  solveBytes,
	"trails": solveTrails,
}

func lookup(name string) (puzzleFunc, error) {
	run, ok := puzzles[name]
	if !ok {
		return nil, fmt.Errorf("unknown puzzle %q", name)
	}
	return run, nil
}

// solveMaze prints the lowest turn-penalized score from S to E, then the
// number of cells on any lowest-score route.
func solveMaze(r io.Reader, w io.Writer, p params) error {
	g, err := gridmap.Parse(r)
	if err != nil {
		return err
	}
	start, end, err := g.Markers()
	if err != nil {
		return err
	}

	res, err := relax.Run(g, relax.Heading{At: start, Facing: gridmap.Right}, relax.TurnPenalty,
		relax.WithTies(),
		relax.WithWorklist(p.worklist),
	)
	if err != nil {
		return err
	}
	terminals := relax.HeadingsAt(end)
	best := res.MinDistance(terminals...)
	if best == relax.Unreachable {
		return fmt.Errorf("maze: %v unreachable from %v", end, start)
	}

	fmt.Fprintln(w, best)
	fmt.Fprintln(w, paths.CountOptimalCells(res, terminals))

	return nil
}

// solveBytes prints the step count to the far corner once the configured
// prefix has fallen, then the first obstacle that cuts the corner off.
func solveBytes(r io.Reader, w io.Writer, p params) error {
	seq, err := gridmap.ParseCoords(r)
	if err != nil {
		return err
	}
	n := p.cfg.BytesGridSize
	g, err := gridmap.New(n, n, nil)
	if err != nil {
		return err
	}
	source, target := gridmap.Coord{}, gridmap.Coord{Row: n - 1, Col: n - 1}

	first, err := obstacles.Solve(g.Clone(), seq, source, target,
		obstacles.WithLimit(p.cfg.BytesPrefix),
		obstacles.WithWorklist(p.worklist),
	)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, first)

	strategy := obstacles.Linear
	if p.bisect {
		strategy = obstacles.Bisect
	}
	cut, err := obstacles.Solve(g, seq, source, target,
		obstacles.WithMode(obstacles.FirstDisconnect),
		obstacles.WithStrategy(strategy),
		obstacles.WithWorklist(p.worklist),
	)
	switch {
	case errors.Is(err, obstacles.ErrNeverDisconnected):
		fmt.Fprintln(w, "never disconnected")
	case err != nil:
		return err
	default:
		fmt.Fprintln(w, cut)
	}

	return nil
}

// solveTrails prints the summed trailhead scores, then the summed ratings.
func solveTrails(r io.Reader, w io.Writer, _ params) error {
	m, err := trails.ParseHeights(r)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, trails.Sum(trails.Scores(m)))
	fmt.Fprintln(w, trails.Sum(trails.Ratings(m)))

	return nil
}
