// Package gridpath finds shortest paths on 4-directional terrain grids.
//
// What is gridpath?
//
//	A small, single-threaded toolkit for grid puzzles and grid navigation:
//		• Terrain grids: Open / Blocked / Start / End cells, text codec
//		• Relaxation: label-correcting shortest paths over generic states
//		• Turn penalties: states that carry a facing, 1000 per turn
//		• Tie tracking: every equal-cost predecessor, not just one
//		• Reconstruction: all cells on any optimal path, or one explicit path
//		• Falling obstacles: final distance and first disconnect (linear or bisect)
//		• Trails: scores and ratings of climbing trails on a height map
//
// Everything is organized into flat subpackages:
//
//	gridmap/   - Grid, Coord, Facing, Terrain; Parse, ParseCoords, String
//	relax/     - Run over Position or Heading states; Stack, Queue, Priority worklists
//	paths/     - OptimalCells, CountOptimalCells, One
//	obstacles/ - Solve in FinalDistance or FirstDisconnect mode
//	trails/    - ParseHeights, Score, Rating
//
// Quick ASCII example:
//
//	S...
//	.##.
//	.##.
//	...E
//
//	with unit steps both routes around the block cost 6, and
//	paths.OptimalCells returns all twelve open cells.
//
// The gridpath command (cmd/gridpath) wires the packages to puzzle input files.
//
//	go install github.com/katalvlaran/gridpath/cmd/gridpath@latest
package gridpath
