// Package trails scores hiking trails on a digit height map.
//
// A trail starts at a height-0 cell (a trailhead), ends at a height-9 cell
// and climbs by exactly one at every 4-directional step. For each trailhead:
//
//   - Score  is the number of distinct height-9 cells reachable by some trail.
//   - Rating is the number of distinct trails starting there.
//
// Both are computed by recursive depth-first search. Recursion depth is at
// most ten (one frame per height level), so no explicit stack is needed.
// Score keeps a visited set and an endpoint set; Rating memoizes the number
// of trails from each cell in a map scoped to one top-level call.
//
// Cells written as '.' have no height and are never part of a trail.
//
// Complexity:
//
//   - Score, Rating:    O(W×H) per trailhead.
//   - Scores, Ratings:  O(W×H × T) and O(W×H) respectively, T = trailheads.
package trails

import (
	"errors"

	"github.com/katalvlaran/gridpath/gridmap"
)

// Sentinel errors returned by ParseHeights.
var (
	ErrEmptyMap     = errors.New("trails: height map has no rows or no columns")
	ErrMalformedMap = errors.New("trails: row length disagrees with map width")
	ErrBadHeight    = errors.New("trails: cell is not a digit or '.'")
)

// Trail heights.
const (
	Bottom = 0
	Top    = 9
	// None marks a cell without a height.
	None = -1
)

// Map is a dense row-major height map.
type Map struct {
	gridmap.Bounds
	cells []int8
}

// At returns the height at c, or None if c is out of bounds or has no height.
func (m *Map) At(c gridmap.Coord) int {
	if !m.InBounds(c) {
		return None
	}
	return int(m.cells[m.Index(c)])
}

// Trailheads returns every height-0 cell in row-major order.
func (m *Map) Trailheads() []gridmap.Coord {
	var out []gridmap.Coord
	for i, h := range m.cells {
		if h == Bottom {
			out = append(out, m.Coordinate(i))
		}
	}
	return out
}

// uphill returns the neighbors of c exactly one level higher.
func (m *Map) uphill(c gridmap.Coord) []gridmap.Coord {
	h := m.At(c)
	if h == None {
		return nil
	}
	var out []gridmap.Coord
	for _, n := range m.Neighbors(c) {
		if m.At(n.At) == h+1 {
			out = append(out, n.At)
		}
	}
	return out
}
