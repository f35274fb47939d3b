// Package gridmap stores a bounded 2D terrain map and answers the adjacency
// questions a grid search needs.
//
// What:
//
//   - Grid is a dense, row-major store of Terrain tags (Open, Blocked, Start, End)
//     over a fixed Bounds, which owns the coordinate math.
//   - Neighbors yields up to four axis-aligned neighbors, tagged with the Facing
//     used to reach them, never wrapping around the edges.
//   - Find / Markers locate the Start and End cells in row-major order.
//   - Parse / ParseCoords decode the line-oriented text form (one character per
//     cell, "x,y" coordinate lists) and String renders a grid back to text.
//
// Why:
//
//   - Maze solving: locate markers, then hand the grid to a relaxation engine.
//   - Falling obstacles: flip Open cells to Blocked one at a time with Set.
//
// Complexity:
//
//   - Get, Set, InBounds, Neighbors: O(1).
//   - Find, Count, Clone, String:    O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid:     grid has no rows or no columns.
//   - ErrMalformedGrid: a row's length disagrees with the grid width.
//   - ErrMissingMarker: Start or End cell is absent.
//   - ErrOutOfBounds:   Set was given a coordinate outside the grid.
//   - ErrUnknownCell:   the decoder met a character it does not know.
//   - ErrBadCoord:      the decoder met a malformed "x,y" line.
package gridmap
