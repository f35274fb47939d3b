package gridmap

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridmap operations.
var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridmap: grid must have at least one row and one column")
	// ErrMalformedGrid indicates a row whose length disagrees with the grid width.
	ErrMalformedGrid = errors.New("gridmap: row length disagrees with grid width")
	// ErrMissingMarker indicates a required Start or End cell is absent.
	ErrMissingMarker = errors.New("gridmap: required marker not found")
	// ErrOutOfBounds indicates a coordinate outside [0,Width)×[0,Height).
	ErrOutOfBounds = errors.New("gridmap: coordinate out of bounds")
	// ErrUnknownCell indicates the decoder met an unknown cell symbol.
	ErrUnknownCell = errors.New("gridmap: unknown cell symbol")
	// ErrBadCoord indicates the decoder met a malformed "x,y" pair.
	ErrBadCoord = errors.New("gridmap: malformed coordinate")
)

// Terrain is the static classification of a single cell.
type Terrain uint8

const (
	// Open cells can be entered.
	Open Terrain = iota
	// Blocked cells can never be entered.
	Blocked
	// Start marks the search source. It is passable.
	Start
	// End marks the search target. It is passable.
	End
)

// String returns the one-character text form of t.
func (t Terrain) String() string {
	switch t {
	case Open:
		return "."
	case Blocked:
		return "#"
	case Start:
		return "S"
	case End:
		return "E"
	default:
		return "?"
	}
}

// Passable reports whether a search may enter a cell of terrain t.
func (t Terrain) Passable() bool {
	return t != Blocked
}

// Facing is one of the four axis-aligned movement directions.
type Facing uint8

const (
	Up Facing = iota
	Down
	Left
	Right
)

// Facings lists every Facing in the order neighbors are generated.
var Facings = [...]Facing{Up, Down, Left, Right}

// delta returns the (row, col) offset of a single step towards f.
func (f Facing) delta() (dr, dc int) {
	switch f {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 1
	}
}

// Opposite returns the facing rotated by 180°.
func (f Facing) Opposite() Facing {
	switch f {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (f Facing) String() string {
	switch f {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Facing(%d)", uint8(f))
	}
}

// Coord addresses a single cell: 0 ≤ Row < Height, 0 ≤ Col < Width.
type Coord struct {
	Row, Col int
}

// Step returns the coordinate one cell away towards f. The result may lie
// outside any particular grid; use Grid.InBounds or Grid.Neighbors.
func (c Coord) Step(f Facing) Coord {
	dr, dc := f.delta()
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// String renders c as "<col>,<row>".
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.Col, c.Row)
}

// Neighbor is an in-bounds adjacent cell together with the facing used to reach it.
type Neighbor struct {
	Facing Facing
	At     Coord
}

// Grid is a dense W×H terrain map. Its Bounds are fixed at construction;
// cells may only change through Set.
type Grid struct {
	Bounds
	cells []Terrain
}
