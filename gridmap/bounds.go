package gridmap

// Bounds is the row-major addressing of a fixed width×height rectangle.
// The zero value is an empty rectangle; use NewBounds.
type Bounds struct {
	width, height int
}

// NewBounds returns the bounds of a width×height rectangle, or ErrEmptyGrid
// if either dimension is not positive.
func NewBounds(width, height int) (Bounds, error) {
	if width <= 0 || height <= 0 {
		return Bounds{}, ErrEmptyGrid
	}

	return Bounds{width: width, height: height}, nil
}

// Width returns the number of columns.
func (b Bounds) Width() int { return b.width }

// Height returns the number of rows.
func (b Bounds) Height() int { return b.height }

// Size returns the number of cells, W×H.
func (b Bounds) Size() int { return b.width * b.height }

// InBounds reports whether c lies within the rectangle.
// Complexity: O(1).
func (b Bounds) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < b.height && c.Col >= 0 && c.Col < b.width
}

// Index maps c to a row-major index: Row*Width + Col. c must be in bounds.
func (b Bounds) Index(c Coord) int {
	return c.Row*b.width + c.Col
}

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (b Bounds) Coordinate(idx int) Coord {
	return Coord{Row: idx / b.width, Col: idx % b.width}
}

// Neighbors returns the in-bounds axis-aligned neighbors of c in Facings
// order. Terrain is not inspected; a Blocked neighbor is still returned.
// Complexity: O(1).
func (b Bounds) Neighbors(c Coord) []Neighbor {
	out := make([]Neighbor, 0, len(Facings))
	for _, f := range Facings {
		n := c.Step(f)
		if !b.InBounds(n) {
			continue
		}
		out = append(out, Neighbor{Facing: f, At: n})
	}

	return out
}
