package gridmap

import "fmt"

// New builds a width×height grid, assigning every cell from init in
// row-major order. A nil init leaves every cell Open.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(W×H) time and memory.
func New(width, height int, init func(c Coord) Terrain) (*Grid, error) {
	b, err := NewBounds(width, height)
	if err != nil {
		return nil, err
	}
	g := &Grid{
		Bounds: b,
		cells:  make([]Terrain, b.Size()),
	}
	if init == nil {
		return g, nil
	}
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			g.cells[g.Index(Coord{Row: r, Col: c})] = init(Coord{Row: r, Col: c})
		}
	}

	return g, nil
}

// FromRows builds a grid from a non-empty 2D slice. The width is taken from
// the first row; any later row of a different length fails with
// ErrMalformedGrid. The input is copied.
// Complexity: O(W×H) time and memory.
func FromRows(rows [][]Terrain) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	for i, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedGrid, i, len(row), w)
		}
	}

	return New(w, len(rows), func(c Coord) Terrain {
		return rows[c.Row][c.Col]
	})
}

// Get returns the terrain at c. It panics if c is out of bounds; callers are
// expected to reach coordinates through Neighbors or check InBounds first.
func (g *Grid) Get(c Coord) Terrain {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("gridmap: Get(%v) outside %d×%d grid", c, g.width, g.height))
	}

	return g.cells[g.Index(c)]
}

// Set overwrites the terrain at c.
func (g *Grid) Set(c Coord, t Terrain) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	g.cells[g.Index(c)] = t

	return nil
}

// Find returns the first cell tagged t in row-major order.
// Complexity: O(W×H).
func (g *Grid) Find(t Terrain) (Coord, bool) {
	for i, v := range g.cells {
		if v == t {
			return g.Coordinate(i), true
		}
	}

	return Coord{}, false
}

// Markers locates the Start and End cells, failing with ErrMissingMarker if
// either is absent.
func (g *Grid) Markers() (start, end Coord, err error) {
	var ok bool
	if start, ok = g.Find(Start); !ok {
		return Coord{}, Coord{}, fmt.Errorf("%w: no %q cell", ErrMissingMarker, Start.String())
	}
	if end, ok = g.Find(End); !ok {
		return Coord{}, Coord{}, fmt.Errorf("%w: no %q cell", ErrMissingMarker, End.String())
	}

	return start, end, nil
}

// Count returns the number of cells tagged t.
func (g *Grid) Count(t Terrain) int {
	n := 0
	for _, v := range g.cells {
		if v == t {
			n++
		}
	}

	return n
}

// Clone returns an independent deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]Terrain, len(g.cells))
	copy(cells, g.cells)

	return &Grid{Bounds: g.Bounds, cells: cells}
}
