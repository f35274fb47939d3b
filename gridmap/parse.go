package gridmap

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// symbols maps the text form of every Terrain back to its tag.
var symbols = map[rune]Terrain{
	'.': Open,
	'#': Blocked,
	'S': Start,
	'E': End,
}

// Parse decodes a grid written one character per cell, one row per line.
// Trailing blank lines are ignored; a blank line inside the grid ends it.
// Row lengths must agree (ErrMalformedGrid) and every character must be one of
// ".#SE" (ErrUnknownCell).
func Parse(r io.Reader) (*Grid, error) {
	var rows [][]Terrain
	sc := bufio.NewScanner(r)
	for line := 0; sc.Scan(); line++ {
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" {
			if len(rows) > 0 {
				break
			}
			continue
		}
		row := make([]Terrain, 0, len(text))
		for _, ch := range text {
			t, ok := symbols[ch]
			if !ok {
				return nil, fmt.Errorf("%w: %q at line %d column %d", ErrUnknownCell, ch, line+1, len(row)+1)
			}
			row = append(row, t)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridmap: reading grid: %w", err)
	}

	return FromRows(rows)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// ParseCoords decodes one "x,y" pair per line, where x is the column and y
// the row. Blank lines are skipped.
func ParseCoords(r io.Reader) ([]Coord, error) {
	var out []Coord
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		xs, ys, ok := strings.Cut(text, ",")
		if !ok {
			return nil, fmt.Errorf("%w: %q at line %d", ErrBadCoord, text, line)
		}
		x, errX := strconv.Atoi(strings.TrimSpace(xs))
		y, errY := strconv.Atoi(strings.TrimSpace(ys))
		if errX != nil || errY != nil || x < 0 || y < 0 {
			return nil, fmt.Errorf("%w: %q at line %d", ErrBadCoord, text, line)
		}
		out = append(out, Coord{Row: y, Col: x})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridmap: reading coordinates: %w", err)
	}

	return out, nil
}

// String renders g back to its one-character-per-cell text form, with a
// trailing newline after every row.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for i, t := range g.cells {
		b.WriteString(t.String())
		if (i+1)%g.width == 0 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}
