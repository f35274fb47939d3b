package trails

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/gridmap"
)

// ParseHeights decodes a height map written one digit per cell, one row per
// line. '.' marks a cell with no height. Blank lines before the map are
// skipped and a blank line after it ends the map.
func ParseHeights(r io.Reader) (*Map, error) {
	var (
		cells         []int8
		width, height int
	)
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" {
			if height > 0 {
				break
			}
			continue
		}
		if height == 0 {
			width = len(text)
		} else if len(text) != width {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrMalformedMap, line, len(text), width)
		}
		for col := 0; col < len(text); col++ {
			ch := text[col]
			switch {
			case ch == '.':
				cells = append(cells, None)
			case ch >= '0' && ch <= '9':
				cells = append(cells, int8(ch-'0'))
			default:
				return nil, fmt.Errorf("%w: %q at line %d column %d", ErrBadHeight, ch, line, col+1)
			}
		}
		height++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("trails: reading height map: %w", err)
	}
	b, err := gridmap.NewBounds(width, height)
	if err != nil {
		return nil, ErrEmptyMap
	}

	return &Map{Bounds: b, cells: cells}, nil
}

// scorer collects the summits reachable from one trailhead.
type scorer struct {
	m       *Map
	visited mapset.Set[gridmap.Coord]
	summits mapset.Set[gridmap.Coord]
}

func (s *scorer) climb(c gridmap.Coord) {
	if s.visited.Has(c) {
		return
	}
	s.visited.Put(c)
	if s.m.At(c) == Top {
		s.summits.Put(c)
		return
	}
	for _, n := range s.m.uphill(c) {
		s.climb(n)
	}
}

// Score returns the number of distinct height-9 cells reachable from head.
// It is 0 when head is not a trailhead.
func Score(m *Map, head gridmap.Coord) int {
	if m.At(head) != Bottom {
		return 0
	}
	s := &scorer{
		m:       m,
		visited: mapset.New[gridmap.Coord](),
		summits: mapset.New[gridmap.Coord](),
	}
	s.climb(head)

	return s.summits.Size()
}

// Rating returns the number of distinct trails starting at head.
// It is 0 when head is not a trailhead.
func Rating(m *Map, head gridmap.Coord) int {
	if m.At(head) != Bottom {
		return 0
	}
	return countTrails(m, head, make(map[gridmap.Coord]int))
}

// countTrails returns the number of trails from c to any summit. memo holds
// the counts of cells already finished.
func countTrails(m *Map, c gridmap.Coord, memo map[gridmap.Coord]int) int {
	if m.At(c) == Top {
		return 1
	}
	if n, ok := memo[c]; ok {
		return n
	}
	total := 0
	for _, n := range m.uphill(c) {
		total += countTrails(m, n, memo)
	}
	memo[c] = total

	return total
}

// Scores returns Score for every trailhead, in Trailheads order.
func Scores(m *Map) []int {
	heads := m.Trailheads()
	out := make([]int, len(heads))
	for i, h := range heads {
		out[i] = Score(m, h)
	}
	return out
}

// Ratings returns Rating for every trailhead, in Trailheads order. The trail
// counts of shared cells are computed once for the whole map.
func Ratings(m *Map) []int {
	heads := m.Trailheads()
	memo := make(map[gridmap.Coord]int)
	out := make([]int, len(heads))
	for i, h := range heads {
		out[i] = countTrails(m, h, memo)
	}
	return out
}

// Sum adds up a slice of scores or ratings.
func Sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}
