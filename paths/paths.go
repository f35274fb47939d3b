// Package paths turns the predecessor relation of a relax.Result back into
// paths: either the set of every cell lying on at least one optimal path, or
// a single explicit optimal path.
//
// OptimalCells needs a Result computed with relax.WithTies(); without tie
// tracking only one predecessor per state is kept and the union of all
// optimal paths cannot be recovered.
//
// Complexity:
//
//   - OptimalCells: O(S + P) time, O(S) memory, where S is the number of states
//     visited backwards and P the number of predecessor edges among them.
//   - One:          O(L) time and memory for a path of L states.
package paths

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/relax"
)

// ErrUnreachable is returned by One when the terminal state was never reached.
var ErrUnreachable = errors.New("paths: terminal state unreachable")

// walker carries the state of one backward traversal.
type walker[S relax.State[S]] struct {
	res     *relax.Result[S]
	visited mapset.Set[S]
	cells   mapset.Set[gridmap.Coord]
	stack   []S
}

// OptimalCells returns every cell that lies on at least one minimal-cost path
// from res.Source to any of terminals. terminals is the full set of states at
// the target (one per facing in the directional case); only those whose
// distance equals the minimum M over terminals seed the walk.
//
// The second result is false, with an empty set, when no terminal was reached.
func OptimalCells[S relax.State[S]](res *relax.Result[S], terminals []S) (mapset.Set[gridmap.Coord], bool) {
	cells := mapset.New[gridmap.Coord]()

	// 1) M = min over terminals
	best := res.MinDistance(terminals...)
	if best == relax.Unreachable {
		return cells, false
	}

	// 2) Seed with every terminal achieving M
	w := &walker[S]{
		res:     res,
		visited: mapset.New[S](),
		cells:   cells,
	}
	for _, t := range terminals {
		if d, ok := res.Dist[t]; ok && d == best {
			w.stack = append(w.stack, t)
		}
	}

	// 3) Walk predecessor edges backwards
	w.drain()

	return cells, true
}

// CountOptimalCells is OptimalCells(...).Size(), reporting 0 for an
// unreachable target.
func CountOptimalCells[S relax.State[S]](res *relax.Result[S], terminals []S) int {
	cells, _ := OptimalCells(res, terminals)
	return cells.Size()
}

// drain pops states until the stack is empty. The visited set guards against
// reprocessing states shared by several optimal paths.
func (w *walker[S]) drain() {
	for len(w.stack) > 0 {
		n := len(w.stack) - 1
		s := w.stack[n]
		w.stack = w.stack[:n]

		if w.visited.Has(s) {
			continue
		}
		w.visited.Put(s)
		w.cells.Put(s.Cell())

		w.res.Predecessors(s).Each(func(p S) {
			if !w.visited.Has(p) {
				w.stack = append(w.stack, p)
			}
		})
	}
}

// One returns a single optimal path from res.Source to terminal, source first.
// When a state has several optimal predecessors the choice among them is
// unspecified.
func One[S relax.State[S]](res *relax.Result[S], terminal S) ([]S, error) {
	if !res.Reached(terminal) {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, terminal.Cell())
	}

	// build reversed path
	path := []S{terminal}
	for cur := terminal; cur != res.Source; {
		var next S
		found := false
		res.Predecessors(cur).Each(func(p S) {
			if !found {
				next, found = p, true
			}
		})
		if !found {
			break
		}
		path = append(path, next)
		cur = next
	}

	// reverse to get source → terminal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
