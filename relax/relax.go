package relax

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/gridmap"
)

// Stats counts the work done by one Run.
type Stats struct {
	Expansions  int // states removed from the worklist and expanded
	Relaxations int // strict distance improvements
	Ties        int // equal-cost predecessors added (tie tracking only)
}

// Result holds the distance table and predecessor relation of one Run.
//
//   - Dist[s] is the minimal cost from Source to s; absent means unreachable.
//   - Prev[s] is the set of states that achieve Dist[s] in one move. Without
//     tie tracking it holds exactly one state (the first found). Prev[Source]
//     is empty.
type Result[S comparable] struct {
	Source S
	Dist   map[S]uint64
	Prev   map[S]mapset.Set[S]
	Stats  Stats
}

// Distance returns the minimal cost to s, or Unreachable.
func (r *Result[S]) Distance(s S) uint64 {
	if d, ok := r.Dist[s]; ok {
		return d
	}

	return Unreachable
}

// Reached reports whether s has a finite distance.
func (r *Result[S]) Reached(s S) bool {
	_, ok := r.Dist[s]
	return ok
}

// MinDistance returns the smallest distance among states, or Unreachable if
// none was reached.
func (r *Result[S]) MinDistance(states ...S) uint64 {
	best := Unreachable
	for _, s := range states {
		if d, ok := r.Dist[s]; ok && d < best {
			best = d
		}
	}

	return best
}

// Predecessors returns the optimal predecessors of s. The returned set must
// not be modified; it is empty for the source and for unreached states.
func (r *Result[S]) Predecessors(s S) mapset.Set[S] {
	if p, ok := r.Prev[s]; ok {
		return p
	}

	return mapset.New[S]()
}

// Run computes shortest distances from source to every reachable state of g,
// pricing moves with cost.
//
// Algorithm:
//  1. dist[source] = 0, prev[source] = {}, worklist = {source}.
//  2. Remove a state s; for each in-bounds, non-Blocked neighbor reached
//     towards f with cost(s, f) = (true, w), let n = s.Move(f, ·) and
//     candidate = dist[s] + w.
//     • n unseen or candidate < dist[n]: dist[n] = candidate, prev[n] = {s},
//     add n to the worklist.
//     • ties enabled and candidate == dist[n]: prev[n] ∪= {s}.
//  3. Stop when the worklist is empty.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. cost must be non-nil (ErrNilCost).
//  3. every option must be valid (ErrOptionViolation).
//  4. source.Cell() must lie inside g (ErrSourceOutOfBounds).
func Run[S State[S]](g *gridmap.Grid, source S, cost CostFunc[S], opts ...Option) (*Result[S], error) {
	// 1) Validate inputs
	if g == nil {
		return nil, ErrNilGrid
	}
	if cost == nil {
		return nil, ErrNilCost
	}

	// 2) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if !g.InBounds(source.Cell()) {
		return nil, fmt.Errorf("%w: %v", ErrSourceOutOfBounds, source.Cell())
	}

	// 3) Prepare per-run state sized to the grid
	r := &runner[S]{
		g:    g,
		cost: cost,
		opts: cfg,
		res: &Result[S]{
			Source: source,
			Dist:   make(map[S]uint64, g.Size()),
			Prev:   make(map[S]mapset.Set[S], g.Size()),
		},
		work: newPending[S](cfg.Worklist, g.Size()),
	}

	// 4) Seed and drain the worklist
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	cfg.Logger.WithFields(logrus.Fields{
		"worklist":    cfg.Worklist.String(),
		"states":      len(r.res.Dist),
		"expansions":  r.res.Stats.Expansions,
		"relaxations": r.res.Stats.Relaxations,
		"ties":        r.res.Stats.Ties,
	}).Debug("relax: done")

	return r.res, nil
}

// runner holds the mutable state for a single Run.
type runner[S State[S]] struct {
	g    *gridmap.Grid
	cost CostFunc[S]
	opts Options
	res  *Result[S]
	work pending[S]
}

func (r *runner[S]) init() {
	src := r.res.Source
	r.res.Dist[src] = 0
	r.res.Prev[src] = mapset.New[S]()
	r.work.push(entry[S]{state: src, dist: 0})
}

// process drains the worklist. Entries whose recorded distance is larger than
// the state's current distance are stale and skipped.
func (r *runner[S]) process() error {
	for r.work.len() > 0 {
		e := r.work.pop()
		if e.dist > r.res.Dist[e.state] {
			continue
		}
		r.res.Stats.Expansions++
		if err := r.expand(e.state, e.dist); err != nil {
			return err
		}
	}

	return nil
}

// expand relaxes every move out of s, whose distance is d.
func (r *runner[S]) expand(s S, d uint64) error {
	for _, nb := range r.g.Neighbors(s.Cell()) {
		if !r.g.Get(nb.At).Passable() {
			continue
		}
		allowed, w := r.cost(s, nb.Facing)
		if !allowed {
			continue
		}
		if w == 0 {
			return fmt.Errorf("%w: %v towards %s", ErrZeroWeight, s.Cell(), nb.Facing)
		}
		// Saturate instead of wrapping; such a state is unreachable anyway.
		if w > r.opts.MaxDistance || d > r.opts.MaxDistance-w {
			continue
		}
		candidate := d + w
		n := s.Move(nb.Facing, nb.At)

		cur, seen := r.res.Dist[n]
		switch {
		case !seen || candidate < cur:
			r.res.Dist[n] = candidate
			prev := mapset.New[S]()
			prev.Put(s)
			r.res.Prev[n] = prev
			r.res.Stats.Relaxations++
			r.work.push(entry[S]{state: n, dist: candidate})
		case r.opts.Ties && candidate == cur:
			if p := r.res.Prev[n]; !p.Has(s) {
				p.Put(s)
				r.res.Stats.Ties++
			}
		}
	}

	return nil
}
