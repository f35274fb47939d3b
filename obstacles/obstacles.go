package obstacles

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/relax"
)

// Solve applies obstacles to g and answers the question selected by
// WithMode. See the package documentation for how g is mutated.
func Solve(g *gridmap.Grid, obstacles []gridmap.Coord, source, target gridmap.Coord, opts ...Option) (Outcome, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Outcome{}, cfg.err
	}

	// 2) Validate grid, endpoints and the whole sequence before mutating anything
	if g == nil {
		return Outcome{}, ErrNilGrid
	}
	if !g.InBounds(source) || !g.InBounds(target) {
		return Outcome{}, fmt.Errorf("%w: source %v, target %v", ErrEndpointOutOfBounds, source, target)
	}
	for i, c := range obstacles {
		if !g.InBounds(c) {
			return Outcome{}, fmt.Errorf("%w: #%d at %v", ErrObstacleOutOfBounds, i, c)
		}
	}

	s := &solver{g: g, obstacles: obstacles, source: source, target: target, opts: cfg}

	// 3) Dispatch
	if cfg.Mode == FinalDistance {
		return s.finalDistance()
	}
	if cfg.Strategy == Bisect {
		return s.bisect()
	}

	return s.linear()
}

// solver holds the inputs of a single Solve.
type solver struct {
	g         *gridmap.Grid
	obstacles []gridmap.Coord
	source    gridmap.Coord
	target    gridmap.Coord
	opts      Options
}

// block flips c to Blocked if it is Open. Start, End and Blocked cells are left alone.
func (s *solver) block(g *gridmap.Grid, c gridmap.Coord) error {
	if g.Get(c) != gridmap.Open {
		s.opts.Logger.WithFields(logrus.Fields{
			"at":      c.String(),
			"terrain": g.Get(c).String(),
		}).Debug("obstacles: skipping non-open cell")
		return nil
	}

	return g.Set(c, gridmap.Blocked)
}

// distance runs the unit-step relaxation on g and returns the target distance.
func (s *solver) distance(g *gridmap.Grid) (uint64, error) {
	res, err := relax.Run(g, relax.Position{At: s.source}, relax.UnitStep[relax.Position],
		relax.WithWorklist(s.opts.Worklist),
		relax.WithLogger(s.opts.Logger),
	)
	if err != nil {
		return relax.Unreachable, fmt.Errorf("obstacles: %w", err)
	}

	return res.Distance(relax.Position{At: s.target}), nil
}

func (s *solver) finalDistance() (Outcome, error) {
	n := len(s.obstacles)
	if s.opts.Limit != All && s.opts.Limit < n {
		n = s.opts.Limit
	}
	for _, c := range s.obstacles[:n] {
		if err := s.block(s.g, c); err != nil {
			return Outcome{}, err
		}
	}
	d, err := s.distance(s.g)
	if err != nil {
		return Outcome{}, err
	}

	return Outcome{Mode: FinalDistance, Distance: d, Index: -1, Applied: n}, nil
}

// linear applies obstacles one by one, probing after each.
func (s *solver) linear() (Outcome, error) {
	for i, c := range s.obstacles {
		if err := s.block(s.g, c); err != nil {
			return Outcome{}, err
		}
		d, err := s.distance(s.g)
		if err != nil {
			return Outcome{}, err
		}
		s.probeLog(i, d)
		if d == relax.Unreachable {
			return s.found(i), nil
		}
	}

	return Outcome{Mode: FirstDisconnect, Distance: relax.Unreachable, Index: -1, Applied: len(s.obstacles)},
		ErrNeverDisconnected
}

// bisect finds the smallest i such that applying obstacles[0..i] disconnects
// the target, probing cloned grids. The original grid ends up in the same
// state the linear scan would leave it in.
func (s *solver) bisect() (Outcome, error) {
	// cut reports whether obstacles[0..i] disconnect source from target.
	cut := func(i int) (bool, error) {
		probe := s.g.Clone()
		for _, c := range s.obstacles[:i+1] {
			if err := s.block(probe, c); err != nil {
				return false, err
			}
		}
		d, err := s.distance(probe)
		if err != nil {
			return false, err
		}
		s.probeLog(i, d)
		return d == relax.Unreachable, nil
	}

	n := len(s.obstacles)
	if n > 0 {
		ok, err := cut(n - 1)
		if err != nil {
			return Outcome{}, err
		}
		if ok {
			// invariant: cut(hi) is true, cut(lo-1) is false or lo == 0
			lo, hi := 0, n-1
			for lo < hi {
				mid := lo + (hi-lo)/2
				if ok, err = cut(mid); err != nil {
					return Outcome{}, err
				}
				if ok {
					hi = mid
				} else {
					lo = mid + 1
				}
			}
			if err = s.applyPrefix(lo + 1); err != nil {
				return Outcome{}, err
			}
			return s.found(lo), nil
		}
	}

	if err := s.applyPrefix(n); err != nil {
		return Outcome{}, err
	}

	return Outcome{Mode: FirstDisconnect, Distance: relax.Unreachable, Index: -1, Applied: n},
		ErrNeverDisconnected
}

func (s *solver) applyPrefix(n int) error {
	for _, c := range s.obstacles[:n] {
		if err := s.block(s.g, c); err != nil {
			return err
		}
	}

	return nil
}

func (s *solver) found(i int) Outcome {
	out := Outcome{
		Mode:     FirstDisconnect,
		Distance: relax.Unreachable,
		Index:    i,
		At:       s.obstacles[i],
		Applied:  i + 1,
	}
	s.opts.Logger.WithFields(logrus.Fields{
		"index":    i,
		"at":       out.At.String(),
		"strategy": s.opts.Strategy.String(),
	}).Info("obstacles: target disconnected")

	return out
}

func (s *solver) probeLog(i int, d uint64) {
	s.opts.Logger.WithFields(logrus.Fields{
		"index":     i,
		"at":        s.obstacles[i].String(),
		"reachable": d != relax.Unreachable,
	}).Debug("obstacles: probe")
}
