// Package obstacles drops Blocked cells onto a grid one at a time and answers
// either "how far is the target once they have all landed" or "which obstacle
// is the first to cut the source off from the target".
//
// Every probe reruns relax.Run from scratch with the unit-step cost; there is
// no incremental shortest-path maintenance. Reachability is monotone in the
// number of obstacles applied, so the Bisect strategy can binary-search the
// first disconnecting obstacle on cloned grids and report the same answer as
// the Linear scan in O(log k) probes instead of O(k).
//
// Solve mutates the grid it is given: on return every obstacle up to and
// including the reported one (FirstDisconnect) or every applied obstacle
// (FinalDistance) is Blocked. Obstacles that land on a Start, End or already
// Blocked cell leave it unchanged but still count towards the sequence index.
//
// Errors:
//
//   - ErrNilGrid              if the grid is nil.
//   - ErrEndpointOutOfBounds  if source or target lies outside the grid.
//   - ErrObstacleOutOfBounds  if any obstacle lies outside the grid.
//   - ErrNeverDisconnected    if FirstDisconnect finds the target still reachable
//     after the whole sequence.
//   - ErrOptionViolation      if an invalid option was supplied.
package obstacles

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/relax"
)

// Sentinel errors returned by Solve.
var (
	ErrNilGrid             = errors.New("obstacles: grid is nil")
	ErrEndpointOutOfBounds = errors.New("obstacles: source or target out of bounds")
	ErrObstacleOutOfBounds = errors.New("obstacles: obstacle out of bounds")
	ErrNeverDisconnected   = errors.New("obstacles: target still reachable after every obstacle")
	ErrOptionViolation     = errors.New("obstacles: invalid option supplied")
)

// Log receives per-probe Debug entries and the final Info entry.
var Log = logrus.New()

// Mode selects the question Solve answers.
type Mode int

const (
	// FinalDistance applies the obstacles, then reports the target distance.
	FinalDistance Mode = iota
	// FirstDisconnect reports the first obstacle after which the target is unreachable.
	FirstDisconnect
)

func (m Mode) String() string {
	switch m {
	case FinalDistance:
		return "final-distance"
	case FirstDisconnect:
		return "first-disconnect"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Strategy selects how FirstDisconnect searches the sequence.
type Strategy int

const (
	// Linear applies obstacles in order and probes after each one.
	Linear Strategy = iota
	// Bisect binary-searches the shortest disconnecting prefix.
	Bisect
)

func (s Strategy) String() string {
	switch s {
	case Linear:
		return "linear"
	case Bisect:
		return "bisect"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Options configures Solve.
//
// Mode     – FinalDistance (default) or FirstDisconnect.
// Strategy – Linear (default) or Bisect; only FirstDisconnect uses it.
// Limit    – FinalDistance applies only the first Limit obstacles; All (default) means every one.
// Worklist – removal order handed to relax.Run.
// Logger   – sink for probe diagnostics. Default Log.
type Options struct {
	Mode     Mode
	Strategy Strategy
	Limit    int
	Worklist relax.Worklist
	Logger   logrus.FieldLogger

	err error
}

// All is the Limit that applies the whole obstacle sequence.
const All = -1

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// DefaultOptions returns FinalDistance over the whole sequence, Linear
// strategy, Stack worklist, package Log.
func DefaultOptions() Options {
	return Options{
		Mode:     FinalDistance,
		Strategy: Linear,
		Limit:    All,
		Worklist: relax.Stack,
		Logger:   Log,
	}
}

// WithMode selects the question to answer.
func WithMode(m Mode) Option {
	return func(o *Options) {
		switch m {
		case FinalDistance, FirstDisconnect:
			o.Mode = m
		default:
			o.err = fmt.Errorf("%w: unknown mode %d", ErrOptionViolation, int(m))
		}
	}
}

// WithStrategy selects how the first disconnect is searched for.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		switch s {
		case Linear, Bisect:
			o.Strategy = s
		default:
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
		}
	}
}

// WithLimit applies only the first n obstacles in FinalDistance mode.
//
//	n > 0:  use the first n (or all, if fewer)
//	n == 0: use none; the distance is that of the grid as given
//	n < 0:  invalid option → ErrOptionViolation
//
// Leave the option out to apply every obstacle.
func WithLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Limit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Limit = n
	}
}

// WithWorklist passes w through to relax.Run.
func WithWorklist(w relax.Worklist) Option {
	return func(o *Options) {
		o.Worklist = w
	}
}

// WithLogger overrides the logger. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Outcome is the answer of one Solve.
//
//   - FinalDistance:   Distance is the target distance (relax.Unreachable if cut off),
//     Applied the number of obstacles considered, Index is -1.
//   - FirstDisconnect: Index and At identify the first disconnecting obstacle,
//     Distance is relax.Unreachable.
type Outcome struct {
	Mode     Mode
	Distance uint64
	Index    int
	At       gridmap.Coord
	Applied  int
}

// String renders the answer: the distance (or "unreachable") for
// FinalDistance, "<col>,<row>" of the obstacle for FirstDisconnect.
func (o Outcome) String() string {
	if o.Mode == FirstDisconnect {
		return o.At.String()
	}
	if o.Distance == relax.Unreachable {
		return "unreachable"
	}

	return strconv.FormatUint(o.Distance, 10)
}
