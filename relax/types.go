package relax

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/gridmap"
)

// Sentinel errors returned by Run.
var (
	// ErrNilGrid indicates that a nil *gridmap.Grid was passed to Run.
	ErrNilGrid = errors.New("relax: grid is nil")

	// ErrNilCost indicates that no cost function was supplied.
	ErrNilCost = errors.New("relax: cost function is nil")

	// ErrSourceOutOfBounds indicates that the source cell lies outside the grid.
	ErrSourceOutOfBounds = errors.New("relax: source out of bounds")

	// ErrZeroWeight indicates that the cost function allowed a move of weight 0.
	// Every allowed move must cost at least 1.
	ErrZeroWeight = errors.New("relax: allowed move has zero weight")

	// ErrOptionViolation indicates that an invalid Option was supplied.
	ErrOptionViolation = errors.New("relax: invalid option supplied")
)

// Unreachable is the distance reported for states the search never reached.
const Unreachable uint64 = math.MaxUint64

const (
	// StepCost is the price of a single move in the current facing.
	StepCost uint64 = 1
	// TurnCost is the flat surcharge for moving in any other facing.
	TurnCost uint64 = 1000
)

// Log receives one Debug entry per Run unless WithLogger overrides it.
var Log = logrus.New()

// State is a search state: a cell, optionally enriched with more context.
// Move returns the state reached by stepping from the receiver towards f,
// landing on cell to.
type State[S any] interface {
	comparable
	Cell() gridmap.Coord
	Move(f gridmap.Facing, to gridmap.Coord) S
}

// Position is the undirected state: a bare coordinate.
type Position struct {
	At gridmap.Coord
}

// Cell returns p.At.
func (p Position) Cell() gridmap.Coord { return p.At }

// Move ignores the facing.
func (p Position) Move(_ gridmap.Facing, to gridmap.Coord) Position {
	return Position{At: to}
}

// Heading is the directional state: a coordinate plus the facing of the last move.
type Heading struct {
	At     gridmap.Coord
	Facing gridmap.Facing
}

// Cell returns h.At.
func (h Heading) Cell() gridmap.Coord { return h.At }

// Move faces f after the step.
func (h Heading) Move(f gridmap.Facing, to gridmap.Coord) Heading {
	return Heading{At: to, Facing: f}
}

func (h Heading) String() string {
	return fmt.Sprintf("%v/%s", h.At, h.Facing)
}

// HeadingsAt returns the Heading states for every facing at c.
func HeadingsAt(c gridmap.Coord) []Heading {
	out := make([]Heading, 0, len(gridmap.Facings))
	for _, f := range gridmap.Facings {
		out = append(out, Heading{At: c, Facing: f})
	}

	return out
}

// CostFunc prices an attempt to move from s towards f. allowed == false
// forbids the move; otherwise weight must be ≥ 1.
type CostFunc[S any] func(s S, f gridmap.Facing) (allowed bool, weight uint64)

// UnitStep prices every move at StepCost regardless of facing.
func UnitStep[S any](_ S, _ gridmap.Facing) (bool, uint64) {
	return true, StepCost
}

// TurnPenalty prices a move in the current facing at StepCost and a move in
// any other facing at TurnCost+StepCost. A 180° reversal is one change of
// facing and is charged once.
func TurnPenalty(h Heading, f gridmap.Facing) (bool, uint64) {
	if f == h.Facing {
		return true, StepCost
	}

	return true, TurnCost + StepCost
}

// Worklist selects the order in which pending states are removed. Every
// order yields the same distances; they differ only in how often a state is
// re-expanded.
type Worklist int

const (
	// Stack removes the most recently added state first.
	Stack Worklist = iota
	// Queue removes the oldest pending state first.
	Queue
	// Priority removes the pending state with the smallest distance first.
	Priority
)

func (w Worklist) String() string {
	switch w {
	case Stack:
		return "stack"
	case Queue:
		return "queue"
	case Priority:
		return "priority"
	default:
		return fmt.Sprintf("Worklist(%d)", int(w))
	}
}

// ParseWorklist maps "stack", "queue" or "priority" to its Worklist.
func ParseWorklist(s string) (Worklist, error) {
	for _, w := range []Worklist{Stack, Queue, Priority} {
		if w.String() == s {
			return w, nil
		}
	}

	return Stack, fmt.Errorf("%w: unknown worklist %q", ErrOptionViolation, s)
}

// Options configures a single Run.
//
// Ties        – keep every equal-cost predecessor of a state.
// Worklist    – removal order of pending states.
// MaxDistance – distances above this value are never recorded. Default Unreachable (no cap).
// Logger      – sink for the per-run diagnostics entry. Default Log.
type Options struct {
	Ties        bool
	Worklist    Worklist
	MaxDistance uint64
	Logger      logrus.FieldLogger

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Run.
type Option func(*Options)

// DefaultOptions returns the defaults: no tie tracking, Stack worklist,
// no distance cap, package Log.
func DefaultOptions() Options {
	return Options{
		Ties:        false,
		Worklist:    Stack,
		MaxDistance: Unreachable,
		Logger:      Log,
	}
}

// WithTies enables tie tracking. Required before reconstructing every
// optimal path with the paths package.
func WithTies() Option {
	return func(o *Options) {
		o.Ties = true
	}
}

// WithWorklist selects the worklist removal order.
// An unknown value is recorded and surfaced as ErrOptionViolation by Run.
func WithWorklist(w Worklist) Option {
	return func(o *Options) {
		switch w {
		case Stack, Queue, Priority:
			o.Worklist = w
		default:
			o.err = fmt.Errorf("%w: unknown worklist %d", ErrOptionViolation, int(w))
		}
	}
}

// WithMaxDistance caps the distances the engine records. States whose
// shortest distance exceeds max are left unreached.
func WithMaxDistance(max uint64) Option {
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithLogger overrides the logger for one run. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
