// Package relax computes shortest-cost reachability over a grid state space
// by label-correcting relaxation.
//
// A state is either a bare cell (Position) or a cell paired with a facing
// (Heading). From every state the engine tries each in-bounds neighbor of its
// cell; a CostFunc prices the move (or forbids it) and Blocked destinations
// are always rejected. Distances only ever decrease, and a state is put back on
// the worklist every time its distance strictly improves, so the removal order
// does not affect the result.
//
// With tie tracking enabled the engine also keeps, for every state, the full
// set of predecessors that achieve its minimal distance. That relation is what
// the paths package walks to collect every cell on any optimal path.
//
// Complexity:
//
//   - Time:  O(S·d·k) for the Stack and Queue worklists, where S is the number
//     of states, d ≤ 4 the out-degree and k the number of times a state's
//     distance can improve; O((S·d) log(S·d)) for the Priority worklist.
//   - Space: O(S·d) for the distance table, predecessor sets and worklist.
//
// Options:
//
//   - WithTies():          keep every equal-cost predecessor, not just the first.
//   - WithWorklist(w):     Stack (default, LIFO), Queue (FIFO) or Priority (min-heap).
//   - WithMaxDistance(d):  do not record distances above d.
//   - WithLogger(l):       send the per-run diagnostics entry to l instead of Log.
//
// Errors:
//
//   - ErrNilGrid            if the grid is nil.
//   - ErrNilCost            if the cost function is nil.
//   - ErrSourceOutOfBounds  if the source cell is outside the grid.
//   - ErrZeroWeight         if the cost function prices an allowed move at 0.
//   - ErrOptionViolation    if an invalid option was supplied.
//
// Unreachable states are not errors: Result.Distance reports them as
// Unreachable (math.MaxUint64).
package relax
