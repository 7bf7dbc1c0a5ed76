// Package shortest computes minimum-cost paths across a weighted grid where
// the price of a move is the entry cost of the cell moved into.
//
// Overview:
//
//   - The start cell costs nothing; every cell entered afterwards adds its
//     CostAt value to the running total.
//   - Movement is whatever the grid's Neighbors reports (4-connected for a
//     tilegrid.Grid).
//   - Costs must be positive, so every relaxation strictly lowers a finite
//     distance and the search always terminates.
//
// Queue disciplines:
//
//   - QueuePriority (default): a min-heap keyed by tentative distance with
//     lazy decrease-key. The search stops as soon as the end cell is popped,
//     because its distance is final at that point.
//   - QueueFIFO: a plain relaxation queue. Cells may be re-queued and
//     relaxed several times; the search runs until nothing improves.
//     Simpler, but noticeably more relaxations on large grids.
//
// Both return the same, exact answer.
//
// Distance bookkeeping:
//
//   - Each call owns a fresh distance map keyed by row-major index. Cells
//     not yet discovered read as Unreached. Entries only ever decrease.
//   - Nothing is sized to the extent, so a huge tiled grid costs only what
//     the search actually visits.
//   - The grid is never mutated, so one grid may serve concurrent calls.
//
// Complexity (V = cells visited, at most rows·cols):
//
//   - QueuePriority: O(V log V) time, O(V) memory.
//   - QueueFIFO:     O(V·E) worst case, typically a small multiple of V.
//
// Errors (sentinel):
//
//   - ErrNilGrid:         grid is nil.
//   - ErrOptionViolation: an Option received an invalid value.
//   - ErrOutOfBounds:     start or end outside the grid extent
//     (also matches tilegrid.ErrOutOfBounds).
//   - ErrUnreachable:     end was never reached (disconnected grid, or
//     beyond WithMaxCost).
//   - ErrNonPositiveCost: a custom grid reported a cost below 1.
//   - ErrCostOverflow:    a path total would reach Unreached.
//
// API reference:
//
//	cost, err := shortest.Solve(g, start, end, opts...)
//	res, err  := shortest.Route(g, start, end, opts...) // res.Path, res.Cost
//
// Options:
//
//   - WithQueue(QueuePriority | QueueFIFO)
//   - WithMaxCost(n):  skip any path costing more than n.
//   - WithContext(ctx): cancellation, checked once per pop.
//   - WithOnRelax(fn): called after every successful relaxation.
package shortest
