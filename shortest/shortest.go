// Package shortest implements uniform-cost search over weighted grids.
//
// Notes on implementation choices:
//
//   - Cells are addressed by row-major index. The distance table and
//     predecessor links are maps holding only discovered cells, so a search
//     costs memory in proportion to the region it explores, not the extent.
//   - Improved cells are pushed again instead of re-keyed; stale entries are
//     recognised on pop (pushed dist > current dist) and skipped.
//   - With QueuePriority the end cell is final once popped, so the search
//     stops there. QueueFIFO has no such guarantee and drains the queue.
package shortest

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tilepath/tilegrid"
)

// Solve returns the minimum total entry cost of moving from start to end.
// The start cell contributes nothing; each entered cell adds g.CostAt.
//
// Validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. Options must be valid (ErrOptionViolation).
//  3. start and end must lie within g.Extent() (ErrOutOfBounds).
//
// If end is never reached, Solve returns ErrUnreachable. On any error the
// returned cost is 0.
func Solve(g Grid, start, end tilegrid.Cell, opts ...Option) (int, error) {
	res, err := search(g, start, end, false, opts)
	if err != nil {
		return 0, err
	}

	return res.Cost, nil
}

// Route behaves like Solve and also reconstructs one cheapest path.
// Result.Path starts at start and ends at end; the entry costs of every
// cell after the first sum to Result.Cost.
func Route(g Grid, start, end tilegrid.Cell, opts ...Option) (Result, error) {
	return search(g, start, end, true, opts)
}

func search(g Grid, start, end tilegrid.Cell, withPath bool, opts []Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}
	cfg.returnPath = withPath

	rows, cols := g.Extent()
	if rows > 0 && cols > math.MaxInt/rows {
		return Result{}, fmt.Errorf("%w: %dx%d cells cannot be indexed", ErrOutOfBounds, rows, cols)
	}
	for _, c := range [2]tilegrid.Cell{start, end} {
		if c.Row < 0 || c.Row >= rows || c.Col < 0 || c.Col >= cols {
			return Result{}, fmt.Errorf("%w: %v outside %dx%d", ErrOutOfBounds, c, rows, cols)
		}
	}

	r := newRunner(g, cfg, rows, cols)
	r.end = r.index(end)
	if err := r.run(r.index(start)); err != nil {
		return Result{}, err
	}
	if !r.dist.reached(r.end) {
		return Result{}, fmt.Errorf("%w: %v → %v", ErrUnreachable, start, end)
	}

	res := Result{
		Cost:        r.dist.at(r.end),
		Relaxations: r.relaxed,
	}
	if cfg.returnPath {
		res.Path = r.path()
	}

	return res, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g          Grid        // read-only cost source
	opts       Options     // validated configuration
	rows, cols int         // logical extent
	dist       distances   // best-known cost per discovered cell
	prev       map[int]int // predecessor index per reached cell; nil unless returnPath
	front      frontier    // pending cells
	end        int         // target index
	relaxed    int         // successful relaxations
}

func newRunner(g Grid, cfg Options, rows, cols int) *runner {
	r := &runner{
		g:     g,
		opts:  cfg,
		rows:  rows,
		cols:  cols,
		dist:  newDistances(),
		front: newFrontier(cfg.Queue),
	}
	if cfg.returnPath {
		r.prev = make(map[int]int)
	}

	return r
}

func (r *runner) index(c tilegrid.Cell) int { return c.Row*r.cols + c.Col }

func (r *runner) cell(idx int) tilegrid.Cell {
	return tilegrid.Cell{Row: idx / r.cols, Col: idx % r.cols}
}

// run seeds the frontier with start and relaxes until it drains,
// or until end is settled under QueuePriority.
func (r *runner) run(start int) error {
	r.dist.set(start, 0)
	r.front.push(start, 0)

	for r.front.len() > 0 {
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}

		item := r.front.pop()
		if item.dist > r.dist.at(item.idx) {
			continue // stale
		}
		if item.idx == r.end && r.opts.Queue == QueuePriority {
			return nil
		}
		if err := r.relax(item.idx); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every neighbor of u through u.
// Assumes r.dist.at(u) is finite.
func (r *runner) relax(u int) error {
	from := r.cell(u)
	neighbors, err := r.g.Neighbors(from)
	if err != nil {
		return fmt.Errorf("shortest: neighbors of %v: %w", from, err)
	}

	base := r.dist.at(u)
	for _, n := range neighbors {
		if n.Row < 0 || n.Row >= r.rows || n.Col < 0 || n.Col >= r.cols {
			return fmt.Errorf("%w: neighbor %v of %v", ErrOutOfBounds, n, from)
		}
		cost, err := r.g.CostAt(n)
		if err != nil {
			return fmt.Errorf("shortest: cost of %v: %w", n, err)
		}
		if cost <= 0 {
			return fmt.Errorf("%w: %d at %v", ErrNonPositiveCost, cost, n)
		}
		if cost >= Unreached-base {
			return fmt.Errorf("%w: %d + %d at %v", ErrCostOverflow, base, cost, n)
		}

		candidate := base + cost
		if r.opts.MaxCost >= 0 && candidate > r.opts.MaxCost {
			continue
		}
		v := r.index(n)
		if candidate >= r.dist.at(v) {
			continue
		}

		r.dist.set(v, candidate)
		if r.prev != nil {
			r.prev[v] = u
		}
		r.relaxed++
		r.opts.OnRelax(n, candidate)
		r.front.push(v, candidate)
	}

	return nil
}

// path walks predecessor links back from end and returns them start-first.
func (r *runner) path() []tilegrid.Cell {
	rev := []tilegrid.Cell{r.cell(r.end)}
	for at, ok := r.prev[r.end]; ok; at, ok = r.prev[at] {
		rev = append(rev, r.cell(at))
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
