// Package shortest defines the grid contract, options, and sentinel errors
// for minimum-cost grid search.
package shortest

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/tilepath/tilegrid"
)

// Sentinel errors returned by Solve and Route.
var (
	// ErrNilGrid indicates a nil grid was passed.
	ErrNilGrid = errors.New("shortest: grid is nil")

	// ErrOptionViolation indicates an Option received an invalid value.
	ErrOptionViolation = errors.New("shortest: invalid option supplied")

	// ErrOutOfBounds indicates start or end lies outside the grid extent.
	// It wraps tilegrid.ErrOutOfBounds so either sentinel matches.
	ErrOutOfBounds = fmt.Errorf("shortest: endpoint out of bounds: %w", tilegrid.ErrOutOfBounds)

	// ErrUnreachable indicates no path connects start to end.
	ErrUnreachable = errors.New("shortest: end cell unreachable from start")

	// ErrNonPositiveCost indicates the grid reported a cost below 1.
	ErrNonPositiveCost = errors.New("shortest: cell cost must be positive")

	// ErrCostOverflow indicates a path cost that does not fit below Unreached.
	ErrCostOverflow = errors.New("shortest: path cost overflows int")
)

// Unreached marks a cell with no known path yet.
const Unreached = math.MaxInt

// Grid is the cost source the search runs over. *tilegrid.Grid satisfies it.
// Implementations must report strictly positive costs and must not change
// while a search is running. rows*cols must fit in an int, and every path
// total must stay below Unreached (ErrCostOverflow otherwise).
type Grid interface {
	Extent() (rows, cols int)
	CostAt(c tilegrid.Cell) (int, error)
	Neighbors(c tilegrid.Cell) ([]tilegrid.Cell, error)
}

// QueueKind selects the frontier discipline.
type QueueKind int

const (
	// QueuePriority expands the closest pending cell first.
	QueuePriority QueueKind = iota

	// QueueFIFO re-examines improved cells in arrival order.
	QueueFIFO
)

func (k QueueKind) String() string {
	switch k {
	case QueuePriority:
		return "priority"
	case QueueFIFO:
		return "fifo"
	default:
		return fmt.Sprintf("QueueKind(%d)", int(k))
	}
}

// ParseQueueKind maps "priority" / "fifo" (case-insensitive) to a QueueKind.
func ParseQueueKind(s string) (QueueKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "priority", "pq", "heap":
		return QueuePriority, nil
	case "fifo", "queue", "spfa":
		return QueueFIFO, nil
	default:
		return 0, fmt.Errorf("%w: unknown queue kind %q", ErrOptionViolation, s)
	}
}

// Options configures a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Queue is the frontier discipline.
	Queue QueueKind

	// MaxCost, if >= 0, skips any path costing more than MaxCost.
	// Default -1 (no cap).
	MaxCost int

	// OnRelax is called after a cell's tentative distance improves.
	OnRelax func(c tilegrid.Cell, dist int)

	// set by Route to keep predecessor links
	returnPath bool

	// error recorded during option parsing
	err error
}

// Option configures Solve and Route.
type Option func(*Options)

// DefaultOptions returns:
//   - context.Background()
//   - QueuePriority
//   - no cost cap (MaxCost == -1)
//   - no-op OnRelax
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Queue:   QueuePriority,
		MaxCost: -1,
		OnRelax: func(tilegrid.Cell, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithQueue selects the frontier discipline.
func WithQueue(k QueueKind) Option {
	return func(o *Options) {
		if k != QueuePriority && k != QueueFIFO {
			o.err = fmt.Errorf("%w: unknown queue kind %d", ErrOptionViolation, int(k))
			return
		}
		o.Queue = k
	}
}

// WithMaxCost caps exploration at n. Paths costing more are never relaxed,
// so an end cell beyond the cap yields ErrUnreachable.
//
//	n >= 0: cap at n
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxCost(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxCost = n
	}
}

// WithOnRelax registers a callback run after every successful relaxation.
func WithOnRelax(fn func(c tilegrid.Cell, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// Result is the outcome of Route.
//   - Cost: minimum total entry cost from start to end.
//   - Path: cells from start to end inclusive along one cheapest route.
//   - Relaxations: number of successful distance improvements.
type Result struct {
	Cost        int
	Path        []tilegrid.Cell
	Relaxations int
}
