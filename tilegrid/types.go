// Package tilegrid defines core types, options, and sentinel errors
// for the tilegrid subpackage of github.com/katalvlaran/tilepath.
package tilegrid

import (
	"errors"
	"fmt"
)

// Sentinel errors for tilegrid operations.
var (
	// ErrParse is matched by every *ParseError, whatever its cause.
	ErrParse = errors.New("tilegrid: malformed grid")
	// ErrEmptyGrid indicates input has no rows or no columns.
	ErrEmptyGrid = errors.New("tilegrid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("tilegrid: all rows must have the same length")
	// ErrNonSquare indicates the row count differs from the column count.
	ErrNonSquare = errors.New("tilegrid: grid must be square")
	// ErrInvalidCost indicates a character outside '1'..'9'.
	ErrInvalidCost = errors.New("tilegrid: cost must be a digit in 1..9")
	// ErrBadTileFactor indicates a tile factor below 1.
	ErrBadTileFactor = errors.New("tilegrid: tile factor must be at least 1")
	// ErrOutOfBounds indicates a cell outside the logical extent.
	ErrOutOfBounds = errors.New("tilegrid: cell out of bounds")
)

// ParseError reports where malformed input was found.
// Row and Col are zero-based; Col is -1 when the whole row is at fault,
// and both are -1 when the input as a whole is.
type ParseError struct {
	Row, Col int
	Err      error
}

func (e *ParseError) Error() string {
	switch {
	case e.Row < 0:
		return e.Err.Error()
	case e.Col < 0:
		return fmt.Sprintf("%v (row %d)", e.Err, e.Row)
	default:
		return fmt.Sprintf("%v (row %d, col %d)", e.Err, e.Row, e.Col)
	}
}

// Unwrap lets errors.Is match both ErrParse and the specific cause.
func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// Cell is a logical grid coordinate.
type Cell struct {
	Row, Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Options contains tunable parameters for grid construction.
type Options struct {
	// TileFactor is the number of base replicas along each axis.
	TileFactor int

	// error recorded by an invalid Option, surfaced by Parse
	err error
}

// Option configures grid construction.
type Option func(*Options)

// DefaultOptions returns Options with TileFactor=1 (no tiling).
func DefaultOptions() Options {
	return Options{TileFactor: 1}
}

// WithTileFactor expands the logical grid to k×k tiles of the base.
//
//	k >= 1: use k
//	k < 1:  invalid, Parse returns ErrBadTileFactor
func WithTileFactor(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: got %d", ErrBadTileFactor, k)
			return
		}
		o.TileFactor = k
	}
}

// Grid is an immutable n×n base of entry costs, logically tiled
// tileFactor times along each axis.
type Grid struct {
	base       [][]int
	size       int
	tileFactor int
}

// conn4 lists the von Neumann neighbor deltas as {dRow, dCol}: W, S, E, N.
var conn4 = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
