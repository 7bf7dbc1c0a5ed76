// Package tilegrid provides a square weighted grid of entry costs that can
// be expanded into k×k shifted replicas of itself. Cost lookup and
// adjacency are computed on demand with modular arithmetic, so the
// expanded grid is never stored.
package tilegrid

import (
	"fmt"
	"math"
	"strings"
)

// Extent returns the logical dimensions of the tiled grid.
// Complexity: O(1).
func (g *Grid) Extent() (rows, cols int) {
	n := g.size * g.tileFactor
	return n, n
}

// BaseSize returns the side length of the untiled base matrix.
func (g *Grid) BaseSize() int { return g.size }

// TileFactor returns the number of tiles along each axis.
func (g *Grid) TileFactor() int { return g.tileFactor }

// Corner returns the bottom-right cell of the logical extent.
func (g *Grid) Corner() Cell {
	rows, cols := g.Extent()
	return Cell{Row: rows - 1, Col: cols - 1}
}

// InBounds reports whether c lies within the logical extent.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	rows, cols := g.Extent()
	return c.Row >= 0 && c.Row < rows && c.Col >= 0 && c.Col < cols
}

// CostAt returns the entry cost of logical cell c, always in [1,9].
// Returns ErrOutOfBounds if c lies outside the extent.
// Complexity: O(1).
func (g *Grid) CostAt(c Cell) (int, error) {
	if !g.InBounds(c) {
		return 0, g.outOfBounds(c)
	}
	return g.cost(c), nil
}

// Neighbors returns the 4-connected neighbors of c that lie within the
// logical extent. Adjacency is symmetric: if n is a neighbor of c,
// c is a neighbor of n.
// Returns ErrOutOfBounds if c itself lies outside the extent.
// Complexity: O(1).
func (g *Grid) Neighbors(c Cell) ([]Cell, error) {
	if !g.InBounds(c) {
		return nil, g.outOfBounds(c)
	}
	out := make([]Cell, 0, len(conn4))
	for _, d := range conn4 {
		n := Cell{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out, nil
}

// Tile returns a view of the same base expanded k×k.
// The base matrix is shared, not copied.
func (g *Grid) Tile(k int) (*Grid, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadTileFactor, k)
	}
	if err := checkExtent(g.size, k); err != nil {
		return nil, err
	}
	return &Grid{base: g.base, size: g.size, tileFactor: k}, nil
}

// Index maps c to a row-major index over the logical extent: Row*cols + Col.
// Complexity: O(1).
func (g *Grid) Index(c Cell) int {
	_, cols := g.Extent()
	return c.Row*cols + c.Col
}

// Coordinate converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Cell {
	_, cols := g.Extent()
	return Cell{Row: idx / cols, Col: idx % cols}
}

// String renders the whole logical extent as rows of digits.
func (g *Grid) String() string {
	rows, cols := g.Extent()
	var sb strings.Builder
	sb.Grow(rows * (cols + 1))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			sb.WriteByte(byte('0' + g.cost(Cell{Row: r, Col: c})))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// cost is CostAt without the bounds check.
func (g *Grid) cost(c Cell) int {
	n := g.size
	offset := c.Row/n + c.Col/n
	return wrapCost(g.base[c.Row%n][c.Col%n], offset)
}

// wrapCost shifts base by offset, wrapping within [1,9].
// An offset of 0 leaves base unchanged.
func wrapCost(base, offset int) int {
	return (base+offset-1)%9 + 1
}

func (g *Grid) outOfBounds(c Cell) error {
	rows, cols := g.Extent()
	return fmt.Errorf("%w: %v outside %dx%d", ErrOutOfBounds, c, rows, cols)
}

// checkExtent rejects a tile factor whose extent, or the row-major index
// over that extent, would not fit in an int.
func checkExtent(size, k int) error {
	if k > math.MaxInt/size {
		return fmt.Errorf("%w: %d tiles of size %d overflow int", ErrBadTileFactor, k, size)
	}
	n := size * k
	if n > math.MaxInt/n {
		return fmt.Errorf("%w: %dx%d cells overflow int", ErrBadTileFactor, n, n)
	}
	return nil
}
