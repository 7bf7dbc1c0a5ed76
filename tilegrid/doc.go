// Package tilegrid treats a square matrix of digit costs as a weighted grid
// that is logically tiled into a larger map without materializing it.
//
// What:
//
//   - Grid wraps an n×n base matrix of entry costs in [1,9].
//   - A tile factor k expands the logical extent to (n·k)×(n·k).
//   - Each replica of the base ("tile") is shifted by its tile offset:
//     the tile's row index plus its column index.
//   - Costs wrap within [1,9]: a 9 shifted by one becomes 1, never 0.
//
// Cost transform for logical cell (r,c):
//
//	base   = base[r mod n][c mod n]
//	offset = r div n + c div n
//	cost   = ((base + offset - 1) mod 9) + 1
//
// Adjacency is 4-connected (N, E, S, W) over the whole logical extent.
// Cells outside the extent are never produced by Neighbors.
//
// Complexity:
//
//   - Parse:     O(n²) time and memory.
//   - CostAt:    O(1), no allocation.
//   - Neighbors: O(1), one small slice per call.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular, ErrNonSquare, ErrInvalidCost:
//     malformed input, reported as *ParseError (matches ErrParse too).
//   - ErrBadTileFactor: tile factor below 1.
//   - ErrOutOfBounds: CostAt or Neighbors outside the logical extent.
//
// A Grid is immutable once built and safe for concurrent readers.
package tilegrid
