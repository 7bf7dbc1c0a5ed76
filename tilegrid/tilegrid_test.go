package tilegrid_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilepath/tilegrid"
)

func mustSample(t testing.TB, k int) *tilegrid.Grid {
	t.Helper()
	g, err := tilegrid.Parse(sampleRows, tilegrid.WithTileFactor(k))
	require.NoError(t, err)
	return g
}

func TestExtent(t *testing.T) {
	for _, k := range []int{1, 2, 5} {
		rows, cols := mustSample(t, k).Extent()
		assert.Equal(t, 10*k, rows)
		assert.Equal(t, 10*k, cols)
	}
	assert.Equal(t, tilegrid.Cell{Row: 49, Col: 49}, mustSample(t, 5).Corner())
}

// TestCostAt_Tiled checks hand-computed costs across tiles.
func TestCostAt_Tiled(t *testing.T) {
	g := mustSample(t, 5)
	cases := []struct {
		cell tilegrid.Cell
		want int
	}{
		{tilegrid.Cell{Row: 0, Col: 0}, 1},   // origin tile, untouched
		{tilegrid.Cell{Row: 0, Col: 10}, 2},  // one tile right
		{tilegrid.Cell{Row: 10, Col: 0}, 2},  // one tile down
		{tilegrid.Cell{Row: 10, Col: 10}, 3}, // diagonal tile, offset 2
		{tilegrid.Cell{Row: 0, Col: 14}, 8},  // 7+1
		{tilegrid.Cell{Row: 0, Col: 24}, 9},  // 7+2, no wrap yet
		{tilegrid.Cell{Row: 4, Col: 30}, 1},  // 7+3 = 10 → 1
		{tilegrid.Cell{Row: 49, Col: 49}, 9}, // 1+8
	}
	for _, tc := range cases {
		got, err := g.CostAt(tc.cell)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "CostAt(%v)", tc.cell)
	}
}

// TestCostAt_Range walks every cell of a heavily tiled grid.
func TestCostAt_Range(t *testing.T) {
	g := mustSample(t, 12)
	rows, cols := g.Extent()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v, err := g.CostAt(tilegrid.Cell{Row: r, Col: c})
			require.NoError(t, err)
			if v < 1 || v > 9 {
				t.Fatalf("CostAt(%d,%d) = %d; want within [1,9]", r, c, v)
			}
		}
	}
}

func TestCostAt_OutOfBounds(t *testing.T) {
	g := mustSample(t, 2)
	for _, c := range []tilegrid.Cell{{Row: -1, Col: 0}, {Row: 0, Col: 20}, {Row: 20, Col: 5}, {Row: 3, Col: -7}} {
		_, err := g.CostAt(c)
		assert.ErrorIs(t, err, tilegrid.ErrOutOfBounds, "CostAt(%v)", c)
	}
}

// TestString_FirstRow matches the widely published expansion of the sample.
func TestString_FirstRow(t *testing.T) {
	lines := strings.Split(mustSample(t, 5).String(), "\n")
	require.Len(t, lines, 51) // 50 rows plus trailing newline
	assert.Equal(t, "11637517422274862853338597396444961841755517295286", lines[0])
	assert.Equal(t, "6755488935", lines[49][:10])
}

//----------------------------------------------------------------------------//
// Neighbors
//----------------------------------------------------------------------------//

func TestNeighbors_Counts(t *testing.T) {
	g := mustSample(t, 1)
	cases := []struct {
		name string
		cell tilegrid.Cell
		want int
	}{
		{"Corner", tilegrid.Cell{Row: 0, Col: 0}, 2},
		{"FarCorner", tilegrid.Cell{Row: 9, Col: 9}, 2},
		{"Edge", tilegrid.Cell{Row: 0, Col: 5}, 3},
		{"Interior", tilegrid.Cell{Row: 4, Col: 4}, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ns, err := g.Neighbors(tc.cell)
			require.NoError(t, err)
			assert.Len(t, ns, tc.want)
			for _, n := range ns {
				assert.True(t, g.InBounds(n), "neighbor %v out of bounds", n)
				dr, dc := n.Row-tc.cell.Row, n.Col-tc.cell.Col
				assert.Equal(t, 1, dr*dr+dc*dc, "neighbor %v not orthogonally adjacent", n)
			}
		})
	}
}

func TestNeighbors_CrossTileBoundary(t *testing.T) {
	g := mustSample(t, 2)
	ns, err := g.Neighbors(tilegrid.Cell{Row: 9, Col: 9})
	require.NoError(t, err)
	assert.ElementsMatch(t, []tilegrid.Cell{
		{Row: 9, Col: 8}, {Row: 10, Col: 9}, {Row: 9, Col: 10}, {Row: 8, Col: 9},
	}, ns)
}

// TestNeighbors_Symmetric verifies undirected adjacency over a tiled grid.
func TestNeighbors_Symmetric(t *testing.T) {
	g := mustSample(t, 3)
	rows, cols := g.Extent()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			here := tilegrid.Cell{Row: r, Col: c}
			ns, err := g.Neighbors(here)
			require.NoError(t, err)
			for _, n := range ns {
				back, err := g.Neighbors(n)
				require.NoError(t, err)
				assert.Contains(t, back, here, "%v → %v not mirrored", here, n)
			}
		}
	}
}

func TestNeighbors_OutOfBounds(t *testing.T) {
	ns, err := mustSample(t, 1).Neighbors(tilegrid.Cell{Row: 10, Col: 0})
	assert.Nil(t, ns)
	assert.ErrorIs(t, err, tilegrid.ErrOutOfBounds)
}

//----------------------------------------------------------------------------//
// Tile, Index, Coordinate
//----------------------------------------------------------------------------//

func TestTile_SharesBase(t *testing.T) {
	g := mustSample(t, 1)
	big, err := g.Tile(5)
	require.NoError(t, err)
	assert.Equal(t, mustSample(t, 5).String(), big.String())
	assert.Equal(t, 1, g.TileFactor(), "receiver must stay untouched")

	for _, k := range []int{0, 1 << 31, 1 << 62} {
		tiled, err := g.Tile(k)
		assert.Nil(t, tiled, "k=%d", k)
		assert.ErrorIs(t, err, tilegrid.ErrBadTileFactor, "k=%d", k)
	}
}

func TestIndexCoordinateRoundTrip(t *testing.T) {
	g := mustSample(t, 3)
	rows, cols := g.Extent()
	for idx := 0; idx < rows*cols; idx += 7 {
		assert.Equal(t, idx, g.Index(g.Coordinate(idx)))
	}
	assert.Equal(t, tilegrid.Cell{Row: 1, Col: 0}, g.Coordinate(cols))
}
