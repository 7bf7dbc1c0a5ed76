package tilegrid_test

import (
	"testing"

	"github.com/katalvlaran/tilepath/tilegrid"
)

// BenchmarkCostAt measures transformed lookups over a 5×5 tiled sample.
func BenchmarkCostAt(b *testing.B) {
	g := mustSample(b, 5)
	rows, cols := g.Extent()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		c := tilegrid.Cell{Row: i % rows, Col: (i / rows) % cols}
		_, _ = g.CostAt(c)
	}
}

// BenchmarkNeighbors measures adjacency generation for interior cells.
func BenchmarkNeighbors(b *testing.B) {
	g := mustSample(b, 5)
	c := tilegrid.Cell{Row: 25, Col: 25}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors(c)
	}
}
