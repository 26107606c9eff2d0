package sand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func place(b *Board, x, y int, m Material) *Cell {
	idx := b.IndexOf(x, y)
	b.cells[idx] = b.fresh(m)
	return &b.cells[idx]
}

func findAll(b *Board, m Material) []int {
	var out []int
	for i := range b.cells {
		if b.cells[i].Material == m {
			out = append(out, i)
		}
	}
	return out
}

func TestNewBoardIsEmpty(t *testing.T) {
	b := New(10, 10)
	require.Equal(t, 10, b.Width())
	require.Equal(t, 10, b.Height())
	assert.True(t, b.Floor)
	assert.Zero(t, b.GranuleCount())
	for _, v := range b.OutputSnapshot() {
		assert.Equal(t, uint8(Empty), v)
	}
}

func TestNewClampsDimensions(t *testing.T) {
	b := New(0, -3)
	assert.Equal(t, 1, b.Width())
	assert.Equal(t, 1, b.Height())
}

func TestIndexOfCoordsOfRoundTrip(t *testing.T) {
	b := New(7, 5)
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			gx, gy := b.CoordsOf(b.IndexOf(x, y))
			require.Equal(t, x, gx)
			require.Equal(t, y, gy)
		}
	}
	assert.Equal(t, 13, b.IndexOf(6, 1))
}

func TestIndexOfPanicsOutOfBounds(t *testing.T) {
	b := New(4, 4)
	assert.Panics(t, func() { b.IndexOf(4, 0) })
	assert.Panics(t, func() { b.IndexOf(-1, 2) })
}

func TestInBounds(t *testing.T) {
	b := New(3, 2)
	assert.True(t, b.InBounds(0, 0))
	assert.True(t, b.InBounds(2, 1))
	assert.False(t, b.InBounds(3, 1))
	assert.False(t, b.InBounds(0, 2))
	assert.False(t, b.InBounds(-1, 0))
}

func TestRelative(t *testing.T) {
	b := New(4, 4)
	idx, ok := b.Relative(b.IndexOf(1, 1), 1, 1)
	require.True(t, ok)
	assert.Equal(t, b.IndexOf(2, 2), idx)

	_, ok = b.Relative(b.IndexOf(3, 0), 1, 0)
	assert.False(t, ok, "must not wrap to the next row")
	_, ok = b.Relative(b.IndexOf(0, 0), 0, -1)
	assert.False(t, ok)
}

func TestResetClearsBoard(t *testing.T) {
	b := New(8, 8)
	b.AddGranules(4, 4, 3, Sand)
	require.NotZero(t, b.GranuleCount())
	b.Reset()
	assert.Zero(t, b.GranuleCount())
}

func TestAddGranules(t *testing.T) {
	b := New(10, 10)
	assert.Equal(t, 9, b.AddGranules(5, 5, 2, Sand))
	assert.Equal(t, 9, b.GranuleCount())
	assert.Equal(t, 0, b.AddGranules(5, 5, 2, Sand), "painting occupied cells adds nothing")
	assert.Equal(t, Sand, b.Cell(6, 6).Material)
	assert.Equal(t, Empty, b.Cell(7, 5).Material)
}

func TestAddGranulesSmallRadiusPaintsCentre(t *testing.T) {
	b := New(10, 10)
	assert.Equal(t, 1, b.AddGranules(2, 2, 0, Sand))
	assert.Equal(t, 1, b.AddGranules(7, 7, 1, Water))
	assert.Equal(t, 2, b.GranuleCount())
}

func TestAddGranulesClipsToBoard(t *testing.T) {
	b := New(10, 10)
	assert.Equal(t, 0, b.AddGranules(-10, -10, 2, Sand))
	assert.Equal(t, 4, b.AddGranules(0, 0, 2, Sand))
	assert.Equal(t, 0, b.AddGranules(5, 5, 3, ScreenEdge))
	assert.Equal(t, 0, b.AddGranules(5, 5, -1, Sand))
}

func TestAddGranulesHugeRadiusFillsBoard(t *testing.T) {
	b := New(10, 10)
	assert.Equal(t, 3, b.AddGranules(-1, 5, 2, Sand))
	b.Reset()
	assert.Equal(t, 100, b.AddGranules(5, 5, 1<<30, Sand))
	assert.Equal(t, 100, b.GranuleCount())
}

func TestAddGranulesOverwritesWithEmpty(t *testing.T) {
	b := New(10, 10)
	b.AddGranules(5, 5, 2, Sand)
	assert.Equal(t, 0, b.AddGranules(5, 5, 2, Empty))
	assert.Zero(t, b.GranuleCount())
}

func TestNeighborhoodCornerReportsScreenEdge(t *testing.T) {
	b := New(5, 5)
	place(b, 0, 0, Sand)
	place(b, 1, 1, Water)
	n := b.Neighborhood(0, 0)
	assert.Equal(t, ScreenEdge, n[0][0].Material)
	assert.Equal(t, ScreenEdge, n[0][1].Material)
	assert.Equal(t, ScreenEdge, n[0][2].Material)
	assert.Equal(t, ScreenEdge, n[1][0].Material)
	assert.Equal(t, ScreenEdge, n[2][0].Material)
	assert.Equal(t, Sand, n[1][1].Material)
	assert.Equal(t, Water, n[2][2].Material)
	assert.Equal(t, Empty, n[1][2].Material)
}

func TestNeighborhoodOutsideBoardIsEmpty(t *testing.T) {
	b := New(5, 5)
	n := b.Neighborhood(-3, 9)
	for row := range n {
		for col := range n[row] {
			assert.Equal(t, Empty, n[row][col].Material)
		}
	}
}

func TestScreenEdgeNeverStored(t *testing.T) {
	b := New(12, 12)
	b.Fill(SceneRandomOcean)
	b.AddGranules(6, 2, 3, Seed)
	b.AddGranules(3, 3, 2, Egg)
	for i := 0; i < 50; i++ {
		b.Tick()
	}
	assert.Empty(t, findAll(b, ScreenEdge))
}

func TestSweepIndexIsSerpentine(t *testing.T) {
	b := New(3, 2)
	got := make([]int, 0, 6)
	for i := 0; i < 6; i++ {
		got = append(got, b.sweepIndex(i))
	}
	assert.Equal(t, []int{2, 1, 0, 3, 4, 5}, got)
}

func TestSandFallsOneRowPerTick(t *testing.T) {
	b := New(10, 10)
	place(b, 5, 0, Sand)
	for tick := 1; tick <= 12; tick++ {
		b.Tick()
		want := min(tick, 9)
		require.Equal(t, Sand, b.Cell(5, want).Material, "tick %d", tick)
		require.Equal(t, 1, b.GranuleCount())
	}
	assert.Equal(t, uint64(12), b.Ticks())
}

func TestFloorKeepsBottomRow(t *testing.T) {
	b := New(10, 10)
	place(b, 5, 9, Sand)
	b.Tick()
	assert.Equal(t, Sand, b.Cell(5, 9).Material)
}

func TestNoFloorRemovesBottomRow(t *testing.T) {
	b := New(10, 10)
	b.Floor = false
	place(b, 5, 9, Sand)
	b.Tick()
	assert.Zero(t, b.GranuleCount())
}

func TestPaintedCellsMoveOnNextTick(t *testing.T) {
	b := New(10, 10)
	b.Tick()
	b.Tick()
	b.Tick()
	b.AddGranules(5, 0, 1, Sand)
	b.Tick()
	assert.Equal(t, Sand, b.Cell(5, 1).Material)
}

func TestRestingGranulesStayEligible(t *testing.T) {
	b := New(10, 10)
	place(b, 4, 9, Wall)
	place(b, 5, 9, Wall)
	place(b, 6, 9, Wall)
	place(b, 5, 8, Sand)
	b.Tick()
	b.Tick()
	require.Equal(t, Sand, b.Cell(5, 8).Material)

	b.cells[b.IndexOf(5, 9)] = b.fresh(Empty)
	b.Tick()
	assert.Equal(t, Sand, b.Cell(5, 9).Material)
}

func TestDisplacedWaterMovesNextTick(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		b := New(3, 4)
		b.Seed(seed)
		place(b, 1, 0, Sand)
		place(b, 1, 1, Water)

		b.Tick()
		require.Equal(t, Water, b.Cell(1, 0).Material, "seed %d", seed)
		require.Equal(t, Sand, b.Cell(1, 1).Material, "seed %d", seed)

		b.Tick()
		assert.Equal(t, Empty, b.Cell(1, 0).Material, "seed %d: water stayed above open diagonals", seed)
		water := findAll(b, Water)
		require.Len(t, water, 1, "seed %d", seed)
		_, wy := b.CoordsOf(water[0])
		assert.Equal(t, 1, wy, "seed %d", seed)
	}
}

func TestNoParticleMovesTwicePerTick(t *testing.T) {
	b := New(16, 16)
	id := uint8(1)
	for y := 0; y < 8; y++ {
		for x := y % 2; x < 16; x += 2 {
			c := place(b, x, y, Sand)
			c.Hunger = id
			id++
		}
	}
	before := map[uint8]int{}
	for i, c := range b.cells {
		if c.Material == Sand {
			before[c.Hunger] = i
		}
	}

	b.Tick()

	moved := 0
	for i, c := range b.cells {
		if c.Material != Sand {
			continue
		}
		from, ok := before[c.Hunger]
		require.True(t, ok)
		fx, fy := b.CoordsOf(from)
		tx, ty := b.CoordsOf(i)
		dx, dy := tx-fx, ty-fy
		require.LessOrEqual(t, dx*dx, 1, "grain %d moved %d columns", c.Hunger, dx)
		require.GreaterOrEqual(t, dy, 0)
		require.LessOrEqual(t, dy, 1, "grain %d moved %d rows", c.Hunger, dy)
		if dx != 0 || dy != 0 {
			moved++
		}
	}
	assert.Len(t, before, b.GranuleCount())
	assert.NotZero(t, moved)
}

func TestCensusCountsMaterials(t *testing.T) {
	b := New(4, 4)
	place(b, 0, 0, Sand)
	place(b, 1, 0, Sand)
	place(b, 2, 0, Water)
	census := b.Census()
	assert.Equal(t, 2, census[Sand])
	assert.Equal(t, 1, census[Water])
	assert.Equal(t, 13, census[Empty])
}

func TestOutputSnapshotMatchesCells(t *testing.T) {
	b := New(3, 3)
	place(b, 1, 2, Wall)
	place(b, 0, 0, Water)
	snap := b.OutputSnapshot()
	require.Len(t, snap, 9)
	assert.Equal(t, uint8(Water), snap[0])
	assert.Equal(t, uint8(Wall), snap[7])
}

func TestSeedIsReproducible(t *testing.T) {
	run := func() []uint8 {
		b := New(24, 24)
		b.Seed(7)
		b.Fill(SceneRandomOcean)
		for i := 0; i < 30; i++ {
			b.Tick()
		}
		return append([]uint8(nil), b.OutputSnapshot()...)
	}
	assert.Equal(t, run(), run())
}
