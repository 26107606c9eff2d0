package sand

import (
	"fmt"

	"falling-sand/internal/core"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultSeed seeds the random source of boards created with New.
const DefaultSeed int64 = 1

// Board owns a dense, fixed-size grid of cells and advances it one sweep per
// Tick. It is not safe for concurrent use.
type Board struct {
	cells  []Cell
	width  int
	height int

	// Floor makes the bottom edge solid. When false, particles falling past
	// the bottom row are removed.
	Floor bool

	parity bool
	ticks  uint64

	rng      *core.RNG
	params   Params
	snapshot *core.ByteGrid
}

// New returns a floored board of the given size with every cell Empty.
func New(width, height int) *Board {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	b := &Board{
		cells:    make([]Cell, width*height),
		width:    width,
		height:   height,
		Floor:    true,
		parity:   true,
		rng:      core.NewRNG(DefaultSeed),
		params:   DefaultParams(),
		snapshot: core.NewByteGrid(width, height),
	}
	b.Reset()
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// Ticks returns how many sweeps have completed since creation.
func (b *Board) Ticks() uint64 { return b.ticks }

// Params returns the rule tuning in use.
func (b *Board) Params() Params { return b.params }

// SetParams replaces the rule tuning. Out-of-range values are clamped.
func (b *Board) SetParams(p Params) {
	p.normalize()
	b.params = p
}

// Seed restarts the board's random source.
func (b *Board) Seed(seed int64) { b.rng.Reseed(seed) }

// Reset reinitializes every cell to Empty in place.
func (b *Board) Reset() {
	empty := b.fresh(Empty)
	for i := range b.cells {
		b.cells[i] = empty
	}
}

// IndexOf returns the row-major index of (x, y). Coordinates outside the
// board are a programming error.
func (b *Board) IndexOf(x, y int) int {
	if !b.InBounds(x, y) {
		panic(fmt.Sprintf("sand: coordinate (%d,%d) outside %dx%d board", x, y, b.width, b.height))
	}
	return y*b.width + x
}

// CoordsOf is the inverse of IndexOf.
func (b *Board) CoordsOf(index int) (int, int) {
	return index % b.width, index / b.width
}

// InBounds reports whether (x, y) addresses a cell. Negative coordinates are
// accepted and reported as outside.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Relative returns the index offset by (dx, dy) from index, or false when
// that position lies outside the board.
func (b *Board) Relative(index, dx, dy int) (int, bool) {
	x, y := b.CoordsOf(index)
	x += dx
	y += dy
	if !b.InBounds(x, y) {
		return 0, false
	}
	return y*b.width + x, true
}

// Cell returns a copy of the cell at (x, y). Positions outside the board
// report ScreenEdge.
func (b *Board) Cell(x, y int) Cell {
	if !b.InBounds(x, y) {
		return NewCell(ScreenEdge)
	}
	return b.cells[y*b.width+x]
}

// Neighborhood returns the 3x3 block centred on (x, y), indexed [row][col].
// Positions outside the board hold ScreenEdge. A centre outside the board
// yields an all-Empty block.
func (b *Board) Neighborhood(x, y int) [3][3]Cell {
	var out [3][3]Cell
	if !b.InBounds(x, y) {
		empty := NewCell(Empty)
		for row := range out {
			for col := range out[row] {
				out[row][col] = empty
			}
		}
		return out
	}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out[row][col] = b.Cell(x+col-1, y+row-1)
		}
	}
	return out
}

// GranuleCount returns the number of non-Empty cells.
func (b *Board) GranuleCount() int {
	count := 0
	for i := range b.cells {
		if b.cells[i].Material != Empty {
			count++
		}
	}
	return count
}

// Census counts cells per material.
func (b *Board) Census() map[Material]int {
	out := make(map[Material]int)
	for i := range b.cells {
		out[b.cells[i].Material]++
	}
	return out
}

// AddGranules overwrites every in-bounds cell strictly closer than radius to
// (x, y) with a fresh cell of material m, and returns how many of those cells
// were Empty beforehand. The centre cell is always painted, so radius 0 and 1
// both place a single granule. ScreenEdge is never placed.
func (b *Board) AddGranules(x, y, radius int, m Material) int {
	if m == ScreenEdge || radius < 0 {
		return 0
	}
	added := 0
	centre := mgl64.Vec2{float64(x), float64(y)}
	for dy := max(-radius, -y); dy <= min(radius, b.height-1-y); dy++ {
		for dx := max(-radius, -x); dx <= min(radius, b.width-1-x); dx++ {
			nx, ny := x+dx, y+dy
			if dx != 0 || dy != 0 {
				p := mgl64.Vec2{float64(nx), float64(ny)}
				if p.Sub(centre).Len() >= float64(radius) {
					continue
				}
			}
			idx := ny*b.width + nx
			if b.cells[idx].IsEmpty() {
				added++
			}
			b.cells[idx] = b.fresh(m)
		}
	}
	return added
}

// OutputSnapshot copies the material of every cell into a row-major buffer
// owned by the board. The buffer is overwritten by the next call.
func (b *Board) OutputSnapshot() []uint8 {
	out := b.snapshot.Cells()
	for i := range b.cells {
		out[i] = uint8(b.cells[i].Material)
	}
	return out
}

// Tick performs one serpentine sweep over every cell, dispatching each
// non-Empty cell that has not yet been handled this sweep to its rule.
func (b *Board) Tick() {
	n := len(b.cells)
	for i := 0; i < n; i++ {
		idx := b.sweepIndex(i)
		c := &b.cells[idx]
		if c.IsEmpty() || c.Updated == b.parity {
			continue
		}
		c.Updated = b.parity
		b.update(idx)
	}
	b.parity = !b.parity
	b.ticks++
}

// sweepIndex maps the i-th step of a sweep to a cell index. Even rows run
// right to left so lateral movement has no consistent drift.
func (b *Board) sweepIndex(i int) int {
	row := i / b.width
	if row%2 != 0 {
		return i
	}
	x := i % b.width
	return row*b.width + (b.width - 1 - x)
}

// fresh returns a new cell of m that is eligible for the next sweep.
func (b *Board) fresh(m Material) Cell {
	c := NewCellRand(m, b.rng)
	c.Updated = !b.parity
	return c
}

// set writes c at index and marks it handled for the current sweep.
func (b *Board) set(index int, c Cell) {
	c.Updated = b.parity
	b.cells[index] = c
}

// swap exchanges two cells and marks both handled. from is always the cell
// being dispatched, so its slot has already been visited this sweep.
func (b *Board) swap(from, to int) {
	b.cells[from], b.cells[to] = b.cells[to], b.cells[from]
	b.cells[from].Updated = b.parity
	b.cells[to].Updated = b.parity
}

// remove clears index to Empty.
func (b *Board) remove(index int) {
	b.cells[index] = b.fresh(Empty)
}

func (b *Board) materialAt(index int) Material { return b.cells[index].Material }
