// Package pen holds the brush state used to paint materials onto a sand
// board: radius bounds, the selectable material palette and stroke
// interpolation between mouse samples.
package pen

import (
	"math"

	"falling-sand/internal/sims/sand"

	"github.com/go-gl/mathgl/mgl64"
)

// Materials is the selectable palette in display order.
var Materials = []sand.Material{
	sand.Empty,
	sand.Sand,
	sand.Dirt,
	sand.Water,
	sand.Seed,
	sand.Egg,
	sand.Wall,
}

// Pen is the brush. The zero value is not usable; call New.
type Pen struct {
	size     int
	minSize  int
	maxSize  int
	selected int

	last    mgl64.Vec2
	drawing bool
}

// New returns a pen of the given size clamped to [minSize, maxSize] with
// start selected. Materials outside the palette select the first entry.
func New(size, minSize, maxSize int, start sand.Material) *Pen {
	if minSize < 0 {
		minSize = 0
	}
	if maxSize < minSize {
		maxSize = minSize
	}
	p := &Pen{minSize: minSize, maxSize: maxSize}
	p.size = p.clamp(size)
	p.Select(start)
	return p
}

func (p *Pen) clamp(size int) int {
	return max(p.minSize, min(size, p.maxSize))
}

// Size returns the configured brush size.
func (p *Pen) Size() int { return p.size }

// MinSize returns the smallest allowed size.
func (p *Pen) MinSize() int { return p.minSize }

// MaxSize returns the largest allowed size.
func (p *Pen) MaxSize() int { return p.maxSize }

// Radius is the radius actually painted. Seeds are always placed one at a
// time.
func (p *Pen) Radius() int {
	if p.Material() == sand.Seed {
		return 1
	}
	return p.size
}

// Grow enlarges the brush by one, up to MaxSize.
func (p *Pen) Grow() { p.size = p.clamp(p.size + 1) }

// Shrink reduces the brush by one, down to MinSize.
func (p *Pen) Shrink() { p.size = p.clamp(p.size - 1) }

// Material returns the selected material.
func (p *Pen) Material() sand.Material { return Materials[p.selected] }

// Index returns the palette position of the selected material.
func (p *Pen) Index() int { return p.selected }

// Next selects the following palette entry, wrapping to the first.
func (p *Pen) Next() { p.selected = (p.selected + 1) % len(Materials) }

// Prev selects the preceding palette entry, wrapping to the last.
func (p *Pen) Prev() { p.selected = (p.selected - 1 + len(Materials)) % len(Materials) }

// Select picks m if it is in the palette. Otherwise the selection is
// unchanged and false is returned.
func (p *Pen) Select(m sand.Material) bool {
	for i, candidate := range Materials {
		if candidate == m {
			p.selected = i
			return true
		}
	}
	return false
}

// SelectIndex picks the palette entry at i.
func (p *Pen) SelectIndex(i int) bool {
	if i < 0 || i >= len(Materials) {
		return false
	}
	p.selected = i
	return true
}

// Drawing reports whether a stroke is in progress.
func (p *Pen) Drawing() bool { return p.drawing }

// Stroke paints the selected material at (x, y). While a stroke is in
// progress the segment from the previous sample is filled too, so fast
// mouse movement leaves no gaps. It returns how many granules were added.
func (p *Pen) Stroke(b *sand.Board, x, y int) int {
	to := mgl64.Vec2{float64(x), float64(y)}
	if !p.drawing {
		p.drawing = true
		p.last = to
		return b.AddGranules(x, y, p.Radius(), p.Material())
	}

	added := 0
	delta := to.Sub(p.last)
	spacing := math.Max(1, float64(p.Radius())/2)
	steps := int(math.Ceil(delta.Len() / spacing))
	for i := 1; i <= steps; i++ {
		pt := p.last.Add(delta.Mul(float64(i) / float64(steps)))
		added += b.AddGranules(int(math.Round(pt.X())), int(math.Round(pt.Y())), p.Radius(), p.Material())
	}
	if steps == 0 {
		added += b.AddGranules(x, y, p.Radius(), p.Material())
	}
	p.last = to
	return added
}

// Lift ends the current stroke.
func (p *Pen) Lift() { p.drawing = false }
