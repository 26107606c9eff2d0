//go:build ebiten

package ui

import (
	"image/color"

	"falling-sand/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

type inspector interface {
	Inspect(x, y int) [3][3]color.RGBA
	Describe(x, y int) string
}

// Overlay draws the brush outline and, when toggled with Tab, a magnified
// view of the 3x3 neighborhood under the cursor.
type Overlay struct {
	sim   core.Sim
	scale int
	show  bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{sim: sim, scale: scale}
}

// Update toggles the neighborhood inspector.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.show = !o.show
	}
}

// Visible reports whether the inspector is shown.
func (o *Overlay) Visible() bool { return o.show }

// Draw renders the overlay for the cell (cx, cy) under the cursor with a
// brush of the given radius.
func (o *Overlay) Draw(screen *ebiten.Image, cx, cy, radius int) {
	size := o.sim.Size()
	if cx < 0 || cy < 0 || cx >= size.W || cy >= size.H {
		return
	}
	s := float32(o.scale)
	centreX := (float32(cx) + 0.5) * s
	centreY := (float32(cy) + 0.5) * s
	r := float32(max(radius, 1)) * s
	vector.StrokeCircle(screen, centreX, centreY, r, 1, color.RGBA{R: 255, G: 255, B: 255, A: 140}, true)

	if !o.show {
		return
	}
	insp, ok := o.sim.(inspector)
	if !ok {
		return
	}
	o.drawInspector(screen, insp, cx, cy)
}

func (o *Overlay) drawInspector(screen *ebiten.Image, insp inspector, cx, cy int) {
	const (
		cellPx = 18
		margin = 8
	)
	n := insp.Inspect(cx, cy)
	side := float32(3 * cellPx)
	vector.DrawFilledRect(screen, margin-2, margin-2, side+4, side+22, color.RGBA{R: 0, G: 0, B: 0, A: 180}, false)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			x := float32(margin + col*cellPx)
			y := float32(margin + row*cellPx)
			vector.DrawFilledRect(screen, x, y, cellPx-1, cellPx-1, n[row][col], false)
		}
	}
	vector.StrokeRect(screen, margin+cellPx, margin+cellPx, cellPx-1, cellPx-1, 1, color.White, false)
	text.Draw(screen, insp.Describe(cx, cy), basicfont.Face7x13, margin, margin+int(side)+14, color.RGBA{R: 230, G: 230, B: 240, A: 255})
}
