//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads material snapshots into a single image and draws it
// scaled onto the screen.
type GridPainter struct {
	w, h     int
	img      *ebiten.Image
	buf      []byte
	palette  []color.RGBA
	fallback color.RGBA
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, palette []color.RGBA, fallback color.RGBA) *GridPainter {
	gp := &GridPainter{
		w:        w,
		h:        h,
		buf:      make([]byte, 4*w*h),
		palette:  palette,
		fallback: fallback,
	}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads cells into the painter image and draws it onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	FillPaletteRGBA(gp.buf, cells, gp.palette, gp.fallback)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
