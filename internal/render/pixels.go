package render

import (
	"image"
	"image/color"
)

// FillPaletteRGBA converts material bytes into RGBA pixels in buf using
// palette. Values past the end of the palette are drawn with fallback.
func FillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA, fallback color.RGBA) {
	for i, c := range cells {
		col := fallback
		if int(c) < len(palette) {
			col = palette[c]
		}
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Image renders a w*h material buffer into a new RGBA image, one pixel per
// cell. It returns nil when cells does not match the dimensions.
func Image(cells []uint8, w, h int, palette []color.RGBA, fallback color.RGBA) *image.RGBA {
	if w <= 0 || h <= 0 || len(cells) != w*h {
		return nil
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	FillPaletteRGBA(img.Pix, cells, palette, fallback)
	return img
}

// CellAt maps a screen position to grid coordinates for a view drawn at
// scale with its origin at the top-left corner.
func CellAt(px, py, scale int) (int, int) {
	if scale <= 0 {
		scale = 1
	}
	return floorDiv(px, scale), floorDiv(py, scale)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
