package sand

import (
	"fmt"
	"image/color"
)

// Background is the colour of Empty cells and of any material without its
// own entry.
var Background = color.RGBA{R: 0x09, G: 0x26, B: 0x41, A: 0xff}

// EdgeColor marks ScreenEdge positions in inspection views.
var EdgeColor = color.RGBA{R: 0x30, G: 0x30, B: 0x36, A: 0xff}

var sandPalette = buildPalette()

// Colors maps each material byte to its display colour.
func Colors() []color.RGBA { return sandPalette }

// Palette maps each material byte of Cells to its display colour.
func (w *World) Palette() []color.RGBA {
	return sandPalette
}

// PaletteColor returns the display colour for m.
func PaletteColor(m Material) color.RGBA {
	if int(m) < len(sandPalette) {
		return sandPalette[m]
	}
	return Background
}

func buildPalette() []color.RGBA {
	palette := make([]color.RGBA, materialCount)
	for i := range palette {
		palette[i] = materialColor(Material(i))
	}
	return palette
}

func materialColor(m Material) color.RGBA {
	switch m {
	case Sand:
		return rgb(0xcc, 0xcc, 0x00)
	case Water:
		return rgb(0x00, 0xcc, 0xff)
	case Wall:
		return rgb(0xaa, 0xaa, 0xaa)
	case Dirt:
		return rgb(0x80, 0x5d, 0x3c)
	case Seed:
		return rgb(0xab, 0xf7, 0xb1)
	case Grass:
		return rgb(0xff, 0xfc, 0xd3)
	case Kelp:
		return rgb(0x17, 0x35, 0x18)
	case Minnow:
		return rgb(0xff, 0x00, 0x00)
	case Egg:
		return rgb(0xe7, 0x96, 0x8b)
	default:
		return Background
	}
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Inspect returns the colours of the 3x3 neighborhood centred on (x, y).
func (w *World) Inspect(x, y int) [3][3]color.RGBA {
	var out [3][3]color.RGBA
	n := w.board.Neighborhood(x, y)
	for row := range n {
		for col := range n[row] {
			if n[row][col].Material == ScreenEdge {
				out[row][col] = EdgeColor
				continue
			}
			out[row][col] = PaletteColor(n[row][col].Material)
		}
	}
	return out
}

// Describe summarises the cell at (x, y) for the debug overlay.
func (w *World) Describe(x, y int) string {
	c := w.board.Cell(x, y)
	if c.Material == ScreenEdge {
		return fmt.Sprintf("(%d,%d) outside", x, y)
	}
	return fmt.Sprintf("(%d,%d) %s m=%d h=%d g=%d", x, y, c.Material, c.Moisture, c.Hunger, c.Growth)
}
