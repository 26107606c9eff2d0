package ui

import (
	"fmt"
	"image"
	"image/color"
)

// Stats is the per-frame readout shown at the top of the HUD.
type Stats struct {
	FPS       float64
	TPS       float64
	Ticks     uint64
	Granules  int
	// Added counts empty cells the pen filled during the last frame.
	Added     int
	PenSize   int
	Material  string
	Floor     bool
	FrameMode bool
}

// Lines formats the readout, one entry per HUD row.
func (s Stats) Lines() []string {
	mode := "running"
	if s.FrameMode {
		mode = "frame by frame"
	}
	return []string{
		fmt.Sprintf("FPS %.1f  TPS %.1f", s.FPS, s.TPS),
		fmt.Sprintf("Tick %d", s.Ticks),
		fmt.Sprintf("Granules %d (+%d)", s.Granules, max(s.Added, 0)),
		fmt.Sprintf("Pen %s r=%d", s.Material, s.PenSize),
		"Floor " + onOff(s.Floor),
		"Mode " + mode,
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// Swatch is one entry of the material selection bar.
type Swatch struct {
	Label string
	Color color.RGBA
}

// Selector is the selection state the bar reads and writes.
type Selector interface {
	Index() int
	SelectIndex(i int) bool
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36

	statLineHeight = 16
	statLines      = 6
	statsTop       = panelPadding + headerBaseline + 8

	swatchSize   = 20
	swatchGap    = 6
	selectionTop = statsTop + statLines*statLineHeight + 8

	controlsTop = selectionTop + swatchSize + 16
)

// swatchRect is the panel-relative rectangle of the i-th swatch.
func swatchRect(i int) image.Rectangle {
	x := panelPadding + i*(swatchSize+swatchGap)
	return image.Rect(x, selectionTop, x+swatchSize, selectionTop+swatchSize)
}

// swatchAt returns the swatch under the panel-relative point, or -1.
func swatchAt(px, py, count int) int {
	for i := 0; i < count; i++ {
		if pointInRect(px, py, swatchRect(i)) {
			return i
		}
	}
	return -1
}

// controlRects lays out the i-th parameter row for a panel of width.
func controlRects(i, width int) (top int, minus, plus image.Rectangle) {
	top = controlsTop + i*lineHeight
	buttonY := top + (lineHeight-buttonSize)/2
	plus = image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
	minus = image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
	return top, minus, plus
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
