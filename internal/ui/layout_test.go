package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsLines(t *testing.T) {
	lines := Stats{
		FPS:       59.94,
		TPS:       60,
		Ticks:     12,
		Granules:  300,
		Added:     4,
		PenSize:   4,
		Material:  "water",
		Floor:     true,
		FrameMode: true,
	}.Lines()
	require.Len(t, lines, statLines)
	assert.Equal(t, "FPS 59.9  TPS 60.0", lines[0])
	assert.Equal(t, "Tick 12", lines[1])
	assert.Equal(t, "Granules 300 (+4)", lines[2])
	assert.Equal(t, "Pen water r=4", lines[3])
	assert.Equal(t, "Floor on", lines[4])
	assert.Equal(t, "Mode frame by frame", lines[5])

	lines = Stats{Added: -3}.Lines()
	assert.Equal(t, "Granules 0 (+0)", lines[2])
	assert.Equal(t, "Floor off", lines[4])
	assert.Equal(t, "Mode running", lines[5])
}

func TestSwatchAt(t *testing.T) {
	r := swatchRect(2)
	assert.Equal(t, 2, swatchAt(r.Min.X, r.Min.Y, 7))
	assert.Equal(t, 2, swatchAt(r.Max.X-1, r.Max.Y-1, 7))
	assert.Equal(t, -1, swatchAt(r.Max.X, r.Min.Y, 7), "gap between swatches")
	assert.Equal(t, -1, swatchAt(r.Min.X, r.Min.Y, 2), "index past count")
	assert.Equal(t, -1, swatchAt(0, 0, 7))
}

func TestControlRects(t *testing.T) {
	top0, minus0, plus0 := controlRects(0, 240)
	top1, _, _ := controlRects(1, 240)
	assert.Equal(t, controlsTop, top0)
	assert.Equal(t, lineHeight, top1-top0)
	assert.Equal(t, 240-panelPadding, plus0.Max.X)
	assert.Equal(t, buttonGap, plus0.Min.X-minus0.Max.X)
	assert.Equal(t, buttonSize, plus0.Dy())
	assert.Greater(t, controlsTop, swatchRect(0).Max.Y)
}
