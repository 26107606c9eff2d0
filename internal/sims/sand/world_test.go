package sand

import (
	"slices"
	"testing"

	"falling-sand/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorldIsRegistered(t *testing.T) {
	factory, ok := core.Sims()["sand"]
	require.True(t, ok)
	sim := factory(map[string]string{"w": "16", "h": "12", "scene": "ocean"})
	require.NotNil(t, sim)
	assert.Equal(t, "sand", sim.Name())
	assert.Equal(t, core.Size{W: 16, H: 12}, sim.Size())
	assert.Contains(t, core.SimNames(), "sand")
}

func TestWorldResetAppliesScene(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 10
	cfg.Height = 40
	cfg.Scene = SceneOcean
	w := NewWithConfig(cfg)
	w.Reset(0)
	cells := w.Cells()
	require.Len(t, cells, 400)
	assert.Equal(t, uint8(Water), cells[0])
	assert.Equal(t, uint8(Sand), cells[len(cells)-1])
}

func TestWorldResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 24
	cfg.Height = 24
	cfg.Scene = SceneRandomOcean
	w := NewWithConfig(cfg)

	w.Reset(0)
	first := slices.Clone(w.Cells())
	w.Step()
	w.Reset(0)
	assert.Equal(t, first, w.Cells())

	w.Reset(99)
	seeded := slices.Clone(w.Cells())
	w.Reset(99)
	assert.Equal(t, seeded, w.Cells())
	assert.NotEqual(t, first, seeded)
}

func TestWorldStepTicksBoard(t *testing.T) {
	w := NewWorld(8, 8)
	w.SetScene(SceneEmpty)
	w.Reset(0)
	w.Board().AddGranules(4, 0, 1, Sand)
	w.Step()
	assert.Equal(t, Sand, w.Board().Cell(4, 1).Material)
	assert.Equal(t, uint64(1), w.Board().Ticks())
}

func TestWorldParameters(t *testing.T) {
	w := NewWorld(8, 8)
	snap := w.Parameters()
	p, ok := snap.Lookup("floor")
	require.True(t, ok)
	assert.Equal(t, core.ParamTypeBool, p.Type)
	assert.Equal(t, "true", p.Value)

	p, ok = snap.Lookup("dispersion")
	require.True(t, ok)
	assert.Equal(t, "5", p.Value)

	for _, ctrl := range w.ParameterControls() {
		_, ok := snap.Lookup(ctrl.Key)
		assert.True(t, ok, "control %q has no parameter", ctrl.Key)
	}
}

func TestWorldSetters(t *testing.T) {
	w := NewWorld(8, 8)

	require.True(t, w.SetIntParameter("dispersion", 9))
	assert.Equal(t, 9, w.Board().Params().Dispersion)
	assert.False(t, w.SetIntParameter("nope", 1))

	require.True(t, w.SetFloatParameter("hatch_chance", 3))
	assert.InDelta(t, 1, w.Board().Params().HatchChance, 1e-9)
	assert.False(t, w.SetFloatParameter("dispersion", 1))

	require.True(t, w.SetBoolParameter("floor", false))
	assert.False(t, w.Board().Floor)
	assert.False(t, w.Config().Floor)
	assert.False(t, w.SetBoolParameter("hatch_chance", true))
}

func TestPalette(t *testing.T) {
	w := NewWorld(4, 4)
	palette := w.Palette()
	require.Len(t, palette, int(materialCount))
	assert.Equal(t, Background, palette[Empty])
	assert.Equal(t, rgb(0xcc, 0xcc, 0x00), palette[Sand])
	assert.Equal(t, rgb(0x00, 0xcc, 0xff), palette[Water])
	assert.Equal(t, Background, palette[Moss])
	assert.Equal(t, Background, PaletteColor(Material(250)))
	assert.Equal(t, palette[Kelp], PaletteColor(Kelp))
}

func TestInspectAndDescribe(t *testing.T) {
	w := NewWorld(4, 4)
	w.SetScene(SceneEmpty)
	w.Reset(0)
	w.Board().AddGranules(0, 0, 1, Water)

	n := w.Inspect(0, 0)
	assert.Equal(t, EdgeColor, n[0][0])
	assert.Equal(t, PaletteColor(Water), n[1][1])
	assert.Equal(t, Background, n[2][2])

	assert.Equal(t, "(0,0) water m=255 h=0 g=0", w.Describe(0, 0))
	assert.Equal(t, "(9,9) outside", w.Describe(9, 9))
}
