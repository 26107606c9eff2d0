//go:build ebiten

package app

import (
	"falling-sand/internal/core"
	"falling-sand/internal/pen"
	"falling-sand/internal/render"
	"falling-sand/internal/sims/sand"
	"falling-sand/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a sand world to the ebiten.Game interface.
type Game struct {
	world   *sand.World
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	pen     *pen.Pen
	log     core.Logger

	ticker *core.FixedStep
	frames *core.Stopwatch
	ticks  *core.Stopwatch

	scale     int
	hudWidth  int
	seed      int64
	frameMode bool
	advance   bool
	added     int
}

// New constructs a Game for the provided world.
func New(world *sand.World, cfg *Config, logger core.Logger) *Game {
	if logger == nil {
		logger = core.NopLogger{}
	}
	size := world.Size()
	p := pen.New(4, 1, 20, sand.Sand)
	swatches := make([]ui.Swatch, len(pen.Materials))
	for i, m := range pen.Materials {
		swatches[i] = ui.Swatch{Label: m.String(), Color: sand.PaletteColor(m)}
	}
	return &Game{
		world:    world,
		painter:  render.NewGridPainter(size.W, size.H, world.Palette(), sand.Background),
		overlay:  ui.NewOverlay(world, cfg.Scale),
		hud:      ui.NewHUD(world, cfg.HUDWidth, swatches, p),
		pen:      p,
		log:      logger,
		ticker:   core.NewFixedStep(cfg.SimTPS),
		frames:   core.NewStopwatch(0.9),
		ticks:    core.NewStopwatch(0.9),
		scale:    cfg.Scale,
		hudWidth: max(cfg.HUDWidth, 0),
		seed:     cfg.Seed,
	}
}

// Reset repaints the configured scene with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.advance = false
	g.log.Infof("reset scene=%s seed=%d", g.world.Scene(), seed)
}

var materialKeys = []struct {
	key ebiten.Key
	m   sand.Material
}{
	{ebiten.KeyDigit1, sand.Sand},
	{ebiten.KeyDigit2, sand.Water},
	{ebiten.KeyDigit3, sand.Egg},
	{ebiten.KeyDigit4, sand.Empty},
	{ebiten.KeyDigit5, sand.Seed},
}

func anyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleKeys()
	g.overlay.Update()

	board := g.world.Board()

	viewW := g.world.Size().W * g.scale
	consumed := g.hud.Update(viewW, g.stats(board.GranuleCount()))
	mx, my := ebiten.CursorPosition()
	g.added = 0
	if !consumed && mx < viewW && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		cx, cy := render.CellAt(mx, my, g.scale)
		g.added = g.pen.Stroke(board, cx, cy)
	} else {
		g.pen.Lift()
	}

	if g.frameMode {
		if g.advance {
			g.step()
			g.advance = false
		}
	} else if g.ticker.ShouldStep() {
		g.step()
	}
	return nil
}

func (g *Game) handleKeys() {
	for _, mk := range materialKeys {
		if inpututil.IsKeyJustPressed(mk.key) {
			g.pen.Select(mk.m)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.pen.Next()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.pen.Prev()
	}
	if anyJustPressed(ebiten.KeyArrowUp, ebiten.KeyW) {
		g.pen.Grow()
	}
	if anyJustPressed(ebiten.KeyArrowDown, ebiten.KeyS) {
		g.pen.Shrink()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		board := g.world.Board()
		board.Floor = !board.Floor
		g.log.Debugf("floor=%t", board.Floor)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.frameMode = !g.frameMode
		g.log.Debugf("frame mode=%t", g.frameMode)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		g.advance = true
	}
}

func (g *Game) step() {
	g.world.Step()
	g.ticks.Lap()
}

func (g *Game) stats(granules int) ui.Stats {
	return ui.Stats{
		FPS:       g.frames.FPS(),
		TPS:       g.ticks.FPS(),
		Ticks:     g.world.Board().Ticks(),
		Granules:  granules,
		Added:     g.added,
		PenSize:   g.pen.Radius(),
		Material:  g.pen.Material().String(),
		Floor:     g.world.Board().Floor,
		FrameMode: g.frameMode,
	}
}

// Draw renders the board, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.frames.Lap()
	g.painter.Blit(screen, g.world.Cells(), g.scale)
	mx, my := ebiten.CursorPosition()
	cx, cy := render.CellAt(mx, my, g.scale)
	g.overlay.Draw(screen, cx, cy, g.pen.Radius())
	g.hud.Draw(screen, g.world.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
