package sand

import "falling-sand/internal/core"

// World adapts a Board to the core.Sim contract used by the app and the
// batch runner.
type World struct {
	cfg   Config
	board *Board
}

// NewWorld returns a World with the provided dimensions using defaults.
func NewWorld(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a World configured from cfg. The board starts empty
// until Reset is called.
func NewWithConfig(cfg Config) *World {
	cfg.Params.normalize()
	b := New(cfg.Width, cfg.Height)
	cfg.Width, cfg.Height = b.Width(), b.Height()
	b.Floor = cfg.Floor
	b.SetParams(cfg.Params)
	b.Seed(cfg.Seed)
	return &World{cfg: cfg, board: b}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cfg.Width, H: w.cfg.Height} }

// Board exposes the underlying board for painting and inspection.
func (w *World) Board() *Board { return w.board }

// Config returns the active configuration, including any HUD edits.
func (w *World) Config() Config {
	cfg := w.cfg
	cfg.Floor = w.board.Floor
	cfg.Params = w.board.Params()
	return cfg
}

// Scene returns the scene applied on Reset.
func (w *World) Scene() Scene { return w.cfg.Scene }

// SetScene changes the scene applied by the next Reset.
func (w *World) SetScene(s Scene) { w.cfg.Scene = s }

// Reset reseeds the board and repaints the configured scene. A zero seed
// falls back to the configured one.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.board.Seed(effective)
	w.board.Fill(w.cfg.Scene)
}

// Step advances the board by one tick.
func (w *World) Step() { w.board.Tick() }

// Cells returns the current material snapshot.
func (w *World) Cells() []uint8 { return w.board.OutputSnapshot() }

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
