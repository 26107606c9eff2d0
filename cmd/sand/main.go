//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"falling-sand/internal/app"
	"falling-sand/internal/core"
	"falling-sand/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	boot := core.NewLogger("sand", cfg.LogLevel)
	if err := app.ApplyEnv(flag.CommandLine, os.LookupEnv); err != nil {
		boot.Fatalf("environment: %v", err)
	}
	logger := core.NewLogger("sand", cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("%v", err)
	}

	factory, ok := core.Sims()["sand"]
	if !ok {
		logger.Fatalf("sand simulation is not registered")
	}
	world, ok := factory(cfg.SimOptions()).(*sand.World)
	if !ok {
		logger.Fatalf("unexpected sim type for %q", "sand")
	}

	game := app.New(world, cfg, logger)
	game.Reset(cfg.Seed)
	size := world.Size()
	logger.Infof("board %dx%d scene=%s floor=%t sim-tps=%d", size.W, size.H, cfg.Scene, cfg.Floor, cfg.SimTPS)

	ebiten.SetWindowTitle("falling sand")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+max(cfg.HUDWidth, 0), size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatalf("%v", err)
	}
}
