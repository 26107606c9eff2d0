package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"falling-sand/internal/core"
	"falling-sand/internal/render"
	"falling-sand/internal/sims/sand"
)

type job struct {
	scene sand.Scene
	seed  int64
}

type scenarioResult struct {
	job
	initial int
	final   int
	peak    int
	census  map[sand.Material]int
	elapsed time.Duration
	tps     float64
	frame   []uint8
}

// runScenario builds an independent world for j and runs it for steps ticks.
func runScenario(base sand.Config, j job, steps int) scenarioResult {
	cfg := base
	cfg.Scene = j.scene
	cfg.Seed = j.seed
	world := sand.NewWithConfig(cfg)
	world.Reset(j.seed)
	board := world.Board()

	res := scenarioResult{job: j, initial: board.GranuleCount()}
	res.peak = res.initial
	sw := core.NewStopwatch(0)
	for i := 0; i < steps; i++ {
		world.Step()
		if n := board.GranuleCount(); n > res.peak {
			res.peak = n
		}
	}
	res.elapsed = sw.Lap()
	if res.elapsed > 0 {
		res.tps = float64(steps) / res.elapsed.Seconds()
	}
	res.final = board.GranuleCount()
	res.census = board.Census()
	res.frame = append([]uint8(nil), world.Cells()...)
	return res
}

func parseScenes(list string) ([]sand.Scene, error) {
	list = strings.TrimSpace(list)
	if list == "" || list == "all" {
		names := sand.SceneNames()
		out := make([]sand.Scene, 0, len(names))
		for _, name := range names {
			s, _ := sand.ParseScene(name)
			out = append(out, s)
		}
		return out, nil
	}
	var out []sand.Scene
	for _, name := range strings.Split(list, ",") {
		s, err := sand.ParseScene(name)
		if err != nil {
			return nil, fmt.Errorf("parse -scenes: %w", err)
		}
		out = append(out, s)
	}
	return out, nil
}

func parseSeeds(list string) ([]int64, error) {
	var out []int64
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		seed, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse -seeds %q: %w", field, err)
		}
		out = append(out, seed)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("parse -seeds: no seeds in %q", list)
	}
	return out, nil
}

func jobsFor(scenes []sand.Scene, seeds []int64) []job {
	out := make([]job, 0, len(scenes)*len(seeds))
	for _, s := range scenes {
		for _, seed := range seeds {
			out = append(out, job{scene: s, seed: seed})
		}
	}
	return out
}

func sortResults(all []scenarioResult) {
	sort.Slice(all, func(i, j int) bool {
		if all[i].scene != all[j].scene {
			return all[i].scene < all[j].scene
		}
		return all[i].seed < all[j].seed
	})
}

// censusSummary lists the non-empty materials present, most common first.
func censusSummary(census map[sand.Material]int) string {
	type entry struct {
		m sand.Material
		n int
	}
	var entries []entry
	for m, n := range census {
		if m != sand.Empty && n > 0 {
			entries = append(entries, entry{m, n})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].n != entries[j].n {
			return entries[i].n > entries[j].n
		}
		return entries[i].m < entries[j].m
	})
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = fmt.Sprintf("%s=%d", e.m, e.n)
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}

// writeFrame saves the final board of res as a PNG under dir.
func writeFrame(dir string, res scenarioResult, w, h int) (string, error) {
	img := render.Image(res.frame, w, h, sand.Colors(), sand.Background)
	if img == nil {
		return "", fmt.Errorf("frame for %s/%d does not match %dx%d", res.scene, res.seed, w, h)
	}
	path := filepath.Join(dir, fmt.Sprintf("%s-%d.png", res.scene, res.seed))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create frame: %w", err)
	}
	if err := encodePNG(f, img); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// encodePNG writes img to wc and closes it. A close failure is reported
// when the encode itself succeeded.
func encodePNG(wc io.WriteCloser, img image.Image) error {
	if err := png.Encode(wc, img); err != nil {
		wc.Close()
		return fmt.Errorf("encode: %w", err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}
	return nil
}
