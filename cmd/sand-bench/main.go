// Command sand-bench runs sand scenes headlessly across worker goroutines and
// reports granule counts and tick throughput per scene and seed.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync"
	"text/tabwriter"
	"time"

	"falling-sand/internal/core"
	"falling-sand/internal/sims/sand"
)

func main() {
	steps := flag.Int("steps", 500, "ticks to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("w", 120, "board width in cells")
	height := flag.Int("h", 120, "board height in cells")
	sceneList := flag.String("scenes", "all", "comma separated scenes, or all")
	seedList := flag.String("seeds", "1,2,3", "comma separated seeds")
	floor := flag.Bool("floor", true, "solid bottom edge")
	pngDir := flag.String("png-dir", "", "write the final board of every run as a PNG into this directory")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	logger := core.NewLogger("sand-bench", *logLevel)

	scenes, err := parseScenes(*sceneList)
	if err != nil {
		logger.Fatalf("%v", err)
	}
	seeds, err := parseSeeds(*seedList)
	if err != nil {
		logger.Fatalf("%v", err)
	}
	if *workers < 1 {
		*workers = 1
	}

	base := sand.DefaultConfig()
	base.Width = *width
	base.Height = *height
	base.Floor = *floor

	all := jobsFor(scenes, seeds)
	logger.Infof("running %d scenarios (%d workers, %d steps, %dx%d)", len(all), *workers, *steps, *width, *height)

	jobs := make(chan job)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- runScenario(base, j, *steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, j := range all {
			jobs <- j
		}
		close(jobs)
	}()

	start := time.Now()
	var collected []scenarioResult
	for res := range results {
		logger.Debugf("%s seed=%d finished in %s", res.scene, res.seed, res.elapsed.Round(time.Millisecond))
		collected = append(collected, res)
	}
	sortResults(collected)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "scene\tseed\tinitial\tpeak\tfinal\tticks/s\tmaterials")
	for _, res := range collected {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%.0f\t%s\n",
			res.scene, res.seed, res.initial, res.peak, res.final, res.tps, censusSummary(res.census))
	}
	if err := tw.Flush(); err != nil {
		logger.Errorf("write table: %v", err)
	}
	logger.Infof("done in %s", time.Since(start).Round(time.Millisecond))

	if *pngDir == "" {
		return
	}
	if err := os.MkdirAll(*pngDir, 0o755); err != nil {
		logger.Fatalf("create %s: %v", *pngDir, err)
	}
	for _, res := range collected {
		path, err := writeFrame(*pngDir, res, *width, *height)
		if err != nil {
			logger.Errorf("%v", err)
			continue
		}
		logger.Debugf("wrote %s", path)
	}
}
