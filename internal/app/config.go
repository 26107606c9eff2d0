package app

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"falling-sand/internal/sims/sand"
)

// EnvPrefix prefixes the environment variables that override flags.
const EnvPrefix = "SAND_"

// Config represents the command-line parameters for the GUI.
type Config struct {
	Scene    string
	Width    int
	Height   int
	Scale    int
	TPS      int
	SimTPS   int
	Seed     int64
	Floor    bool
	HUDWidth int
	LogLevel string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Scene:    sand.SceneOcean.String(),
		Width:    200,
		Height:   200,
		Scale:    3,
		TPS:      60,
		SimTPS:   60,
		Seed:     42,
		Floor:    true,
		HUDWidth: 240,
		LogLevel: "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Scene, "scene", c.Scene, "starting scene ("+strings.Join(sand.SceneNames(), ", ")+")")
	fs.IntVar(&c.Width, "w", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "board height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.SimTPS, "sim-tps", c.SimTPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.BoolVar(&c.Floor, "floor", c.Floor, "solid bottom edge")
	fs.IntVar(&c.HUDWidth, "hud-width", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
}

// EnvName returns the environment variable consulted for a flag name.
func EnvName(flagName string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}

// ApplyEnv fills every flag of fs that was not set on the command line from
// its SAND_* environment variable. Call it after fs.Parse. Values go through
// the flag's own parser, so malformed values are reported as errors.
func ApplyEnv(fs *flag.FlagSet, lookup func(string) (string, bool)) error {
	if lookup == nil {
		return nil
	}
	explicit := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	var err error
	fs.VisitAll(func(f *flag.Flag) {
		if err != nil || explicit[f.Name] {
			return
		}
		name := EnvName(f.Name)
		v, ok := lookup(name)
		if !ok || v == "" {
			return
		}
		if setErr := fs.Set(f.Name, v); setErr != nil {
			err = fmt.Errorf("%s=%q: %w", name, v, setErr)
		}
	})
	return err
}

// Validate checks the values that cannot be clamped silently.
func (c *Config) Validate() error {
	if _, err := sand.ParseScene(c.Scene); err != nil {
		return fmt.Errorf("invalid -scene: %w", err)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid board size %dx%d", c.Width, c.Height)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("invalid -scale %d", c.Scale)
	}
	return nil
}

// SimOptions converts the config into the flag-style options accepted by
// the sim registry.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"w":     strconv.Itoa(c.Width),
		"h":     strconv.Itoa(c.Height),
		"seed":  strconv.FormatInt(c.Seed, 10),
		"floor": strconv.FormatBool(c.Floor),
		"scene": c.Scene,
	}
}
