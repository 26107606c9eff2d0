package sand

import "strconv"

// Params holds the rule tunables.
type Params struct {
	// Dispersion is how far liquids look sideways for an opening.
	Dispersion int

	// GrassUpChance and GrassLeftChance weight which candidate Grass and
	// Kelp try first. The remainder goes to up-right.
	GrassUpChance   float64
	GrassLeftChance float64

	KelpChainStopChance float64
	KelpPenaltyMin      int
	KelpPenaltyMax      int

	HatchChance float64
	HatchDepth  int

	MinnowRiseChance float64
}

// DefaultParams returns the standard rule tuning.
func DefaultParams() Params {
	return Params{
		Dispersion:          5,
		GrassUpChance:       0.8,
		GrassLeftChance:     0.1,
		KelpChainStopChance: 0.25,
		KelpPenaltyMin:      1,
		KelpPenaltyMax:      3,
		HatchChance:         1.0 / 35.0,
		HatchDepth:          20,
		MinnowRiseChance:    0.3,
	}
}

func (p *Params) normalize() {
	if p.Dispersion < 1 {
		p.Dispersion = 1
	}
	p.GrassUpChance = clamp01(p.GrassUpChance)
	p.GrassLeftChance = clamp01(p.GrassLeftChance)
	if p.GrassUpChance+p.GrassLeftChance > 1 {
		p.GrassLeftChance = 1 - p.GrassUpChance
	}
	p.KelpChainStopChance = clamp01(p.KelpChainStopChance)
	if p.KelpPenaltyMin < 0 {
		p.KelpPenaltyMin = 0
	}
	if p.KelpPenaltyMax < p.KelpPenaltyMin {
		p.KelpPenaltyMax = p.KelpPenaltyMin
	}
	p.HatchChance = clamp01(p.HatchChance)
	if p.HatchDepth < 7 {
		// Minnow moisture is drawn from [3, depth-3).
		p.HatchDepth = 7
	}
	p.MinnowRiseChance = clamp01(p.MinnowRiseChance)
}

// Config controls the sand world dimensions, boundary and starting scene.
type Config struct {
	Width  int
	Height int

	Seed  int64
	Floor bool
	Scene Scene

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  200,
		Height: 200,
		Seed:   42,
		Floor:  true,
		Scene:  SceneOcean,
		Params: DefaultParams(),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Malformed values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["floor"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Floor = parsed
		}
	}
	if v, ok := cfg["scene"]; ok {
		if parsed, err := ParseScene(v); err == nil {
			c.Scene = parsed
		}
	}
	if v, ok := cfg["dispersion"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.Dispersion = parsed
		}
	}
	if v, ok := cfg["grass_up_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.GrassUpChance = parsed
		}
	}
	if v, ok := cfg["grass_left_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.GrassLeftChance = parsed
		}
	}
	if v, ok := cfg["kelp_chain_stop_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.KelpChainStopChance = parsed
		}
	}
	if v, ok := cfg["kelp_penalty_min"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.KelpPenaltyMin = parsed
		}
	}
	if v, ok := cfg["kelp_penalty_max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.KelpPenaltyMax = parsed
		}
	}
	if v, ok := cfg["hatch_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.HatchChance = parsed
		}
	}
	if v, ok := cfg["hatch_depth"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.HatchDepth = parsed
		}
	}
	if v, ok := cfg["minnow_rise_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.MinnowRiseChance = parsed
		}
	}
	c.Params.normalize()
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
