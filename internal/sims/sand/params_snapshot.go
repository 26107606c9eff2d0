package sand

import "falling-sand/internal/core"

func (w *World) Parameters() core.ParameterSnapshot {
	params := w.board.Params()
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Width", w.cfg.Width),
				core.IntParam("h", "Height", w.cfg.Height),
				core.Int64Param("seed", "Seed", w.cfg.Seed),
				core.BoolParam("floor", "Floor", w.board.Floor),
			},
		},
		{
			Name: "Liquids",
			Params: []core.Parameter{
				core.IntParam("dispersion", "Dispersion", params.Dispersion),
			},
		},
		{
			Name: "Plants",
			Params: []core.Parameter{
				core.FloatParam("grass_up_chance", "Grass up chance", params.GrassUpChance),
				core.FloatParam("grass_left_chance", "Grass left chance", params.GrassLeftChance),
				core.FloatParam("kelp_chain_stop_chance", "Kelp chain stop", params.KelpChainStopChance),
				core.IntParam("kelp_penalty_min", "Kelp penalty min", params.KelpPenaltyMin),
				core.IntParam("kelp_penalty_max", "Kelp penalty max", params.KelpPenaltyMax),
			},
		},
		{
			Name: "Fauna",
			Params: []core.Parameter{
				core.FloatParam("hatch_chance", "Hatch chance", params.HatchChance),
				core.IntParam("hatch_depth", "Hatch depth", params.HatchDepth),
				core.FloatParam("minnow_rise_chance", "Minnow rise chance", params.MinnowRiseChance),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "floor", Label: "Floor", Type: core.ParamTypeBool},
		{Key: "dispersion", Label: "Dispersion", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 32, HasMin: true, HasMax: true},
		{Key: "grass_up_chance", Label: "Grass up", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "grass_left_chance", Label: "Grass left", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "kelp_chain_stop_chance", Label: "Kelp stop", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "hatch_chance", Label: "Hatch chance", Type: core.ParamTypeFloat, Step: 0.005, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "hatch_depth", Label: "Hatch depth", Type: core.ParamTypeInt, Step: 1, Min: 7, Max: 255, HasMin: true, HasMax: true},
		{Key: "minnow_rise_chance", Label: "Minnow rise", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer tunable. Values are clamped to the
// tunable's valid range.
func (w *World) SetIntParameter(key string, value int) bool {
	params := w.board.Params()
	switch key {
	case "dispersion":
		params.Dispersion = value
	case "kelp_penalty_min":
		params.KelpPenaltyMin = value
	case "kelp_penalty_max":
		params.KelpPenaltyMax = value
	case "hatch_depth":
		params.HatchDepth = value
	default:
		return false
	}
	w.board.SetParams(params)
	return true
}

// SetFloatParameter updates a probability tunable, clamped to [0, 1].
func (w *World) SetFloatParameter(key string, value float64) bool {
	params := w.board.Params()
	switch key {
	case "grass_up_chance":
		params.GrassUpChance = value
	case "grass_left_chance":
		params.GrassLeftChance = value
	case "kelp_chain_stop_chance":
		params.KelpChainStopChance = value
	case "hatch_chance":
		params.HatchChance = value
	case "minnow_rise_chance":
		params.MinnowRiseChance = value
	default:
		return false
	}
	w.board.SetParams(params)
	return true
}

func (w *World) SetBoolParameter(key string, value bool) bool {
	if key != "floor" {
		return false
	}
	w.board.Floor = value
	return true
}
