package island

import (
	"strconv"

	"isle-gen/internal/core"
)

func (w *World) Parameters() core.ParameterSnapshot {
	sp := w.cfg.Shape
	groups := []core.ParameterGroup{
		{
			Name: "Grids",
			Params: []core.Parameter{
				int64Param("seed", "Seed", w.seed),
				intParam("res", "Heightmap resolution", w.cfg.Resolution),
				intParam("hole_res", "Hole resolution", w.cfg.HoleResolution),
				intParam("tex_w", "Texture width", w.cfg.TextureWidth),
				intParam("tex_h", "Texture height", w.cfg.TextureHeight),
				intParam("blend_res", "Blend resolution", w.cfg.BlendResolution),
			},
		},
		{
			Name: "Noise",
			Params: []core.Parameter{
				floatParam("amplitude", "Amplitude", sp.Amplitude),
				floatParam("frequency", "Frequency", sp.Frequency),
				intParam("octaves", "Octaves", sp.Octaves),
				floatParam("persistence", "Persistence", sp.Persistence),
				floatParam("lacunarity", "Lacunarity", sp.Lacunarity),
			},
		},
		{
			Name: "Shoreline",
			Params: []core.Parameter{
				floatParam("radius_variance", "Radius variance", sp.RadiusVariance),
				floatParam("shoreline_length", "Shoreline length", sp.ShorelineLength),
				floatParam("min_height_above_sea", "Min height above sea", sp.MinHeightAboveSea),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the tunables the HUD may adjust live. Changing any
// of them revalidates the shape and restarts generation from the current
// seed.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "radius_variance", Label: "Radius variance", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1},
		{Key: "shoreline_length", Label: "Shoreline length", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1},
		{Key: "min_height_above_sea", Label: "Min height above sea", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1},
		{Key: "persistence", Label: "Persistence", Type: core.ParamTypeFloat, Step: 0.05, Min: 0.05, Max: 1},
		{Key: "octaves", Label: "Octaves", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 10},
	}
}

// SetFloatParameter updates a float shape parameter; the change is rejected
// when the resulting shape fails validation.
func (w *World) SetFloatParameter(key string, value float64) bool {
	sp := w.cfg.Shape
	switch key {
	case "radius_variance":
		sp.RadiusVariance = value
	case "shoreline_length":
		sp.ShorelineLength = value
	case "min_height_above_sea":
		sp.MinHeightAboveSea = value
	case "persistence":
		sp.Persistence = value
	case "amplitude":
		sp.Amplitude = value
	case "frequency":
		sp.Frequency = value
	case "lacunarity":
		sp.Lacunarity = value
	default:
		return false
	}
	if sp.Validate() != nil {
		return false
	}
	w.cfg.Shape = sp
	w.Reset(w.seed)
	return true
}

// SetIntParameter updates an integer shape parameter with the same
// validation rules as SetFloatParameter.
func (w *World) SetIntParameter(key string, value int) bool {
	if key != "octaves" {
		return false
	}
	sp := w.cfg.Shape
	sp.Octaves = value
	if sp.Validate() != nil {
		return false
	}
	w.cfg.Shape = sp
	w.Reset(w.seed)
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
