package island

import (
	"fmt"
	"math"
	"strconv"
)

// Grid axis bounds accepted from the terrain sink. Texture axes carry the
// sink's [16, 4096] constraint; the float grids only need enough cells for
// bilinear sampling.
const (
	minTextureSize = 16
	maxTextureSize = 4096
	minResolution  = 2
	maxResolution  = 4096
)

// ShapeParams holds the noise and shoreline tunables for one island.
type ShapeParams struct {
	Amplitude         float64
	Frequency         float64
	Octaves           int
	Persistence       float64
	Lacunarity        float64
	RadiusVariance    float64
	ShorelineLength   float64
	MinHeightAboveSea float64
}

// Config controls the island generation request.
type Config struct {
	Seed int64

	Resolution      int // heightmap axis, R
	HoleResolution  int // hole mask axis, H
	TextureWidth    int // texture field axis, S
	TextureHeight   int
	BlendResolution int // blend map axis

	HalfExtentX   float64 // world tile half extents
	HalfExtentZ   float64
	VerticalScale float64

	Shape ShapeParams
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Seed:            1337,
		Resolution:      257,
		HoleResolution:  256,
		TextureWidth:    256,
		TextureHeight:   256,
		BlendResolution: 128,
		HalfExtentX:     256,
		HalfExtentZ:     256,
		VerticalScale:   64,
		Shape: ShapeParams{
			Amplitude:         0.9,
			Frequency:         2,
			Octaves:           5,
			Persistence:       0.5,
			Lacunarity:        2,
			RadiusVariance:    0.6,
			ShorelineLength:   0.5,
			MinHeightAboveSea: 0.25,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Unknown keys and unparsable values are ignored; the result still
// passes through Validate before any buffer is allocated.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	intKeys := map[string]*int{
		"res":       &c.Resolution,
		"hole_res":  &c.HoleResolution,
		"tex_w":     &c.TextureWidth,
		"tex_h":     &c.TextureHeight,
		"blend_res": &c.BlendResolution,
		"octaves":   &c.Shape.Octaves,
	}
	floatKeys := map[string]*float64{
		"half_x":               &c.HalfExtentX,
		"half_z":               &c.HalfExtentZ,
		"vertical_scale":       &c.VerticalScale,
		"amplitude":            &c.Shape.Amplitude,
		"frequency":            &c.Shape.Frequency,
		"persistence":          &c.Shape.Persistence,
		"lacunarity":           &c.Shape.Lacunarity,
		"radius_variance":      &c.Shape.RadiusVariance,
		"shoreline_length":     &c.Shape.ShorelineLength,
		"min_height_above_sea": &c.Shape.MinHeightAboveSea,
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["tex"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.TextureWidth = parsed
			c.TextureHeight = parsed
		}
	}
	for key, dst := range intKeys {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil {
				*dst = parsed
			}
		}
	}
	for key, dst := range floatKeys {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				*dst = parsed
			}
		}
	}
	return c
}

// Validate rejects the configuration before any generation state is built.
// All field constraints are enforced here, at assignment time, never during
// generation.
func (c Config) Validate() error {
	for name, v := range map[string]int{
		"resolution":       c.Resolution,
		"hole resolution":  c.HoleResolution,
		"blend resolution": c.BlendResolution,
	} {
		if v < minResolution || v > maxResolution {
			return fmt.Errorf("island: %s %d outside [%d, %d]", name, v, minResolution, maxResolution)
		}
	}
	for name, v := range map[string]int{
		"texture width":  c.TextureWidth,
		"texture height": c.TextureHeight,
	} {
		if v < minTextureSize || v > maxTextureSize {
			return fmt.Errorf("island: %s %d outside [%d, %d]", name, v, minTextureSize, maxTextureSize)
		}
	}
	for name, v := range map[string]float64{
		"half extent x":  c.HalfExtentX,
		"half extent z":  c.HalfExtentZ,
		"vertical scale": c.VerticalScale,
	} {
		if !isFinite(v) || v <= 0 {
			return fmt.Errorf("island: %s must be a positive finite number, got %v", name, v)
		}
	}
	return c.Shape.Validate()
}

// Validate enforces the shape parameter constraints.
func (p ShapeParams) Validate() error {
	for name, v := range map[string]float64{
		"amplitude":   p.Amplitude,
		"frequency":   p.Frequency,
		"persistence": p.Persistence,
		"lacunarity":  p.Lacunarity,
	} {
		if !isFinite(v) {
			return fmt.Errorf("island: %s must be finite, got %v", name, v)
		}
	}
	if p.Amplitude <= 0 || p.Amplitude > 1 {
		return fmt.Errorf("island: amplitude %v outside (0, 1]", p.Amplitude)
	}
	if p.Frequency <= 0 {
		return fmt.Errorf("island: frequency must be positive, got %v", p.Frequency)
	}
	if p.Octaves < 1 {
		return fmt.Errorf("island: octaves must be at least 1, got %d", p.Octaves)
	}
	for name, v := range map[string]float64{
		"radius variance":      p.RadiusVariance,
		"shoreline length":     p.ShorelineLength,
		"min height above sea": p.MinHeightAboveSea,
	} {
		if !isFinite(v) || v < 0 || v > 1 {
			return fmt.Errorf("island: %s %v outside [0, 1]", name, v)
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
