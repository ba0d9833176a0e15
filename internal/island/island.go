// Package island synthesizes an island terrain from a 64-bit seed: a bounded
// heightmap, a sea-level hole mask, four tileable surface textures, and a
// per-texel texture blend map. Generation runs as a cooperative, step-driven
// pipeline so an external scheduler can bound how much work happens per tick.
package island

import (
	"isle-gen/internal/core"
	"isle-gen/internal/noise"
)

// Layer indices in the blend map.
const (
	LayerSand = iota
	LayerDirt
	LayerGrass
	LayerRock
	LayerCount
)

type phase struct {
	name string
	rows int
	fn   func(row int)
}

// World owns all buffers for one generation request. Reset arms the phase
// table; each Step executes one outer-loop row of the current phase, so
// buffers committed by finished phases are stable while later ones are still
// untouched. A World is single-goroutine: the seed-keyed permutation cache
// inside the gradient kernel makes concurrent cross-seed use invalid without
// external locking.
type World struct {
	cfg Config

	gradient noise.Gradient
	cellular noise.Cellular

	heights  *core.FloatGrid
	holes    *core.BoolGrid
	sand     *core.ColorGrid
	dirt     *core.ColorGrid
	grass    *core.ColorGrid
	rock     *core.ColorGrid
	blend    *core.WeightGrid
	display  []uint8
	sampler  *TerrainSampler

	seed     int64
	phases   []phase
	phaseIdx int
	row      int
}

func init() {
	core.Register("island", func(cfg map[string]string) (core.Generator, error) {
		return NewWithConfig(FromMap(cfg))
	})
}

// New returns a World with default shape parameters and the given heightmap
// resolution on both texture axes.
func New(resolution int) (*World, error) {
	cfg := DefaultConfig()
	cfg.Resolution = resolution
	return NewWithConfig(cfg)
}

// NewWithConfig validates the configuration and allocates every output
// buffer. Validation failures surface here, before any generation state
// exists.
func NewWithConfig(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w := &World{
		cfg:     cfg,
		heights: core.NewFloatGrid(cfg.Resolution, cfg.Resolution),
		holes:   core.NewBoolGrid(cfg.HoleResolution, cfg.HoleResolution),
		sand:    core.NewColorGrid(cfg.TextureWidth, cfg.TextureHeight),
		dirt:    core.NewColorGrid(cfg.TextureWidth, cfg.TextureHeight),
		grass:   core.NewColorGrid(cfg.TextureWidth, cfg.TextureHeight),
		rock:    core.NewColorGrid(cfg.TextureWidth, cfg.TextureHeight),
		blend:   core.NewWeightGrid(cfg.BlendResolution, cfg.BlendResolution, LayerCount),
		display: make([]uint8, cfg.Resolution*cfg.Resolution),
	}
	w.sampler = &TerrainSampler{
		grid:          w.heights,
		halfX:         cfg.HalfExtentX,
		halfZ:         cfg.HalfExtentZ,
		verticalScale: cfg.VerticalScale,
	}
	w.Reset(cfg.Seed)
	return w, nil
}

// Name returns the generator identifier.
func (w *World) Name() string { return "island" }

// Size reports the heightmap dimensions.
func (w *World) Size() core.Size {
	return core.Size{W: w.cfg.Resolution, H: w.cfg.Resolution}
}

// Cells exposes the display buffer for the previewer.
func (w *World) Cells() []uint8 { return w.display }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Seed returns the seed the current buffers were generated from.
func (w *World) Seed() int64 { return w.seed }

// Heightmap exposes the committed height grid. Values lie in [0, amplitude].
func (w *World) Heightmap() *core.FloatGrid { return w.heights }

// Holes exposes the committed hole mask.
func (w *World) Holes() *core.BoolGrid { return w.holes }

// Sand exposes the committed sand texture field.
func (w *World) Sand() *core.ColorGrid { return w.sand }

// Dirt exposes the committed dirt texture field.
func (w *World) Dirt() *core.ColorGrid { return w.dirt }

// Grass exposes the committed grass texture field.
func (w *World) Grass() *core.ColorGrid { return w.grass }

// Rock exposes the committed rock texture field.
func (w *World) Rock() *core.ColorGrid { return w.rock }

// Blend exposes the committed blend map.
func (w *World) Blend() *core.WeightGrid { return w.blend }

// Terrain exposes the height and steepness sampler over the committed
// heightmap.
func (w *World) Terrain() *TerrainSampler { return w.sampler }

// SeaLevel reports the reference sea-surface plane handed to the terrain
// sink alongside the buffers.
func (w *World) SeaLevel() float64 {
	return w.minLandHeight() / 4 * w.cfg.VerticalScale
}

// Phase names the phase the next Step will work on, or "done".
func (w *World) Phase() string {
	if w.phaseIdx >= len(w.phases) {
		return "done"
	}
	return w.phases[w.phaseIdx].name
}

// Done reports whether the pipeline has drained.
func (w *World) Done() bool { return w.phaseIdx >= len(w.phases) }

// Reset clears every buffer and arms the phase table for the given seed.
// A zero seed falls back to the configured one.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.seed = seed

	w.heights.Clear()
	w.holes.Clear()
	w.sand.Clear()
	w.dirt.Clear()
	w.grass.Clear()
	w.rock.Clear()
	w.blend.Clear()
	for i := range w.display {
		w.display[i] = 0
	}

	w.phases = []phase{
		{name: "heightmap", rows: w.heights.H, fn: w.heightmapRow},
		{name: "holes", rows: w.holes.H, fn: w.holeRow},
		{name: "sand", rows: w.sand.H, fn: w.sandRow},
		{name: "dirt", rows: w.dirt.H, fn: w.dirtRow},
		{name: "grass", rows: w.grass.H, fn: w.grassRow},
		{name: "rock", rows: w.rock.H, fn: w.rockRow},
		{name: "blend", rows: w.blend.H, fn: w.blendRow},
	}
	w.phaseIdx = 0
	w.row = 0
}

// Step executes one outer-loop iteration of the current phase and reports
// whether work remains. Stopping between steps leaves earlier buffers
// committed and later ones untouched.
func (w *World) Step() bool {
	if w.phaseIdx >= len(w.phases) {
		return false
	}
	p := &w.phases[w.phaseIdx]
	p.fn(w.row)
	w.row++
	if w.row >= p.rows {
		w.row = 0
		w.phaseIdx++
	}
	return w.phaseIdx < len(w.phases)
}

// Generate drains the whole pipeline synchronously.
func (w *World) Generate() {
	for w.Step() {
	}
}

// LandFraction reports the share of heightmap cells above sea level.
func (w *World) LandFraction() float64 {
	cells := w.heights.Cells()
	if len(cells) == 0 {
		return 0
	}
	land := 0
	for _, h := range cells {
		if h > 0 {
			land++
		}
	}
	return float64(land) / float64(len(cells))
}

// HoleFraction reports the share of hole-mask cells marked as holes.
func (w *World) HoleFraction() float64 {
	cells := w.holes.Cells()
	if len(cells) == 0 {
		return 0
	}
	holes := 0
	for _, h := range cells {
		if h {
			holes++
		}
	}
	return float64(holes) / float64(len(cells))
}

func (w *World) minLandHeight() float64 {
	return w.cfg.Shape.Amplitude * w.cfg.Shape.MinHeightAboveSea
}
