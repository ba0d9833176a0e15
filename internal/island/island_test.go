package island

import (
	"image/color"
	"slices"
	"testing"

	"isle-gen/internal/core"
)

func TestGenerateDeterministic(t *testing.T) {
	a := generatedWorld(t)
	b := generatedWorld(t)

	if !slices.Equal(a.Heightmap().Cells(), b.Heightmap().Cells()) {
		t.Error("heightmaps differ")
	}
	if !slices.Equal(a.Holes().Cells(), b.Holes().Cells()) {
		t.Error("hole masks differ")
	}
	if !slices.Equal(a.Sand().Cells(), b.Sand().Cells()) {
		t.Error("sand textures differ")
	}
	if !slices.Equal(a.Blend().Cells(), b.Blend().Cells()) {
		t.Error("blend maps differ")
	}
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Error("display buffers differ")
	}
}

func TestResetRestoresDeterminism(t *testing.T) {
	w := generatedWorld(t)
	heights := slices.Clone(w.Heightmap().Cells())
	blend := slices.Clone(w.Blend().Cells())

	// Scribble over committed buffers, then regenerate from the same seed.
	cells := w.Heightmap().Cells()
	for i := range cells {
		cells[i] = -1
	}
	w.Reset(w.Seed())
	w.Generate()

	if !slices.Equal(w.Heightmap().Cells(), heights) {
		t.Error("heightmap not restored after reset")
	}
	if !slices.Equal(w.Blend().Cells(), blend) {
		t.Error("blend map not restored after reset")
	}
}

func TestResetZeroSeedUsesConfigured(t *testing.T) {
	w := generatedWorld(t)
	w.Reset(0)
	if w.Seed() != goldenConfig().Seed {
		t.Fatalf("seed after Reset(0) = %d, want %d", w.Seed(), goldenConfig().Seed)
	}
}

func TestSeedChangesOutput(t *testing.T) {
	cfg := goldenConfig()
	a, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	a.Generate()

	cfg.Seed = 43
	b, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	b.Generate()

	if slices.Equal(a.Sand().Cells(), b.Sand().Cells()) &&
		slices.Equal(a.Heightmap().Cells(), b.Heightmap().Cells()) {
		t.Fatal("different seeds produced identical worlds")
	}
}

func TestStepPhaseOrder(t *testing.T) {
	w, err := NewWithConfig(goldenConfig())
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"heightmap", "holes", "sand", "dirt", "grass", "rock", "blend", "done"}
	got := []string{w.Phase()}
	for w.Step() {
		if name := w.Phase(); name != got[len(got)-1] {
			got = append(got, name)
		}
	}
	got = append(got, w.Phase())
	if !slices.Equal(got, want) {
		t.Fatalf("phase order %v, want %v", got, want)
	}
}

func TestStepCommitsPhasesIncrementally(t *testing.T) {
	cfg := goldenConfig()
	w, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}

	// Drain exactly the heightmap and hole phases.
	for i := 0; i < cfg.Resolution+cfg.HoleResolution; i++ {
		if !w.Step() {
			t.Fatal("pipeline drained early")
		}
	}
	if w.Phase() != "sand" {
		t.Fatalf("phase = %q, want sand", w.Phase())
	}

	// Earlier buffers are committed and already final.
	full, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	full.Generate()
	if !slices.Equal(w.Heightmap().Cells(), full.Heightmap().Cells()) {
		t.Error("partially drained heightmap differs from full run")
	}
	if !slices.Equal(w.Holes().Cells(), full.Holes().Cells()) {
		t.Error("partially drained hole mask differs from full run")
	}

	// Later buffers are untouched.
	for i, c := range w.Sand().Cells() {
		if c != (color.NRGBA{}) {
			t.Fatalf("sand texel %d written before its phase: %v", i, c)
		}
	}

	// Resuming the same pipeline finishes identically to the one-shot run.
	w.Generate()
	if !slices.Equal(w.Sand().Cells(), full.Sand().Cells()) {
		t.Error("resumed sand texture differs from full run")
	}
	if !slices.Equal(w.Blend().Cells(), full.Blend().Cells()) {
		t.Error("resumed blend map differs from full run")
	}
}

func TestStepAfterDone(t *testing.T) {
	w := generatedWorld(t)
	if !w.Done() {
		t.Fatal("world not done after Generate")
	}
	if w.Step() {
		t.Fatal("Step reported work after the pipeline drained")
	}
	if w.Phase() != "done" {
		t.Fatalf("phase = %q, want done", w.Phase())
	}
}

func TestRegistryFactory(t *testing.T) {
	factory, ok := core.Generators()["island"]
	if !ok {
		t.Fatal("island generator not registered")
	}
	gen, err := factory(map[string]string{"seed": "7", "res": "8", "hole_res": "8", "tex": "16", "blend_res": "8"})
	if err != nil {
		t.Fatal(err)
	}
	if gen.Name() != "island" {
		t.Fatalf("name = %q", gen.Name())
	}
	if s := gen.Size(); s.W != 8 || s.H != 8 {
		t.Fatalf("size = %+v", s)
	}
	if _, err := factory(map[string]string{"tex": "8"}); err == nil {
		t.Fatal("expected undersized texture to be rejected")
	}
}

func TestSeaLevel(t *testing.T) {
	w := generatedWorld(t)
	cfg := w.Config()
	want := cfg.Shape.Amplitude * cfg.Shape.MinHeightAboveSea / 4 * cfg.VerticalScale
	if w.SeaLevel() != want {
		t.Fatalf("sea level = %v, want %v", w.SeaLevel(), want)
	}
}

func TestLandFraction(t *testing.T) {
	w := generatedWorld(t)
	// The pinned 4x4 run has exactly two land cells.
	if lf := w.LandFraction(); lf != 2.0/16.0 {
		t.Fatalf("land fraction = %v, want %v", lf, 2.0/16.0)
	}
	if hf := w.HoleFraction(); hf < 0 || hf > 1 {
		t.Fatalf("hole fraction = %v", hf)
	}
}

func TestDisplayBufferTracksHeights(t *testing.T) {
	w := generatedWorld(t)
	heights := w.Heightmap().Cells()
	display := w.Cells()
	for i := range heights {
		if heights[i] <= 0 && display[i] != 0 {
			t.Fatalf("sea cell %d displayed as %d", i, display[i])
		}
		if heights[i] > 0 && display[i] == 0 {
			t.Fatalf("land cell %d displayed as sea", i)
		}
	}
}
