package island

import (
	"image/color"
	"testing"
)

func generatedWorld(t *testing.T) *World {
	t.Helper()
	cfg := goldenConfig()
	w, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	w.Generate()
	return w
}

func assertTileable(t *testing.T, name string, g interface {
	At(x, y int) color.NRGBA
}, width, height int) {
	t.Helper()
	for y := 0; y < height; y++ {
		if g.At(0, y) != g.At(width-1, y) {
			t.Errorf("%s row %d: left edge %v != right edge %v", name, y, g.At(0, y), g.At(width-1, y))
		}
	}
	for x := 0; x < width; x++ {
		if g.At(x, 0) != g.At(x, height-1) {
			t.Errorf("%s column %d: top edge %v != bottom edge %v", name, x, g.At(x, 0), g.At(x, height-1))
		}
	}
}

func TestTexturesTile(t *testing.T) {
	w := generatedWorld(t)
	width, height := w.Config().TextureWidth, w.Config().TextureHeight
	assertTileable(t, "sand", w.Sand(), width, height)
	assertTileable(t, "dirt", w.Dirt(), width, height)
	assertTileable(t, "grass", w.Grass(), width, height)
	assertTileable(t, "rock", w.Rock(), width, height)
}

func TestTexturesOpaque(t *testing.T) {
	w := generatedWorld(t)
	for name, cells := range map[string][]color.NRGBA{
		"sand":  w.Sand().Cells(),
		"dirt":  w.Dirt().Cells(),
		"grass": w.Grass().Cells(),
		"rock":  w.Rock().Cells(),
	} {
		for i, c := range cells {
			if c.A != 255 {
				t.Fatalf("%s texel %d has alpha %d", name, i, c.A)
			}
		}
	}
}

func TestFoldSymmetry(t *testing.T) {
	const size = 16
	if fold(0, size) != 1 || fold(size-1, size) != 1 {
		t.Errorf("edges fold to %v and %v, want 1", fold(0, size), fold(size-1, size))
	}
	if v := fold(float64(size-1)/2, size); v != 0 {
		t.Errorf("center folds to %v, want 0", v)
	}
	for x := 0; x < size; x++ {
		if fold(float64(x), size) != fold(float64(size-1-x), size) {
			t.Errorf("fold(%d) != fold(%d)", x, size-1-x)
		}
	}
}

func TestSandRippleCount(t *testing.T) {
	for _, seed := range []int64{0, 1, 20, 21, 42, -1, -5, -1 << 50} {
		n := sandRippleCount(seed)
		if n < 26 || n > 46 {
			t.Errorf("seed %d: ripple count %d outside [26, 46]", seed, n)
		}
		if n%2 != 0 {
			t.Errorf("seed %d: ripple count %d is odd", seed, n)
		}
	}
}

func TestSandRippleCountDeterministic(t *testing.T) {
	if sandRippleCount(42) != sandRippleCount(42) {
		t.Fatal("ripple count not deterministic")
	}
}

func TestLagrangeEndpoints(t *testing.T) {
	a, b, c := 10.0, 50.0, 200.0
	if v := lagrange3(a, b, c, 0); v != a {
		t.Errorf("t=0: %v, want %v", v, a)
	}
	if v := lagrange3(a, b, c, 0.5); v != b {
		t.Errorf("t=0.5: %v, want %v", v, b)
	}
	if v := lagrange3(a, b, c, 1); v != c {
		t.Errorf("t=1: %v, want %v", v, c)
	}
}
