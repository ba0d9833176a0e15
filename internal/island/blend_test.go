package island

import (
	"math"
	"testing"
)

func TestBlendDirtLayerAlwaysZero(t *testing.T) {
	w := generatedWorld(t)
	blend := w.Blend()
	for y := 0; y < blend.H; y++ {
		for x := 0; x < blend.W; x++ {
			if v := blend.At(x, y, LayerDirt); v != 0 {
				t.Fatalf("dirt weight at (%d,%d) = %v, want 0", x, y, v)
			}
		}
	}
}

func TestBlendRockWeightIsNormalizedSlope(t *testing.T) {
	w := generatedWorld(t)
	blend := w.Blend()
	for y := 0; y < blend.H; y++ {
		v := float64(y) / float64(blend.H-1)
		for x := 0; x < blend.W; x++ {
			u := float64(x) / float64(blend.W-1)
			want := w.Terrain().SteepnessAt(u, v) / 90
			if got := blend.At(x, y, LayerRock); got != want {
				t.Fatalf("rock weight at (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestBlendWeightRanges(t *testing.T) {
	w := generatedWorld(t)
	blend := w.Blend()
	for y := 0; y < blend.H; y++ {
		for x := 0; x < blend.W; x++ {
			for _, layer := range []int{LayerSand, LayerGrass, LayerRock} {
				v := blend.At(x, y, layer)
				if v < 0 || v > 1 {
					t.Fatalf("layer %d weight at (%d,%d) = %v outside [0, 1]", layer, x, y, v)
				}
			}
		}
	}
}

func TestBlendSandGrassTradeoff(t *testing.T) {
	// Sand fades out exactly where the height ratio fills in; below the
	// minimum land height the two interpolants are complementary before
	// the slope discount on grass.
	w := generatedWorld(t)
	blend := w.Blend()
	for y := 0; y < blend.H; y++ {
		v := float64(y) / float64(blend.H-1)
		for x := 0; x < blend.W; x++ {
			u := float64(x) / float64(blend.W-1)
			s := w.Terrain().SteepnessAt(u, v) / 90
			sand := blend.At(x, y, LayerSand)
			grass := blend.At(x, y, LayerGrass)
			if s >= 1 {
				continue
			}
			sum := sand + grass/(1-s)
			if math.Abs(sum-1) > 1e-12 {
				t.Fatalf("sand %v + grass %v at (%d,%d) do not complement: %v", sand, grass, x, y, sum)
			}
		}
	}
}
