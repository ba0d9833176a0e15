package noise

import (
	"math"
	"testing"
)

func TestGradientKnownValues(t *testing.T) {
	cases := []struct {
		seed int64
		x, y float64
		want float64
	}{
		{42, 0.1, 0.2, 0.3342842665030878},
		{42, 0.75, 0.75, 0.7066039559841024},
		{42, 3.7, -2.2, 0.5267761747910527},
		{-7, 0.5, 0.25, 0.1166058291486472},
	}
	var g Gradient
	for _, c := range cases {
		got := g.Noise2D(c.seed, c.x, c.y)
		if math.Abs(got-c.want) > 1e-12 {
			t.Errorf("Noise2D(%d, %v, %v) = %v, want %v", c.seed, c.x, c.y, got, c.want)
		}
	}
}

func TestGradientDeterministicAcrossSeedSwitches(t *testing.T) {
	var g Gradient
	before := g.Noise2D(42, 0.1, 0.2)

	// Interleave another seed so the permutation table rebuilds, then
	// verify the original seed still produces bit-identical output.
	g.Noise2D(9001, 0.3, 0.4)
	after := g.Noise2D(42, 0.1, 0.2)
	if before != after {
		t.Fatalf("value changed after table rebuild: %v != %v", before, after)
	}

	var fresh Gradient
	if v := fresh.Noise2D(42, 0.1, 0.2); v != before {
		t.Fatalf("independent kernels disagree: %v != %v", v, before)
	}
}

func TestGradientApproximateRange(t *testing.T) {
	var g Gradient
	for i := 0; i < 20000; i++ {
		x := float64(i%200) * 0.137
		y := float64(i/200) * 0.211
		v := g.Noise2D(42, x, y)
		if math.Abs(v) > 1.1 {
			t.Fatalf("Noise2D at (%v, %v) = %v outside expected band", x, y, v)
		}
	}
}

func TestGradientContinuity(t *testing.T) {
	// Nearby samples must produce nearby values; a broken lattice lookup
	// shows up as jumps at cell boundaries.
	var g Gradient
	const step = 1e-4
	for i := 0; i < 500; i++ {
		x := float64(i) * 0.0173
		y := float64(i) * 0.0091
		a := g.Noise2D(7, x, y)
		b := g.Noise2D(7, x+step, y)
		if math.Abs(a-b) > 0.05 {
			t.Fatalf("discontinuity near (%v, %v): %v vs %v", x, y, a, b)
		}
	}
}

func TestGradientFractalSingleOctave(t *testing.T) {
	var g Gradient
	x, y := 0.37, 0.81
	want := g.Noise2D(11, x*3, y*3) * 0.25
	got := g.FractalNoise2D(11, x, y, 3, 0.25, 1, 0.5, 2)
	if got != want {
		t.Fatalf("single octave fractal = %v, want scaled kernel %v", got, want)
	}
}
