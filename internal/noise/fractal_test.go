package noise

import "testing"

func TestFractalBoundsWithNonNegativeKernel(t *testing.T) {
	var c Cellular
	const amplitude = 0.8
	for i := 0; i < 2000; i++ {
		x := float64(i%50) * 0.119
		y := float64(i/50) * 0.073
		v := Fractal(c.Noise2D, 42, x, y, 4, amplitude, 5, 0.5, 2)
		if v < 0 || v > amplitude {
			t.Fatalf("fractal at (%v, %v) = %v outside [0, %v]", x, y, v, amplitude)
		}
	}
}

func TestFractalBoundsWithSignedKernel(t *testing.T) {
	var g Gradient
	const amplitude = 0.6
	for i := 0; i < 2000; i++ {
		x := float64(i%50) * 0.131
		y := float64(i/50) * 0.067
		v := Fractal(g.Noise2D, 42, x, y, 2, amplitude, 5, 0.5, 2)
		// The normalized sum inherits the kernel's band, so the fractal
		// stays within the amplitude up to the kernel's slight overshoot.
		if v < -amplitude*1.1 || v > amplitude*1.1 {
			t.Fatalf("fractal at (%v, %v) = %v outside amplitude band", x, y, v)
		}
	}
}

func TestFractalPersistenceWeighting(t *testing.T) {
	// With persistence 0 only the first octave contributes.
	var g Gradient
	x, y := 0.4, 0.9
	want := g.Noise2D(5, x*2, y*2)
	got := Fractal(g.Noise2D, 5, x, y, 2, 1, 4, 0, 2)
	if got != want {
		t.Fatalf("zero persistence fractal = %v, want first octave %v", got, want)
	}
}
