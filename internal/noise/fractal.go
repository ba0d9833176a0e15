package noise

// Fractal sums octaves of the kernel, normalizing by the accumulated
// amplitude so the result is bounded by the final amplitude scale. A kernel
// bounded in [0, 1] yields a result in [0, amplitude]; the gradient kernel's
// signed output is deliberately not clamped here. Callers must pass
// octaves >= 1; zero octaves would divide by zero and is rejected at
// configuration time.
func Fractal(kernel Kernel2D, seed int64, x, y, frequency, amplitude float64, octaves int, persistence, lacunarity float64) float64 {
	sum := 0.0
	maxAmp := 0.0
	amp := 1.0
	freq := frequency
	for i := 0; i < octaves; i++ {
		sum += kernel(seed, x*freq, y*freq) * amp
		maxAmp += amp
		amp *= persistence
		freq *= lacunarity
	}
	return sum / maxAmp * amplitude
}
