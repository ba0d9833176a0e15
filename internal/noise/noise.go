// Package noise implements the two seeded coherent-noise kernels used by the
// island synthesizer: a skewed-lattice gradient kernel and a periodic cellular
// distance kernel, plus multi-octave fractal composition over either.
package noise

// Kernel2D is a seeded 2D scalar noise function.
type Kernel2D func(seed int64, x, y float64) float64

// Generator is the capability contract shared by both kernel families.
// Implementations are selected by configuration, not inheritance.
type Generator interface {
	Noise2D(seed int64, x, y float64) float64
	FractalNoise2D(seed int64, x, y, frequency, amplitude float64, octaves int, persistence, lacunarity float64) float64
}

// fastFloor truncates toward negative infinity.
func fastFloor(x float64) int {
	xi := int(x)
	if x < float64(xi) {
		return xi - 1
	}
	return xi
}
