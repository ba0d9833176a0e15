package island

import "math"

// Normalizer for the shoreline sigmoid: 2*tanh(1), so the curve passes
// through zero exactly at the perturbed shoreline.
const sigmoidNorm = 1.523188312

// shorelineInfluence converts the signed squared distance from the perturbed
// island boundary into a [0, 1] interior factor. It saturates to 0 at and
// seaward of the shoreline and to 1 deep inland; shoreLen controls the
// transition width. The 0.5 midpoint sits at shoreDist2 = -shoreLen^2/2.
func shorelineInfluence(shoreDist2, shoreLen float64) float64 {
	if shoreLen == 0 {
		// Degenerate transition width: hard shoreline.
		if shoreDist2 < 0 {
			return 1
		}
		return 0
	}
	t := math.Tanh(-2*shoreDist2/(shoreLen*shoreLen)-1)/sigmoidNorm + 0.5
	return clamp01(t)
}

// heightmapRow fills one row of the heightmap. Heights are zero at and
// outside the perturbed shoreline, at least minLandHeight once fully
// interior, and bounded above by the amplitude.
func (w *World) heightmapRow(y int) {
	res := w.heights.W
	sp := w.cfg.Shape

	maxRadius := math.Min(w.cfg.HalfExtentX, w.cfg.HalfExtentZ)
	minRadius := maxRadius * sp.RadiusVariance
	radiusDiff := maxRadius - minRadius
	shoreLen := radiusDiff * sp.ShorelineLength
	minLand := w.minLandHeight()

	v := float64(y) / float64(res)
	for x := 0; x < res; x++ {
		u := float64(x) / float64(res)

		base := w.gradient.FractalNoise2D(w.seed, u, v,
			sp.Frequency, sp.Amplitude, sp.Octaves, sp.Persistence, sp.Lacunarity)
		// The gradient fractal is signed; the shaping stage clamps it
		// into the usable band.
		base = clampRange(base, 0, sp.Amplitude)

		// Fixed secondary fractal distorting the ideal circular
		// shoreline, independent of the primary shape parameters.
		perturb := w.gradient.FractalNoise2D(w.seed, u, v, 1, 1, 4, 0.5, 4)

		dx := (u - 0.5) * 2 * w.cfg.HalfExtentX
		dz := (v - 0.5) * 2 * w.cfg.HalfExtentZ
		centerDist2 := dx*dx + dz*dz
		perturbedRadius2 := minRadius*minRadius + perturb*radiusDiff*radiusDiff
		shoreDist2 := centerDist2 - perturbedRadius2

		influence := shorelineInfluence(shoreDist2, shoreLen)
		h := influence * (minLand + (1-minLand)*base)
		h = clampRange(h, 0, sp.Amplitude)

		w.heights.Set(x, y, h)
		w.display[w.heights.Index(x, y)] = w.displayValue(h)
	}
}

// holeRow fills one row of the hole mask: a cell is a hole iff the
// bilinearly interpolated heightmap value at its normalized position is
// zero or below.
func (w *World) holeRow(y int) {
	res := w.holes.W
	v := float64(y) / float64(res)
	for x := 0; x < res; x++ {
		u := float64(x) / float64(res)
		w.holes.Set(x, y, w.sampler.HeightAt(u, v) <= 0)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// lerp interpolates between a and b with t clamped into [0, 1].
func lerp(a, b, t float64) float64 {
	return a + (b-a)*clamp01(t)
}
