package island

import (
	"image/color"
	"math"
)

// Base colors for the four surface materials.
var (
	sandLight = color.NRGBA{R: 216, G: 192, B: 146, A: 255}
	sandDark  = color.NRGBA{R: 178, G: 148, B: 98, A: 255}

	dirtDark  = color.NRGBA{R: 92, G: 64, B: 38, A: 255}
	dirtLight = color.NRGBA{R: 132, G: 98, B: 62, A: 255}

	grassDeep  = color.NRGBA{R: 42, G: 106, B: 38, A: 255}
	grassMid   = color.NRGBA{R: 80, G: 138, B: 46, A: 255}
	grassLight = color.NRGBA{R: 118, G: 158, B: 62, A: 255}

	rockDark  = color.NRGBA{R: 88, G: 88, B: 94, A: 255}
	rockLight = color.NRGBA{R: 152, G: 152, B: 158, A: 255}
)

// fold maps pixel coordinate c into [0, 1], mirror-symmetric about the
// texture center, so opposite edges fold to equal values and the fields
// tile seamlessly.
func fold(c float64, size int) float64 {
	half := float64(size-1) / 2
	return math.Abs(c-half) / half
}

// sandRippleCount derives an even ripple count in [26, 46] from the seed.
// The non-negative remainder keeps negative seeds in range, and evenness
// keeps the ripple cosine phase-aligned across opposite texture edges.
func sandRippleCount(seed int64) int {
	m := seed % 21
	if m < 0 {
		m += 21
	}
	return (26 + int(m)) &^ 1
}

func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(lerp(float64(a.R), float64(b.R), t) + 0.5),
		G: uint8(lerp(float64(a.G), float64(b.G), t) + 0.5),
		B: uint8(lerp(float64(a.B), float64(b.B), t) + 0.5),
		A: 255,
	}
}

// lagrange3 evaluates the quadratic through (0, a), (0.5, b), (1, c) at t.
func lagrange3(a, b, c, t float64) float64 {
	return a*2*(t-0.5)*(t-1) - b*4*t*(t-1) + c*2*t*(t-0.5)
}

func lagrangeColor(a, b, c color.NRGBA, t float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(clampRange(lagrange3(float64(a.R), float64(b.R), float64(c.R), t), 0, 255) + 0.5),
		G: uint8(clampRange(lagrange3(float64(a.G), float64(b.G), float64(c.G), t), 0, 255) + 0.5),
		B: uint8(clampRange(lagrange3(float64(a.B), float64(b.B), float64(c.B), t), 0, 255) + 0.5),
		A: 255,
	}
}

// sandRow fills one row of the sand field: ripple bands distorted by
// gradient noise over folded coordinates.
func (w *World) sandRow(y int) {
	width, height := w.sand.W, w.sand.H
	ripples := float64(sandRippleCount(w.seed))
	fv := fold(float64(y), height)
	vt := fv * 1.5
	for x := 0; x < width; x++ {
		fu := fold(float64(x), width)
		ut := fu * 1.5
		distortion := w.gradient.Noise2D(w.seed, ut, vt)
		intensity := 0.5 + 0.5*math.Cos((distortion+ripples*(fu+fv))*math.Pi)
		w.sand.Set(x, y, lerpColor(sandLight, sandDark, intensity))
	}
}

// dirtRow fills one row of the dirt field from high-frequency gradient
// noise over folded coordinates.
func (w *World) dirtRow(y int) {
	width, height := w.dirt.W, w.dirt.H
	fv := fold(float64(y), height)
	for x := 0; x < width; x++ {
		fu := fold(float64(x), width)
		t := w.gradient.Noise2D(w.seed, fu*512, fv*512)
		w.dirt.Set(x, y, lerpColor(dirtDark, dirtLight, t))
	}
}

// grassRow fills one row of the grass field: a gradient fractal drives a
// quadratic blend through three reference greens.
func (w *World) grassRow(y int) {
	width, height := w.grass.W, w.grass.H
	fv := fold(float64(y), height)
	for x := 0; x < width; x++ {
		fu := fold(float64(x), width)
		t := w.gradient.FractalNoise2D(w.seed, fu, fv, 256, 1, 4, 0.5, 1.5)
		w.grass.Set(x, y, lagrangeColor(grassDeep, grassMid, grassLight, clamp01(t)))
	}
}

// rockRow fills one row of the rock field from a cellular fractal over
// unfolded coordinates; the kernel's period-1 tiling keeps the edges
// seamless at integer frequencies.
func (w *World) rockRow(y int) {
	width, height := w.rock.W, w.rock.H
	v := float64(y) / float64(height-1)
	for x := 0; x < width; x++ {
		u := float64(x) / float64(width-1)
		t := w.cellular.FractalNoise2D(w.seed, u, v, 16, 1, 4, 0.33, 2)
		w.rock.Set(x, y, lerpColor(rockDark, rockLight, t))
	}
}
