package island

import (
	"image/color"

	"isle-gen/internal/core"
)

// Display bands: index 0 is sea, the rest ramp from shoreline sand to high
// rock.
const displayBands = 32

var islandPalette = buildIslandPalette()

// Palette exposes the color palette used for rendering the island preview.
func (w *World) Palette() []color.RGBA {
	return islandPalette
}

func buildIslandPalette() []color.RGBA {
	palette := make([]color.RGBA, displayBands)
	palette[0] = color.RGBA{R: 24, G: 56, B: 110, A: 255}
	for i := 1; i < displayBands; i++ {
		t := float64(i-1) / float64(displayBands-2)
		var c color.NRGBA
		switch {
		case t < 0.25:
			c = blendColors(sandLight, grassMid, t/0.25)
		case t < 0.7:
			c = blendColors(grassMid, grassDeep, (t-0.25)/0.45)
		default:
			c = blendColors(rockDark, rockLight, (t-0.7)/0.3)
		}
		palette[i] = color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
	}
	return palette
}

func blendColors(a, b color.NRGBA, t float64) color.NRGBA {
	t = clamp01(t)
	return color.NRGBA{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t + 0.5),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t + 0.5),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t + 0.5),
		A: 255,
	}
}

// RockWeights extracts the rock layer of the blend map for overlay drawing.
func (w *World) RockWeights() ([]float64, core.Size) {
	cells := w.blend.Cells()
	out := make([]float64, w.blend.W*w.blend.H)
	for i := range out {
		out[i] = cells[i*w.blend.Layers+LayerRock]
	}
	return out, core.Size{W: w.blend.W, H: w.blend.H}
}

// displayValue quantizes a committed height into a palette index.
func (w *World) displayValue(h float64) uint8 {
	if h <= 0 {
		return 0
	}
	band := 1 + int(h/w.cfg.Shape.Amplitude*float64(displayBands-2))
	if band > displayBands-1 {
		band = displayBands - 1
	}
	return uint8(band)
}
