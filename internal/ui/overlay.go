//go:build ebiten

package ui

import (
	"image/color"

	"isle-gen/internal/core"
	"isle-gen/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type holeProvider interface {
	Holes() *core.BoolGrid
}

type rockWeightProvider interface {
	RockWeights() ([]float64, core.Size)
}

// Overlay draws optional hole-mask and rock-blend visuals on top of the base
// island view. Toggled with H and B.
type Overlay struct {
	gen   core.Generator
	scale int

	showHoles bool
	showRock  bool

	holePainter *render.GridPainter
	rockPainter *render.GridPainter
}

// NewOverlay constructs an overlay for the provided generator.
func NewOverlay(gen core.Generator, scale int) *Overlay {
	return &Overlay{gen: gen, scale: scale}
}

// Update handles the overlay toggle keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHoles = !o.showHoles
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		o.showRock = !o.showRock
	}
}

// Draw renders the enabled overlays stretched over the island viewport.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.gen.Size()
	viewW := float64(size.W * o.scale)
	viewH := float64(size.H * o.scale)

	if o.showHoles {
		if hp, ok := o.gen.(holeProvider); ok {
			holes := hp.Holes()
			if o.holePainter == nil {
				o.holePainter = render.NewGridPainter(holes.W, holes.H)
			}
			tint := color.RGBA{R: 40, G: 90, B: 220, A: 150}
			o.holePainter.BlitMask(screen, holes.Cells(), tint,
				viewW/float64(holes.W), viewH/float64(holes.H))
		}
	}
	if o.showRock {
		if rp, ok := o.gen.(rockWeightProvider); ok {
			weights, dims := rp.RockWeights()
			if o.rockPainter == nil {
				o.rockPainter = render.NewGridPainter(dims.W, dims.H)
			}
			tint := color.RGBA{R: 230, G: 60, B: 60, A: 170}
			o.rockPainter.BlitWeights(screen, weights, tint,
				viewW/float64(dims.W), viewH/float64(dims.H))
		}
	}
}
