//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from palette-indexed cell data.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

func (gp *GridPainter) draw(dst *ebiten.Image, scaleX, scaleY float64) {
	gp.img.WritePixels(gp.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scaleX, scaleY)
	dst.DrawImage(gp.img, op)
}

// Blit uploads the provided cells into the painter image and draws it
// scaled along both axes.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, palette []color.RGBA, scaleX, scaleY float64) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillPaletteRGBA(gp.buf, cells, palette)
	gp.draw(dst, scaleX, scaleY)
}

// BlitMask overlays a translucent tint wherever the mask is set.
func (gp *GridPainter) BlitMask(dst *ebiten.Image, mask []bool, tint color.RGBA, scaleX, scaleY float64) {
	if len(mask) != gp.w*gp.h {
		return
	}
	fillMaskRGBA(gp.buf, mask, tint)
	gp.draw(dst, scaleX, scaleY)
}

// BlitWeights overlays a tint scaled per cell by a weight in [0, 1].
func (gp *GridPainter) BlitWeights(dst *ebiten.Image, weights []float64, tint color.RGBA, scaleX, scaleY float64) {
	if len(weights) != gp.w*gp.h {
		return
	}
	fillWeightRGBA(gp.buf, weights, tint)
	gp.draw(dst, scaleX, scaleY)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
