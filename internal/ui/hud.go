//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"math"

	"isle-gen/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders a parameter panel to the right of the island view. Tab cycles
// the selected control; + and - nudge it through the generator's setter
// interfaces, which restart generation.
type HUD struct {
	gen   core.Generator
	width int

	controls []core.ParameterControl
	values   []float64
	selected int

	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided generator and panel width. A
// zero width disables the panel entirely.
func NewHUD(gen core.Generator, width int) *HUD {
	if width <= 0 {
		return nil
	}
	h := &HUD{gen: gen, width: width}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	if provider, ok := gen.(core.ParameterControlsProvider); ok {
		h.controls = provider.ParameterControls()
		h.values = make([]float64, len(h.controls))
		h.pullValues()
	}
	if setter, ok := gen.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if setter, ok := gen.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

// pullValues refreshes control values from the generator's snapshot.
func (h *HUD) pullValues() {
	provider, ok := h.gen.(parameterProvider)
	if !ok {
		return
	}
	snapshot := provider.Parameters()
	for i, ctrl := range h.controls {
		for _, group := range snapshot.Groups {
			for _, p := range group.Params {
				if p.Key == ctrl.Key {
					fmt.Sscanf(p.Value, "%g", &h.values[i])
				}
			}
		}
	}
}

// Update handles control selection and adjustment keys.
func (h *HUD) Update() {
	if h == nil || len(h.controls) == 0 {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		h.selected = (h.selected + 1) % len(h.controls)
	}
	delta := 0.0
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		delta = 1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		delta = -1
	}
	if delta != 0 {
		h.adjust(h.selected, delta)
	}
	h.pullValues()
}

func (h *HUD) adjust(idx int, direction float64) {
	ctrl := h.controls[idx]
	next := h.values[idx] + direction*ctrl.Step
	next = math.Max(ctrl.Min, math.Min(ctrl.Max, next))
	switch ctrl.Type {
	case core.ParamTypeInt:
		if h.intSetter != nil {
			h.intSetter.SetIntParameter(ctrl.Key, int(math.Round(next)))
		}
	case core.ParamTypeFloat:
		if h.floatSetter != nil {
			h.floatSetter.SetFloatParameter(ctrl.Key, next)
		}
	}
}

// Draw renders the panel at the given x offset.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(h.width), float64(height))
	op.GeoM.Translate(float64(offsetX), 0)
	op.ColorScale.ScaleWithColor(color.RGBA{R: 18, G: 18, B: 24, A: 235})
	screen.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	y := 18
	text.Draw(screen, h.gen.Name(), face, offsetX+8, y, color.White)
	y += 20
	for i, ctrl := range h.controls {
		marker := "  "
		clr := color.Color(color.RGBA{R: 190, G: 190, B: 190, A: 255})
		if i == h.selected {
			marker = "> "
			clr = color.White
		}
		line := fmt.Sprintf("%s%s: %s", marker, ctrl.Label, formatValue(ctrl, h.values[i]))
		text.Draw(screen, line, face, offsetX+8, y, clr)
		y += 16
	}
	y += 10
	for _, line := range []string{"tab select", "+/- adjust", "h holes  b rock", "space pause  n step", "r reset  s reseed"} {
		text.Draw(screen, line, face, offsetX+8, y, color.RGBA{R: 120, G: 120, B: 130, A: 255})
		y += 14
	}
}

func formatValue(ctrl core.ParameterControl, v float64) string {
	if ctrl.Type == core.ParamTypeInt {
		return fmt.Sprintf("%d", int(math.Round(v)))
	}
	return fmt.Sprintf("%.2f", v)
}
