package core

import "image/color"

// FloatGrid stores a 2D grid of float64 cell values in row-major order.
type FloatGrid struct {
	W, H int
	data []float64
}

// NewFloatGrid allocates a grid with the given dimensions.
func NewFloatGrid(w, h int) *FloatGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &FloatGrid{W: w, H: h, data: make([]float64, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *FloatGrid) Cells() []float64 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *FloatGrid) Index(x, y int) int { return y*g.W + x }

// At returns the value stored at (x, y).
func (g *FloatGrid) At(x, y int) float64 { return g.data[y*g.W+x] }

// Set stores v at (x, y).
func (g *FloatGrid) Set(x, y int, v float64) { g.data[y*g.W+x] = v }

// Clear fills the grid with zeros.
func (g *FloatGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// BoolGrid stores a 2D grid of boolean cell values in row-major order.
type BoolGrid struct {
	W, H int
	data []bool
}

// NewBoolGrid allocates a grid with the given dimensions.
func NewBoolGrid(w, h int) *BoolGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &BoolGrid{W: w, H: h, data: make([]bool, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *BoolGrid) Cells() []bool { return g.data }

// At returns the value stored at (x, y).
func (g *BoolGrid) At(x, y int) bool { return g.data[y*g.W+x] }

// Set stores v at (x, y).
func (g *BoolGrid) Set(x, y int, v bool) { g.data[y*g.W+x] = v }

// Clear fills the grid with false.
func (g *BoolGrid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}

// ColorGrid stores a 2D grid of NRGBA pixels in row-major order.
type ColorGrid struct {
	W, H int
	data []color.NRGBA
}

// NewColorGrid allocates a grid with the given dimensions.
func NewColorGrid(w, h int) *ColorGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ColorGrid{W: w, H: h, data: make([]color.NRGBA, w*h)}
}

// Cells exposes the backing slice so callers can read/write pixels directly.
func (g *ColorGrid) Cells() []color.NRGBA { return g.data }

// At returns the pixel stored at (x, y).
func (g *ColorGrid) At(x, y int) color.NRGBA { return g.data[y*g.W+x] }

// Set stores c at (x, y).
func (g *ColorGrid) Set(x, y int, c color.NRGBA) { g.data[y*g.W+x] = c }

// Clear fills the grid with zero pixels.
func (g *ColorGrid) Clear() {
	for i := range g.data {
		g.data[i] = color.NRGBA{}
	}
}

// WeightGrid stores a 2D grid with a fixed number of float64 layers per cell.
// Layer values for one cell are adjacent in the backing slice.
type WeightGrid struct {
	W, H, Layers int
	data         []float64
}

// NewWeightGrid allocates a layered grid with the given dimensions.
func NewWeightGrid(w, h, layers int) *WeightGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	if layers <= 0 {
		layers = 1
	}
	return &WeightGrid{W: w, H: h, Layers: layers, data: make([]float64, w*h*layers)}
}

// Cells exposes the backing slice.
func (g *WeightGrid) Cells() []float64 { return g.data }

// At returns the weight of the given layer at (x, y).
func (g *WeightGrid) At(x, y, layer int) float64 {
	return g.data[(y*g.W+x)*g.Layers+layer]
}

// Set stores the weight of the given layer at (x, y).
func (g *WeightGrid) Set(x, y, layer int, v float64) {
	g.data[(y*g.W+x)*g.Layers+layer] = v
}

// Clear fills the grid with zeros.
func (g *WeightGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
