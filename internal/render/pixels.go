package render

import "image/color"

// fillPaletteRGBA converts cell values into RGBA pixels using a palette.
// When the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// fillMaskRGBA writes a single translucent tint wherever the mask is set and
// clears the rest of the buffer.
func fillMaskRGBA(buf []byte, mask []bool, tint color.RGBA) {
	for i, on := range mask {
		base := i * 4
		if !on {
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
			continue
		}
		buf[base+0] = tint.R
		buf[base+1] = tint.G
		buf[base+2] = tint.B
		buf[base+3] = tint.A
	}
}

// fillWeightRGBA tints each cell proportionally to its weight in [0, 1].
func fillWeightRGBA(buf []byte, weights []float64, tint color.RGBA) {
	for i, v := range weights {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		base := i * 4
		buf[base+0] = uint8(float64(tint.R) * v)
		buf[base+1] = uint8(float64(tint.G) * v)
		buf[base+2] = uint8(float64(tint.B) * v)
		buf[base+3] = uint8(float64(tint.A) * v)
	}
}
