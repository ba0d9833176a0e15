package noise

import "math"

const (
	// Rescales feature-point distances so the expected nearest-point
	// distance for one point per unit cell lands near 0.5.
	densityAdjustment = 0.398150

	cellLCGMul uint32 = 1402024253
	cellLCGAdd uint32 = 586950981
)

// Feature-point counts per cell, indexed by the top byte of the seed. Built
// from the Poisson CDF with mean 1, permuted across the index so zero-point
// seeds exist but are scattered rather than clustered at low bytes.
var cellCountTable = buildCellCountTable()

func buildCellCountTable() [256]uint8 {
	cdf := [...]float64{
		0.36787944117144233,
		0.7357588823428847,
		0.9196986029286058,
		0.9810118431238462,
		0.9963401531726563,
		0.9994058151824183,
		0.9999167588507119,
	}
	var table [256]uint8
	for i := range table {
		v := (float64((i*131+101)&255) + 0.5) / 256
		count := uint8(len(cdf))
		for k, p := range cdf {
			if v <= p {
				count = uint8(k)
				break
			}
		}
		table[i] = count
	}
	return table
}

// Cellular is the periodic Worley-style distance kernel. Every unit cell
// draws the same point count and the same offset stream from the global
// seed; neighboring copies of the pattern are therefore literally identical,
// which is what makes the field tile with period exactly 1 along each axis.
// That sameness is the periodicity mechanism and must not be "fixed" by
// varying the stream per cell.
type Cellular struct{}

// Noise2D evaluates the kernel at (x, y) for the given seed. Output lies
// in [0, 1]; the value 0 is returned when the seed maps to zero feature
// points per cell.
func (Cellular) Noise2D(seed int64, x, y float64) float64 {
	count := int(cellCountTable[uint8(uint64(seed)>>56)])
	if count == 0 {
		return 0
	}

	cx, cy := fastFloor(x), fastFloor(y)
	minDist := math.MaxFloat64
	for ny := cy - 1; ny <= cy+1; ny++ {
		for nx := cx - 1; nx <= cx+1; nx++ {
			state := uint32(seed)
			for p := 0; p < count; p++ {
				state = cellLCGMul*state + cellLCGAdd
				fx := float64(state) / (1 << 32)
				state = cellLCGMul*state + cellLCGAdd
				fy := float64(state) / (1 << 32)
				dx := (float64(nx) + fx - x) * densityAdjustment
				dy := (float64(ny) + fy - y) * densityAdjustment
				d := dx*dx + dy*dy
				if d < minDist {
					minDist = d
				}
			}
		}
	}

	v := 2 * math.Sqrt(minDist)
	if v > 1 {
		v = 1
	}
	return v
}

// FractalNoise2D composes multiple octaves of the kernel.
func (c Cellular) FractalNoise2D(seed int64, x, y, frequency, amplitude float64, octaves int, persistence, lacunarity float64) float64 {
	return Fractal(c.Noise2D, seed, x, y, frequency, amplitude, octaves, persistence, lacunarity)
}
