package noise

const (
	// Skew factor into the triangular lattice, applied as s = stretch*(x+y).
	stretch2D = 0.36602542
	// Unskew factor recovering contribution offsets from lattice coordinates.
	squish2D = -0.21132487

	// Squared-distance attenuation radius. Contributions outside it are zero.
	attnRadius = 2.0 / 3.0
)

type latticePoint struct {
	xsv, ysv int
	dx, dy   float64
}

func newLatticePoint(xsv, ysv int) latticePoint {
	ssv := float64(xsv+ysv) * squish2D
	return latticePoint{
		xsv: xsv,
		ysv: ysv,
		dx:  -float64(xsv) - ssv,
		dy:  -float64(ysv) - ssv,
	}
}

// Eight cell-partition cases of four contributing lattice points each, keyed
// by a 3-bit code derived from the fractional lattice offsets.
var lattice2D = buildLattice2D()

func buildLattice2D() [32]latticePoint {
	var table [32]latticePoint
	for i := 0; i < 8; i++ {
		var i1, j1, i2, j2 int
		if i&1 == 0 {
			if i&2 == 0 {
				i1, j1 = -1, 0
			} else {
				i1, j1 = 1, 0
			}
			if i&4 == 0 {
				i2, j2 = 0, -1
			} else {
				i2, j2 = 0, 1
			}
		} else {
			if i&2 != 0 {
				i1, j1 = 2, 1
			} else {
				i1, j1 = 0, 1
			}
			if i&4 != 0 {
				i2, j2 = 1, 2
			} else {
				i2, j2 = 1, 0
			}
		}
		table[i*4+0] = newLatticePoint(0, 0)
		table[i*4+1] = newLatticePoint(1, 1)
		table[i*4+2] = newLatticePoint(i1, j1)
		table[i*4+3] = newLatticePoint(i2, j2)
	}
	return table
}

// Gradient is the skewed-lattice coherent noise kernel. The zero value is
// ready to use; the embedded permutation table is built lazily for whichever
// seed is queried and reused while the seed stays the same. A Gradient value
// must not be shared across goroutines querying different seeds.
type Gradient struct {
	table permTable
}

// Noise2D evaluates the kernel at (x, y) for the given seed. Output lands
// approximately in [-1, 1] and is bit-identical for equal inputs.
func (g *Gradient) Noise2D(seed int64, x, y float64) float64 {
	g.table.ensure(seed)

	s := stretch2D * (x + y)
	xs, ys := x+s, y+s
	xsb, ysb := fastFloor(xs), fastFloor(ys)
	xsi, ysi := xs-float64(xsb), ys-float64(ysb)

	a := int(xsi + ysi)
	index := a<<2 |
		int(xsi-ysi/2+1-float64(a)/2.0)<<3 |
		int(ysi-xsi/2+1-float64(a)/2.0)<<4

	ssi := (xsi + ysi) * squish2D
	xi, yi := xsi+ssi, ysi+ssi

	var value float64
	for i := 0; i < 4; i++ {
		li := index + i
		// Extreme coordinates can push the partition code out of the
		// table; such points contribute zero by contract.
		if li < 0 || li >= len(lattice2D) {
			continue
		}
		c := &lattice2D[li]
		dx, dy := xi+c.dx, yi+c.dy
		attn := attnRadius - dx*dx - dy*dy
		if attn <= 0 {
			continue
		}
		px := (xsb + c.xsv) & permMask
		py := (ysb + c.ysv) & permMask
		gi := int(g.table.perm[px]) ^ py
		if gi < 0 || gi >= permSize {
			continue
		}
		grad := g.table.grads[gi]
		attn *= attn
		value += attn * attn * (grad.dx*dx + grad.dy*dy)
	}
	return value
}

// FractalNoise2D composes multiple octaves of the kernel.
func (g *Gradient) FractalNoise2D(seed int64, x, y, frequency, amplitude float64, octaves int, persistence, lacunarity float64) float64 {
	return Fractal(g.Noise2D, seed, x, y, frequency, amplitude, octaves, persistence, lacunarity)
}
