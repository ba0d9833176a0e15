package noise

const (
	permSize = 2048
	permMask = permSize - 1

	gradientCount = 24

	// Normalization applied to the unit gradients so that summed quartic
	// contributions land approximately in [-1, 1].
	gradientNorm = 0.05481866495625118
)

type gradient struct {
	dx, dy float64
}

// Unit vectors at 15 degree increments around the circle, scaled by the
// normalization constant at init.
var baseGradients = buildBaseGradients()

func buildBaseGradients() [gradientCount]gradient {
	units := [gradientCount]gradient{
		{0.130526192220052, 0.99144486137381},
		{0.38268343236509, 0.923879532511287},
		{0.608761429008721, 0.793353340291235},
		{0.793353340291235, 0.608761429008721},
		{0.923879532511287, 0.38268343236509},
		{0.99144486137381, 0.130526192220051},
		{0.99144486137381, -0.130526192220051},
		{0.923879532511287, -0.38268343236509},
		{0.793353340291235, -0.60876142900872},
		{0.608761429008721, -0.793353340291235},
		{0.38268343236509, -0.923879532511287},
		{0.130526192220052, -0.99144486137381},
		{-0.130526192220052, -0.99144486137381},
		{-0.38268343236509, -0.923879532511287},
		{-0.608761429008721, -0.793353340291235},
		{-0.793353340291235, -0.608761429008721},
		{-0.923879532511287, -0.38268343236509},
		{-0.99144486137381, -0.130526192220052},
		{-0.99144486137381, 0.130526192220051},
		{-0.923879532511287, 0.38268343236509},
		{-0.793353340291235, 0.608761429008721},
		{-0.608761429008721, 0.793353340291235},
		{-0.38268343236509, 0.923879532511287},
		{-0.130526192220052, 0.99144486137381},
	}
	for i := range units {
		units[i].dx /= gradientNorm
		units[i].dy /= gradientNorm
	}
	return units
}

// permTable holds the seed-keyed permutation and gradient lookup. It is the
// only state cached across generation requests; rebuilds are skipped while
// the requested seed matches the cached one.
type permTable struct {
	seed  int64
	built bool
	perm  [permSize]int32
	grads [permSize]gradient
}

func (t *permTable) ensure(seed int64) {
	if t.built && t.seed == seed {
		return
	}
	t.rebuild(seed)
}

func (t *permTable) rebuild(seed int64) {
	var source [permSize]int32
	for i := range source {
		source[i] = int32(i)
	}
	state := seed
	for i := permSize - 1; i >= 0; i-- {
		state = state*6364136223846793005 + 1442695040888963407
		r := int((state + 31) % int64(i+1))
		if r < 0 {
			r += i + 1
		}
		t.perm[i] = source[r]
		t.grads[i] = baseGradients[int(t.perm[i])%gradientCount]
		source[r] = source[i]
	}
	t.seed = seed
	t.built = true
}
