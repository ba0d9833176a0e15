package island

import (
	"math"

	"isle-gen/internal/core"
)

// TerrainSampler provides bilinear height and slope queries over a committed
// heightmap, in the normalized (u, v) coordinates shared by the hole and
// blend passes.
type TerrainSampler struct {
	grid          *core.FloatGrid
	halfX, halfZ  float64
	verticalScale float64
}

// HeightAt bilinearly interpolates the heightmap at (u, v). Heightmap cell
// (x, y) sits at u = x/R, matching the synthesis pass.
func (s *TerrainSampler) HeightAt(u, v float64) float64 {
	res := s.grid.W
	px := clamp01(u) * float64(res)
	py := clamp01(v) * float64(res)

	x0 := int(px)
	y0 := int(py)
	if x0 > res-1 {
		x0 = res - 1
	}
	if y0 > res-1 {
		y0 = res - 1
	}
	x1 := x0 + 1
	y1 := y0 + 1
	if x1 > res-1 {
		x1 = res - 1
	}
	if y1 > res-1 {
		y1 = res - 1
	}
	fx := px - float64(x0)
	fy := py - float64(y0)

	top := s.grid.At(x0, y0)*(1-fx) + s.grid.At(x1, y0)*fx
	bottom := s.grid.At(x0, y1)*(1-fx) + s.grid.At(x1, y1)*fx
	return top*(1-fy) + bottom*fy
}

// SteepnessAt reports the terrain slope at (u, v) in degrees, from the
// world-space gradient of the interpolated height scaled by the vertical
// scale. Results lie in [0, 90).
func (s *TerrainSampler) SteepnessAt(u, v float64) float64 {
	du := 1 / float64(s.grid.W)

	u0, u1 := clamp01(u-du), clamp01(u+du)
	v0, v1 := clamp01(v-du), clamp01(v+du)

	var gradX, gradZ float64
	if u1 > u0 {
		gradX = (s.HeightAt(u1, v) - s.HeightAt(u0, v)) * s.verticalScale / ((u1 - u0) * 2 * s.halfX)
	}
	if v1 > v0 {
		gradZ = (s.HeightAt(u, v1) - s.HeightAt(u, v0)) * s.verticalScale / ((v1 - v0) * 2 * s.halfZ)
	}
	return math.Atan(math.Sqrt(gradX*gradX+gradZ*gradZ)) * 180 / math.Pi
}
