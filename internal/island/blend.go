package island

// blendRow fills one row of the blend map from normalized height and slope
// sampled off the committed heightmap. Weights are not renormalized to sum
// to 1; that is left to the consumer. The dirt layer weight is always zero
// in the source formulas and is reproduced that way on purpose.
func (w *World) blendRow(y int) {
	res := w.blend.W
	minLand := w.minLandHeight()
	amplitude := w.cfg.Shape.Amplitude

	v := float64(y) / float64(res-1)
	for x := 0; x < res; x++ {
		u := float64(x) / float64(res-1)

		h := w.sampler.HeightAt(u, v) / amplitude
		s := w.sampler.SteepnessAt(u, v) / 90

		t := 1.0
		if minLand > 0 {
			t = h / minLand
		}

		w.blend.Set(x, y, LayerSand, lerp(1, 0, t))
		w.blend.Set(x, y, LayerDirt, 0)
		w.blend.Set(x, y, LayerGrass, lerp(0, 1, t)*(1-s))
		w.blend.Set(x, y, LayerRock, s)
	}
}
