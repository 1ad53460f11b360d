package ti

import "math"

// CorrelateAssetPrices centres both series on the model's value and returns
// the normalised inner product, so the result stays in [-1, 1] and a series
// against itself is exactly 1. The deviation scale cancels out: deviation only
// changes the result when it is zero for either series, which yields NaN.
func CorrelateAssetPrices(a, b []float64, model ConstantModel, deviation DeviationModel) float64 {
	centerA, centerB := model.Apply(a), model.Apply(b)
	devA, devB := deviation.Apply(a), deviation.Apply(b)
	var sab, saa, sbb float64
	for i := range a {
		za := (a[i] - centerA) / devA
		zb := (b[i] - centerB) / devB
		sab += za * zb
		saa += za * za
		sbb += zb * zb
	}
	return sab / math.Sqrt(saa*sbb)
}

func CorrelateAssetPricesBulk(a, b []float64, model ConstantModel, deviation DeviationModel, period int) []float64 {
	out := nanSlice(len(a))
	Windows(len(a), period, func(lo, hi int) {
		out[hi-1] = CorrelateAssetPrices(a[lo:hi], b[lo:hi], model, deviation)
	}, a, b)
	return out
}
