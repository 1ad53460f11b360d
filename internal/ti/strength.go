package ti

import (
	"math"

	"github.com/markcheno/go-talib"
)

// DefaultVolumeIndex is the level a volume index starts from when no previous
// value is given.
const DefaultVolumeIndex = 100.0

// AccumulationDistribution adds the bar's money flow volume to previous. A bar
// without range adds nothing.
func AccumulationDistribution(high, low, close, volume, previous float64) float64 {
	if high == low {
		return previous
	}
	return previous + ((close-low)-(high-close))/(high-low)*volume
}

func AccumulationDistributionBulk(high, low, close, volume []float64, previous float64) []float64 {
	n := len(close)
	if n == 0 {
		return []float64{}
	}
	if hasNaN(high, low, close, volume) {
		out := make([]float64, n)
		ad := previous
		for i := range n {
			ad = AccumulationDistribution(high[i], low[i], close[i], volume[i], ad)
			out[i] = ad
		}
		return out
	}
	out := talib.Ad(high, low, close, volume)
	for i := range out {
		out[i] += previous
	}
	return out
}

// VolumeIndex moves previousIndex by the percentage change of the close.
func VolumeIndex(current, previous, previousIndex float64) float64 {
	if previousIndex == 0 {
		previousIndex = DefaultVolumeIndex
	}
	return previousIndex + (current-previous)/previous*previousIndex
}

func volumeIndexBulk(closes, volumes []float64, previous float64, moves func(cur, prev float64) bool) []float64 {
	out := make([]float64, len(closes))
	if len(closes) == 0 {
		return out
	}
	if previous == 0 {
		previous = DefaultVolumeIndex
	}
	out[0] = previous
	for i := 1; i < len(closes); i++ {
		out[i] = out[i-1]
		if moves(volumes[i], volumes[i-1]) {
			out[i] = VolumeIndex(closes[i], closes[i-1], out[i-1])
		}
	}
	return out
}

// PositiveVolumeIndexBulk only moves on rising volume.
func PositiveVolumeIndexBulk(closes, volumes []float64, previous float64) []float64 {
	return volumeIndexBulk(closes, volumes, previous, func(cur, prev float64) bool { return cur > prev })
}

// NegativeVolumeIndexBulk only moves on falling volume.
func NegativeVolumeIndexBulk(closes, volumes []float64, previous float64) []float64 {
	return volumeIndexBulk(closes, volumes, previous, func(cur, prev float64) bool { return cur < prev })
}

// RelativeVigorIndex compares the weighted close-open moves of the window with
// its weighted ranges, each reduced with model. Needs at least four bars.
func RelativeVigorIndex(open, high, low, close []float64, model ConstantModel) float64 {
	n := len(close)
	if n < 4 {
		return math.NaN()
	}
	numerators := make([]float64, 0, n-3)
	denominators := make([]float64, 0, n-3)
	for i := 3; i < n; i++ {
		num := (close[i] - open[i]) + 2*(close[i-1]-open[i-1]) + 2*(close[i-2]-open[i-2]) + (close[i-3] - open[i-3])
		den := (high[i] - low[i]) + 2*(high[i-1]-low[i-1]) + 2*(high[i-2]-low[i-2]) + (high[i-3] - low[i-3])
		numerators = append(numerators, num/6)
		denominators = append(denominators, den/6)
	}
	return model.Apply(numerators) / model.Apply(denominators)
}

func RelativeVigorIndexBulk(open, high, low, close []float64, model ConstantModel, period int) []float64 {
	out := nanSlice(len(close))
	Windows(len(close), period, func(lo, hi int) {
		out[hi-1] = RelativeVigorIndex(open[lo:hi], high[lo:hi], low[lo:hi], close[lo:hi], model)
	}, open, high, low, close)
	return out
}
