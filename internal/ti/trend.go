package ti

import "math"

// AroonUp is 100 when the window's highest high is its last value and 0 when
// it is the first. Ties count as the most recent occurrence.
func AroonUp(highs []float64) float64 {
	idx := 0
	for i, v := range highs {
		if v >= highs[idx] {
			idx = i
		}
	}
	return 100 * float64(idx) / float64(len(highs)-1)
}

func AroonDown(lows []float64) float64 {
	idx := 0
	for i, v := range lows {
		if v <= lows[idx] {
			idx = i
		}
	}
	return 100 * float64(idx) / float64(len(lows)-1)
}

func AroonOscillator(up, down float64) float64 {
	return up - down
}

type Aroon struct {
	Up         float64
	Down       float64
	Oscillator float64
}

func AroonIndicator(highs, lows []float64) Aroon {
	up, down := AroonUp(highs), AroonDown(lows)
	return Aroon{Up: up, Down: down, Oscillator: AroonOscillator(up, down)}
}

func AroonUpBulk(highs []float64, period int) []float64 {
	return Rolling(highs, period, AroonUp)
}

func AroonDownBulk(lows []float64, period int) []float64 {
	return Rolling(lows, period, AroonDown)
}

func AroonOscillatorBulk(up, down []float64) []float64 {
	out := make([]float64, len(up))
	for i := range up {
		out[i] = AroonOscillator(up[i], down[i])
	}
	return out
}

type AroonSeries struct {
	Up         []float64
	Down       []float64
	Oscillator []float64
}

func AroonIndicatorBulk(highs, lows []float64, period int) AroonSeries {
	up, down := AroonUpBulk(highs, period), AroonDownBulk(lows, period)
	return AroonSeries{Up: up, Down: down, Oscillator: AroonOscillatorBulk(up, down)}
}

// LongParabolicTimePriceSystem moves the stop towards the extreme point and
// never above low.
func LongParabolicTimePriceSystem(previousSAR, extremePoint, accelerationFactor, low float64) float64 {
	return math.Min(previousSAR+accelerationFactor*(extremePoint-previousSAR), low)
}

// ShortParabolicTimePriceSystem is the mirror of the long system, never below high.
func ShortParabolicTimePriceSystem(previousSAR, extremePoint, accelerationFactor, high float64) float64 {
	return math.Max(previousSAR-accelerationFactor*(previousSAR-extremePoint), high)
}

// ParabolicTimePriceSystemBulk runs the stop-and-reverse system starting on
// position. A zero previousSAR starts from the first low (long) or high (short).
func ParabolicTimePriceSystemBulk(highs, lows []float64, afStart, afStep, afMax float64, position Position, previousSAR float64) []float64 {
	n := len(highs)
	out := nanSlice(n)
	if n == 0 {
		return out
	}

	sar := previousSAR
	ep := highs[0]
	if position == Short {
		ep = lows[0]
	}
	if sar == 0 || math.IsNaN(sar) {
		sar = lows[0]
		if position == Short {
			sar = highs[0]
		}
	}
	af := afStart
	out[0] = sar

	for i := 1; i < n; i++ {
		if position == Long {
			limit := lows[i-1]
			if i > 1 {
				limit = math.Min(limit, lows[i-2])
			}
			sar = LongParabolicTimePriceSystem(sar, ep, af, limit)
			if lows[i] < sar {
				position, sar, ep, af = Short, ep, lows[i], afStart
			} else if highs[i] > ep {
				ep, af = highs[i], math.Min(af+afStep, afMax)
			}
		} else {
			limit := highs[i-1]
			if i > 1 {
				limit = math.Max(limit, highs[i-2])
			}
			sar = ShortParabolicTimePriceSystem(sar, ep, af, limit)
			if highs[i] > sar {
				position, sar, ep, af = Long, ep, highs[i], afStart
			} else if lows[i] < ep {
				ep, af = lows[i], math.Min(af+afStep, afMax)
			}
		}
		out[i] = sar
	}
	return out
}

// DirectionalMovementSeries is the output of the directional movement system.
type DirectionalMovementSeries struct {
	PositiveDI []float64
	NegativeDI []float64
	ADX        []float64
	ADXR       []float64
}

// DirectionalMovementSystemBulk averages directional movement and true range
// with model over period rows.
func DirectionalMovementSystemBulk(highs, lows, closes []float64, period int, model ConstantModel) DirectionalMovementSeries {
	n := len(highs)
	plusDM, minusDM, tr := nanSlice(n), nanSlice(n), nanSlice(n)
	for i := 1; i < n; i++ {
		up := highs[i] - highs[i-1]
		down := lows[i-1] - lows[i]
		plusDM[i], minusDM[i] = 0, 0
		if up > down && up > 0 {
			plusDM[i] = up
		}
		if down > up && down > 0 {
			minusDM[i] = down
		}
		tr[i] = TrueRange(closes[i-1], highs[i], lows[i])
	}

	avgTR := Rolling(tr, period, model.Apply)
	avgPlus := Rolling(plusDM, period, model.Apply)
	avgMinus := Rolling(minusDM, period, model.Apply)

	out := DirectionalMovementSeries{
		PositiveDI: make([]float64, n),
		NegativeDI: make([]float64, n),
		ADXR:       nanSlice(n),
	}
	dx := make([]float64, n)
	for i := range n {
		out.PositiveDI[i] = 100 * avgPlus[i] / avgTR[i]
		out.NegativeDI[i] = 100 * avgMinus[i] / avgTR[i]
		dx[i] = 100 * math.Abs(out.PositiveDI[i]-out.NegativeDI[i]) / (out.PositiveDI[i] + out.NegativeDI[i])
	}
	out.ADX = Rolling(dx, period, model.Apply)
	for i := period - 1; i < n; i++ {
		out.ADXR[i] = (out.ADX[i] + out.ADX[i-period+1]) / 2
	}
	return out
}

func VolumePriceTrend(current, previous, volume, previousVPT float64) float64 {
	return previousVPT + volume*(current-previous)/previous
}

// VolumePriceTrendBulk accumulates from previousVPT; index 0 is NaN.
func VolumePriceTrendBulk(prices, volumes []float64, previousVPT float64) []float64 {
	out := nanSlice(len(prices))
	vpt := previousVPT
	for i := 1; i < len(prices); i++ {
		vpt = VolumePriceTrend(prices[i], prices[i-1], volumes[i], vpt)
		out[i] = vpt
	}
	return out
}

// TrueStrengthIndex double-smooths price momentum: the first model rolls over
// firstPeriod momenta, the second reduces what the first produced. The result
// is a ratio in [-1, 1]. The window needs at least firstPeriod+1 prices.
func TrueStrengthIndex(x []float64, firstModel ConstantModel, firstPeriod int, secondModel ConstantModel) float64 {
	momentum := make([]float64, len(x)-1)
	for i := 1; i < len(x); i++ {
		momentum[i-1] = x[i] - x[i-1]
	}
	smoothed := Rolling(momentum, firstPeriod, firstModel.Apply)
	absSmoothed := Rolling(absAll(momentum), firstPeriod, firstModel.Apply)
	if len(smoothed) < firstPeriod {
		return math.NaN()
	}
	return secondModel.Apply(smoothed[firstPeriod-1:]) / secondModel.Apply(absSmoothed[firstPeriod-1:])
}

func TrueStrengthIndexBulk(x []float64, firstModel ConstantModel, firstPeriod int, secondModel ConstantModel, secondPeriod int) []float64 {
	return Rolling(x, firstPeriod+secondPeriod, func(w []float64) float64 {
		return TrueStrengthIndex(w, firstModel, firstPeriod, secondModel)
	})
}
