package ti

import (
	"math"

	"github.com/markcheno/go-talib"
)

// PersonalisedMovingAverage weights the window with alpha = num / (n + den),
// the newest observation heaviest. EMA is (2, 1), SMMA is (1, 0).
func PersonalisedMovingAverage(x []float64, alphaNum, alphaDen float64) float64 {
	alpha := alphaNum / (float64(len(x)) + alphaDen)
	var num, den float64
	w := 1.0
	for i := len(x) - 1; i >= 0; i-- {
		num += x[i] * w
		den += w
		w *= 1 - alpha
	}
	return num / den
}

func PersonalisedMovingAverageBulk(x []float64, alphaNum, alphaDen float64, period int) []float64 {
	return Rolling(x, period, func(w []float64) float64 {
		return PersonalisedMovingAverage(w, alphaNum, alphaDen)
	})
}

// MovingAverageBulk uses go-talib for the simple average and rolls the
// weighted models so each window matches the single function.
func MovingAverageBulk(x []float64, model ConstantModel, period int) []float64 {
	if model == SimpleMovingAverage {
		return talibWindow(x, period, talib.Sma, Mean)
	}
	return Rolling(x, period, model.Apply)
}

// McginleyDynamic adjusts the previous value towards latest. A zero previous
// value seeds the line with latest.
func McginleyDynamic(latest, previous float64, period int) float64 {
	if previous == 0 {
		return latest
	}
	return previous + (latest-previous)/(float64(period)*math.Pow(latest/previous, 4))
}

// McginleyDynamicBulk carries the dynamic forward from previous, emitting
// from the first full window on.
func McginleyDynamicBulk(x []float64, previous float64, period int) []float64 {
	out := nanSlice(len(x))
	if period < 1 {
		return out
	}
	md := previous
	for i := period - 1; i < len(x); i++ {
		md = McginleyDynamic(x[i], md, period)
		out[i] = md
	}
	return out
}
