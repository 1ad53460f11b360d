package ti

import (
	"math"

	"github.com/markcheno/go-talib"
)

// StochasticOscillator places the last value of the window within its range.
// A flat window reads 50.
func StochasticOscillator(x []float64) float64 {
	highest, lowest := Max(x), Min(x)
	if highest == lowest {
		return 50
	}
	return 100 * (x[len(x)-1] - lowest) / (highest - lowest)
}

func StochasticOscillatorBulk(x []float64, period int) []float64 {
	return Rolling(x, period, StochasticOscillator)
}

// SlowStochastic smooths stochastic values with model. The slowest stochastic
// is the same smoothing applied to slow values.
func SlowStochastic(stochastics []float64, model ConstantModel) float64 {
	return model.Apply(stochastics)
}

func SlowStochasticBulk(stochastics []float64, model ConstantModel, period int) []float64 {
	return Rolling(stochastics, period, model.Apply)
}

// WilliamsPercentR of close against the high/low range of the window, in
// [-100, 0]. A flat range reads -50.
func WilliamsPercentR(high, low []float64, close float64) float64 {
	highest, lowest := Max(high), Min(low)
	if highest == lowest {
		return -50
	}
	return -100 * (highest - close) / (highest - lowest)
}

func WilliamsPercentRBulk(high, low, close []float64, period int) []float64 {
	n := len(close)
	if period < 2 || n < period || hasNaN(high, low, close) {
		out := nanSlice(n)
		Windows(n, period, func(lo, hi int) {
			out[hi-1] = WilliamsPercentR(high[lo:hi], low[lo:hi], close[hi-1])
		}, high, low, close)
		return out
	}
	out := padLookback(talib.WillR(high, low, close, period), period-1)
	// go-talib reads a flat range as 0
	highest, lowest := talib.Max(high, period), talib.Min(low, period)
	for i := period - 1; i < n; i++ {
		if highest[i] == lowest[i] {
			out[i] = -50
		}
	}
	return out
}

// MoneyFlowIndex over a window of typical prices and volumes. A window
// without negative flow reads 100.
func MoneyFlowIndex(prices, volume []float64) float64 {
	var positive, negative float64
	for i := 1; i < len(prices); i++ {
		flow := prices[i] * volume[i]
		switch {
		case prices[i] > prices[i-1]:
			positive += flow
		case prices[i] < prices[i-1]:
			negative += flow
		}
	}
	if negative == 0 {
		return 100
	}
	return 100 - 100/(1+positive/negative)
}

func MoneyFlowIndexBulk(prices, volume []float64, period int) []float64 {
	out := nanSlice(len(prices))
	Windows(len(prices), period, func(lo, hi int) {
		out[hi-1] = MoneyFlowIndex(prices[lo:hi], volume[lo:hi])
	}, prices, volume)
	return out
}

// RateOfChange in percent.
func RateOfChange(current, previous float64) float64 {
	return (current - previous) / previous * 100
}

func RateOfChangeBulk(x []float64) []float64 {
	out := nanSlice(len(x))
	for i := 1; i < len(x); i++ {
		out[i] = RateOfChange(x[i], x[i-1])
	}
	return out
}

func OnBalanceVolume(current, previous, volume, previousOBV float64) float64 {
	switch {
	case current > previous:
		return previousOBV + volume
	case current < previous:
		return previousOBV - volume
	}
	return previousOBV
}

// OnBalanceVolumeBulk accumulates from previousOBV; index 0 is NaN.
func OnBalanceVolumeBulk(prices, volume []float64, previousOBV float64) []float64 {
	out := nanSlice(len(prices))
	obv := previousOBV
	for i := 1; i < len(prices); i++ {
		obv = OnBalanceVolume(prices[i], prices[i-1], volume[i], obv)
		out[i] = obv
	}
	return out
}

// CommodityChannelIndex measures the last value against the window's central
// value in units of multiplier * deviation.
func CommodityChannelIndex(x []float64, model ConstantModel, deviation DeviationModel, multiplier float64) float64 {
	return (x[len(x)-1] - model.Apply(x)) / (multiplier * deviation.Apply(x))
}

func CommodityChannelIndexBulk(x []float64, model ConstantModel, deviation DeviationModel, multiplier float64, period int) []float64 {
	return Rolling(x, period, func(w []float64) float64 {
		return CommodityChannelIndex(w, model, deviation, multiplier)
	})
}

// McginleyDynamicCommodityChannelIndex uses the McGinley dynamic of the last
// value as the central value. It returns the index and the new dynamic.
func McginleyDynamicCommodityChannelIndex(x []float64, previous float64, deviation DeviationModel, multiplier float64) (float64, float64) {
	last := x[len(x)-1]
	md := McginleyDynamic(last, previous, len(x))
	return (last - md) / (multiplier * deviation.Apply(x)), md
}

func McginleyDynamicCommodityChannelIndexBulk(x []float64, previous float64, deviation DeviationModel, multiplier float64, period int) (cci, md []float64) {
	cci, md = nanSlice(len(x)), nanSlice(len(x))
	Windows(len(x), period, func(lo, hi int) {
		cci[hi-1], previous = McginleyDynamicCommodityChannelIndex(x[lo:hi], previous, deviation, multiplier)
		md[hi-1] = previous
	}, x)
	return cci, md
}

func MacdLineBulk(x []float64, short int, shortModel ConstantModel, long int, longModel ConstantModel) []float64 {
	return Rolling(x, max(short, long), func(w []float64) float64 {
		return MacdLine(w, short, shortModel, long, longModel)
	})
}

func SignalLine(macds []float64, model ConstantModel) float64 {
	return model.Apply(macds)
}

func SignalLineBulk(macds []float64, model ConstantModel, period int) []float64 {
	return Rolling(macds, period, model.Apply)
}

// McginleyDynamicMacdSeries holds the line and the two dynamics it is built from.
type McginleyDynamicMacdSeries struct {
	Macd          []float64
	ShortMcginley []float64
	LongMcginley  []float64
}

func McginleyDynamicMacdLineBulk(x []float64, short int, previousShort float64, long int, previousLong float64) McginleyDynamicMacdSeries {
	out := McginleyDynamicMacdSeries{
		Macd:          nanSlice(len(x)),
		ShortMcginley: McginleyDynamicBulk(x, previousShort, short),
		LongMcginley:  McginleyDynamicBulk(x, previousLong, long),
	}
	for i := range x {
		out.Macd[i] = out.ShortMcginley[i] - out.LongMcginley[i]
	}
	return out
}

// ChaikinOscillatorBulk returns the oscillator over the accumulation/distribution
// line seeded with previous, together with that line.
func ChaikinOscillatorBulk(high, low, close, volume []float64, short, long int, previous float64, shortModel, longModel ConstantModel) (oscillator, ad []float64) {
	ad = AccumulationDistributionBulk(high, low, close, volume, previous)
	oscillator = Rolling(ad, max(short, long), func(w []float64) float64 {
		return MacdLine(w, short, shortModel, long, longModel)
	})
	return oscillator, ad
}

// PercentagePriceOscillator is the MACD line expressed in percent of the long average.
func PercentagePriceOscillator(x []float64, short, long int, model ConstantModel) float64 {
	longAvg := model.Apply(x[len(x)-long:])
	return (model.Apply(x[len(x)-short:]) - longAvg) / longAvg * 100
}

func PercentagePriceOscillatorBulk(x []float64, short, long int, model ConstantModel) []float64 {
	return Rolling(x, max(short, long), func(w []float64) float64 {
		return PercentagePriceOscillator(w, short, long, model)
	})
}

// ChandeMomentumOscillator compares the sum of gains with the sum of losses
// in the window. A window without movement reads 0.
func ChandeMomentumOscillator(x []float64) float64 {
	var up, down float64
	for i := 1; i < len(x); i++ {
		change := x[i] - x[i-1]
		if change > 0 {
			up += change
		} else {
			down -= change
		}
	}
	if up+down == 0 {
		return 0
	}
	return 100 * (up - down) / (up + down)
}

func ChandeMomentumOscillatorBulk(x []float64, period int) []float64 {
	return Rolling(x, period, ChandeMomentumOscillator)
}

func absAll(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = math.Abs(v)
	}
	return out
}

// Full stochastic defaults: %K length, %K smoothing and %D smoothing.
const (
	StochasticPeriodK = 14
	StochasticSmoothK = 1
	StochasticPeriodD = 3
)

// FullStochasticBulk places each close within the high/low range of the last
// periodK bars, smooths that with a smoothK SMA into %K and averages %K over
// periodD bars into %D. A flat range reads 50.
func FullStochasticBulk(high, low, close []float64, periodK, smoothK, periodD int) (k, d []float64) {
	raw := nanSlice(len(close))
	Windows(len(close), periodK, func(lo, hi int) {
		highest, lowest := Max(high[lo:hi]), Min(low[lo:hi])
		if highest == lowest {
			raw[hi-1] = 50
			return
		}
		raw[hi-1] = 100 * (close[hi-1] - lowest) / (highest - lowest)
	}, high, low, close)
	k = Rolling(raw, smoothK, Mean)
	return k, Rolling(k, periodD, Mean)
}
