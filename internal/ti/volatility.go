package ti

import "math"

// UlcerIndex is the root mean square of the percentage drawdowns from the
// running maximum of the window.
func UlcerIndex(x []float64) float64 {
	peak := x[0]
	var sum float64
	for _, v := range x {
		peak = math.Max(peak, v)
		drawdown := (v - peak) / peak * 100
		sum += drawdown * drawdown
	}
	return math.Sqrt(sum / float64(len(x)))
}

func UlcerIndexBulk(x []float64, period int) []float64 {
	return Rolling(x, period, UlcerIndex)
}

// VolatilitySystemBulk is Wilder's volatility system: a stop trailing the
// significant close by multiplier average true ranges, reversing when the
// close crosses it. The starting side follows the first window's direction.
func VolatilitySystemBulk(highs, lows, closes []float64, period int, multiplier float64, model ConstantModel) []float64 {
	n := len(closes)
	out := nanSlice(n)
	if period < 1 || period > n {
		return out
	}
	atr := AverageTrueRangeBulk(closes, highs, lows, model, period)

	start := period - 1
	long := closes[start] >= closes[0]
	sic := Max(closes[:start+1])
	if !long {
		sic = Min(closes[:start+1])
	}
	for i := start; i < n; i++ {
		arc := multiplier * atr[i]
		if long {
			sic = math.Max(sic, closes[i])
			sar := sic - arc
			if closes[i] < sar {
				long, sic = false, closes[i]
				sar = sic + arc
			}
			out[i] = sar
			continue
		}
		sic = math.Min(sic, closes[i])
		sar := sic + arc
		if closes[i] > sar {
			long, sic = true, closes[i]
			sar = sic - arc
		}
		out[i] = sar
	}
	return out
}
