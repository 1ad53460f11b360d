package ti

import "math"

func nanSlice(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}

// Windows calls fn(lo, hi) for every full window [lo, hi) of period rows.
// Windows in which any of the inputs holds a NaN are skipped, so NaN-padded
// intermediates compose without special offsets.
func Windows(n, period int, fn func(lo, hi int), inputs ...[]float64) {
	if period < 1 || period > n {
		return
	}
	lastNaN := -1
	for hi := 1; hi <= n; hi++ {
		for _, in := range inputs {
			if math.IsNaN(in[hi-1]) {
				lastNaN = hi - 1
			}
		}
		lo := hi - period
		if lo < 0 || lastNaN >= lo {
			continue
		}
		fn(lo, hi)
	}
}

// Rolling applies fn to every full window of x.
func Rolling(x []float64, period int, fn func([]float64) float64) []float64 {
	out := nanSlice(len(x))
	Windows(len(x), period, func(lo, hi int) {
		out[hi-1] = fn(x[lo:hi])
	}, x)
	return out
}

// talibWindow runs a go-talib windowed function and turns its zero-filled
// lookback into NaN. go-talib indexes past the input when it is shorter than
// the window, and its running sums never recover from a NaN, so those cases
// are answered by rolling the single function instead.
func talibWindow(x []float64, period int, fn func([]float64, int) []float64, single func([]float64) float64) []float64 {
	if period < 1 || len(x) < period {
		return nanSlice(len(x))
	}
	if period < 2 || hasNaN(x) {
		return Rolling(x, period, single)
	}
	return padLookback(fn(x, period), period-1)
}

func hasNaN(inputs ...[]float64) bool {
	for _, in := range inputs {
		for _, v := range in {
			if math.IsNaN(v) {
				return true
			}
		}
	}
	return false
}

func padLookback(out []float64, lookback int) []float64 {
	for i := 0; i < lookback && i < len(out); i++ {
		out[i] = math.NaN()
	}
	return out
}
