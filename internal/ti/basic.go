package ti

import (
	"math"
	"slices"

	"github.com/markcheno/go-talib"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// The single functions below expect a non-empty window.

func Mean(x []float64) float64 {
	return stat.Mean(x, nil)
}

// Median averages the two middle values of an even-length window.
func Median(x []float64) float64 {
	s := slices.Clone(x)
	slices.Sort(s)
	n := len(s)
	if n%2 == 1 {
		return s[n/2]
	}
	return (s[n/2-1] + s[n/2]) / 2
}

// Mode returns the most frequent value. Ties are averaged.
func Mode(x []float64) float64 {
	s := slices.Clone(x)
	slices.Sort(s)

	best := 0
	var tied []float64
	for i := 0; i < len(s); {
		j := i
		for j < len(s) && s[j] == s[i] {
			j++
		}
		// NaN never compares equal, so it forms runs of one
		if j == i {
			j++
		}
		switch count := j - i; {
		case count > best:
			best = count
			tied = append(tied[:0], s[i])
		case count == best:
			tied = append(tied, s[i])
		}
		i = j
	}
	return Mean(tied)
}

// Variance is the population variance.
func Variance(x []float64) float64 {
	return stat.PopVariance(x, nil)
}

func StdDev(x []float64) float64 {
	return math.Sqrt(Variance(x))
}

func Max(x []float64) float64 {
	return floats.Max(x)
}

func Min(x []float64) float64 {
	return floats.Min(x)
}

// AbsoluteDeviation is the mean distance of x from the chosen central point.
func AbsoluteDeviation(x []float64, center CentralPoint) float64 {
	c := center.Apply(x)
	var sum float64
	for _, v := range x {
		sum += math.Abs(v - c)
	}
	return sum / float64(len(x))
}

func LogDifference(priceT, priceT1 float64) float64 {
	return math.Log(priceT) - math.Log(priceT1)
}

func MeanBulk(x []float64, period int) []float64 {
	return talibWindow(x, period, talib.Sma, Mean)
}

func MedianBulk(x []float64, period int) []float64 {
	return Rolling(x, period, Median)
}

func ModeBulk(x []float64, period int) []float64 {
	return Rolling(x, period, Mode)
}

// VarianceBulk rolls the two-pass Variance. go-talib's running sums of
// squares cancel catastrophically once values reach volume magnitudes.
func VarianceBulk(x []float64, period int) []float64 {
	return Rolling(x, period, Variance)
}

func StdDevBulk(x []float64, period int) []float64 {
	return Rolling(x, period, StdDev)
}

func MaxBulk(x []float64, period int) []float64 {
	return talibWindow(x, period, talib.Max, Max)
}

func MinBulk(x []float64, period int) []float64 {
	return talibWindow(x, period, talib.Min, Min)
}

func AbsoluteDeviationBulk(x []float64, period int, center CentralPoint) []float64 {
	return Rolling(x, period, func(w []float64) float64 {
		return AbsoluteDeviation(w, center)
	})
}

// LogBulk is the element-wise natural logarithm.
func LogBulk(x []float64) []float64 {
	if len(x) == 0 {
		return []float64{}
	}
	return talib.Ln(x)
}

// LogDifferenceBulk has the same length as x; index 0 has no predecessor and is NaN.
func LogDifferenceBulk(x []float64) []float64 {
	out := nanSlice(len(x))
	for i := 1; i < len(x); i++ {
		out[i] = LogDifference(x[i], x[i-1])
	}
	return out
}
