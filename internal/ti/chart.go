package ti

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Extremum is a local peak or valley and its position in the input.
type Extremum struct {
	Value float64
	Index int
}

// Trend is a least-squares line over positions.
type Trend struct {
	Slope     float64
	Intercept float64
}

// Peaks scans every window of period values for its highest value (first
// occurrence). Peaks within closestNeighbor positions of the previous peak
// replace it only when higher. The result is ordered by index.
func Peaks(x []float64, period, closestNeighbor int) []Extremum {
	return extrema(x, period, closestNeighbor, func(a, b float64) bool { return a > b })
}

// Valleys is Peaks for the lowest values.
func Valleys(x []float64, period, closestNeighbor int) []Extremum {
	return extrema(x, period, closestNeighbor, func(a, b float64) bool { return a < b })
}

func extrema(x []float64, period, closestNeighbor int, better func(a, b float64) bool) []Extremum {
	out := []Extremum{}
	Windows(len(x), period, func(lo, hi int) {
		idx := lo
		for i := lo + 1; i < hi; i++ {
			if better(x[i], x[idx]) {
				idx = i
			}
		}
		if len(out) > 0 {
			last := &out[len(out)-1]
			if last.Index == idx {
				return
			}
			if idx-last.Index <= closestNeighbor {
				if better(x[idx], last.Value) {
					*last = Extremum{Value: x[idx], Index: idx}
				}
				return
			}
		}
		out = append(out, Extremum{Value: x[idx], Index: idx})
	}, x)
	return out
}

// FitTrend regresses the values on their indices. Fewer than two points give NaN.
func FitTrend(points []Extremum) Trend {
	if len(points) < 2 {
		return Trend{Slope: math.NaN(), Intercept: math.NaN()}
	}
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = float64(p.Index)
		ys[i] = p.Value
	}
	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	return Trend{Slope: slope, Intercept: intercept}
}

func PeakTrend(x []float64, period int) Trend {
	return FitTrend(Peaks(x, period, 1))
}

func ValleyTrend(x []float64, period int) Trend {
	return FitTrend(Valleys(x, period, 1))
}

func OverallTrend(x []float64) Trend {
	points := make([]Extremum, len(x))
	for i, v := range x {
		points[i] = Extremum{Value: v, Index: i}
	}
	return FitTrend(points)
}
