package indicator

import (
	"github.com/amirphl/ezpz-ti/internal/ti"
)

func Peaks(in Input, period, closestNeighbor int) ([]ti.Extremum, error) {
	return extrema("peaks", in, period, closestNeighbor, ti.Peaks)
}

func Valleys(in Input, period, closestNeighbor int) ([]ti.Extremum, error) {
	return extrema("valleys", in, period, closestNeighbor, ti.Valleys)
}

func extrema(name string, in Input, period, closestNeighbor int, fn func([]float64, int, int) []ti.Extremum) ([]ti.Extremum, error) {
	x, err := resolveOne(name, in)
	if err != nil {
		return nil, err
	}
	if err := requirePeriod("period", period, 1); err != nil {
		return nil, err
	}
	if err := requirePeriod("closest_neighbor", closestNeighbor, 0); err != nil {
		return nil, err
	}
	return fn(x, period, closestNeighbor), nil
}

// PeakTrend fits a line through the peaks of every period-wide window.
func PeakTrend(in Input, period int) (ti.Trend, error) {
	return fitExtrema("peak_trend", in, period, ti.Peaks)
}

func ValleyTrend(in Input, period int) (ti.Trend, error) {
	return fitExtrema("valley_trend", in, period, ti.Valleys)
}

// OverallTrend fits a line through every value.
func OverallTrend(in Input) (ti.Trend, error) {
	const name = "overall_trend"
	x, err := resolveOne(name, in)
	if err != nil {
		return ti.Trend{}, err
	}
	if err := requireObservations(name, x, 2); err != nil {
		return ti.Trend{}, err
	}
	return ti.OverallTrend(x), nil
}

func fitExtrema(name string, in Input, period int, fn func([]float64, int, int) []ti.Extremum) (ti.Trend, error) {
	points, err := extrema(name, in, period, 1, fn)
	if err != nil {
		return ti.Trend{}, err
	}
	if len(points) < 2 {
		return ti.Trend{}, &EmptyInputError{Name: name, Minimum: 2}
	}
	return ti.FitTrend(points), nil
}
