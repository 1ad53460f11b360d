package indicator

import (
	"github.com/amirphl/ezpz-ti/internal/frame"
	"github.com/amirphl/ezpz-ti/internal/ti"
)

func MeanSingle(in Input) (float64, error) {
	return single("mean_single", in, ti.Mean)
}

func MedianSingle(in Input) (float64, error) {
	return single("median_single", in, ti.Median)
}

func ModeSingle(in Input) (float64, error) {
	return single("mode_single", in, ti.Mode)
}

// VarianceSingle is the population variance.
func VarianceSingle(in Input) (float64, error) {
	return single("variance_single", in, ti.Variance)
}

func StandardDeviationSingle(in Input) (float64, error) {
	return single("standard_deviation_single", in, ti.StdDev)
}

func MaxSingle(in Input) (float64, error) {
	return single("max_single", in, ti.Max)
}

func MinSingle(in Input) (float64, error) {
	return single("min_single", in, ti.Min)
}

func AbsoluteDeviationSingle(in Input, centralPoint string) (float64, error) {
	const name = "absolute_deviation_single"
	x, err := resolveOne(name, in)
	if err != nil {
		return 0, err
	}
	center, err := ParseCentralPoint(centralPoint)
	if err != nil {
		return 0, err
	}
	if err := requireObservations(name, x, 1); err != nil {
		return 0, err
	}
	return ti.AbsoluteDeviation(x, center), nil
}

// LogDifferenceSingle is ln(priceT) - ln(priceT1).
func LogDifferenceSingle(priceT, priceT1 float64) float64 {
	return ti.LogDifference(priceT, priceT1)
}

func MeanBulk(in Input, period int) (frame.Column, error) {
	return bulk("mean_bulk", "mean", in, period, ti.MeanBulk)
}

func MedianBulk(in Input, period int) (frame.Column, error) {
	return bulk("median_bulk", "median", in, period, ti.MedianBulk)
}

func ModeBulk(in Input, period int) (frame.Column, error) {
	return bulk("mode_bulk", "mode", in, period, ti.ModeBulk)
}

func VarianceBulk(in Input, period int) (frame.Column, error) {
	return bulk("variance_bulk", "variance", in, period, ti.VarianceBulk)
}

func StandardDeviationBulk(in Input, period int) (frame.Column, error) {
	return bulk("standard_deviation_bulk", "standard_deviation", in, period, ti.StdDevBulk)
}

func AbsoluteDeviationBulk(in Input, period int, centralPoint string) (frame.Column, error) {
	const name = "absolute_deviation_bulk"
	x, err := resolveOne(name, in)
	if err != nil {
		return frame.Column{}, err
	}
	center, err := ParseCentralPoint(centralPoint)
	if err != nil {
		return frame.Column{}, err
	}
	if err := requirePeriod("period", period, 1); err != nil {
		return frame.Column{}, err
	}
	return frame.NewFloat64("absolute_deviation", ti.AbsoluteDeviationBulk(x, period, center)), nil
}

// LogBulk is the element-wise natural logarithm.
func LogBulk(in Input) (frame.Column, error) {
	x, err := resolveOne("log_bulk", in)
	if err != nil {
		return frame.Column{}, err
	}
	return frame.NewFloat64("log", ti.LogBulk(x)), nil
}

// LogDifferenceBulk keeps the input length; the first row is NaN.
func LogDifferenceBulk(in Input) (frame.Column, error) {
	x, err := resolveOne("log_difference_bulk", in)
	if err != nil {
		return frame.Column{}, err
	}
	return frame.NewFloat64("log_difference", ti.LogDifferenceBulk(x)), nil
}
