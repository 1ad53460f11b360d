// Package ti implements the numeric transforms behind the indicator entry
// points. Every function works on plain float64 slices; "single" functions
// reduce a whole window to a value, "bulk" functions return one value per
// input position, NaN until the first full window.
package ti

import "math"

// ConstantModel selects how a window is reduced to its central value.
type ConstantModel int

const (
	SimpleMovingAverage ConstantModel = iota
	SmoothedMovingAverage
	ExponentialMovingAverage
	SimpleMovingMedian
	SimpleMovingMode
)

func (m ConstantModel) String() string {
	switch m {
	case SimpleMovingAverage:
		return "simple_moving_average"
	case SmoothedMovingAverage:
		return "smoothed_moving_average"
	case ExponentialMovingAverage:
		return "exponential_moving_average"
	case SimpleMovingMedian:
		return "simple_moving_median"
	case SimpleMovingMode:
		return "simple_moving_mode"
	}
	return "unknown"
}

// Apply reduces x with the model. An empty window yields NaN.
func (m ConstantModel) Apply(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	switch m {
	case SmoothedMovingAverage:
		return PersonalisedMovingAverage(x, 1, 0)
	case ExponentialMovingAverage:
		return PersonalisedMovingAverage(x, 2, 1)
	case SimpleMovingMedian:
		return Median(x)
	case SimpleMovingMode:
		return Mode(x)
	}
	return Mean(x)
}

// MovingAverage is the three-member subset of ConstantModel used by the
// moving-average entry points.
type MovingAverage int

const (
	Simple MovingAverage = iota
	Exponential
	Smoothed
)

func (m MovingAverage) String() string {
	switch m {
	case Simple:
		return "simple"
	case Exponential:
		return "exponential"
	case Smoothed:
		return "smoothed"
	}
	return "unknown"
}

func (m MovingAverage) Model() ConstantModel {
	switch m {
	case Exponential:
		return ExponentialMovingAverage
	case Smoothed:
		return SmoothedMovingAverage
	}
	return SimpleMovingAverage
}

func (m MovingAverage) Apply(x []float64) float64 {
	return m.Model().Apply(x)
}

// DeviationModel selects how the dispersion of a window is measured.
type DeviationModel int

const (
	StandardDeviation DeviationModel = iota
	MeanAbsoluteDeviation
	MedianAbsoluteDeviation
	ModeAbsoluteDeviation
	UlcerIndexDeviation
)

func (d DeviationModel) String() string {
	switch d {
	case StandardDeviation:
		return "standard_deviation"
	case MeanAbsoluteDeviation:
		return "mean_absolute_deviation"
	case MedianAbsoluteDeviation:
		return "median_absolute_deviation"
	case ModeAbsoluteDeviation:
		return "mode_absolute_deviation"
	case UlcerIndexDeviation:
		return "ulcer_index"
	}
	return "unknown"
}

func (d DeviationModel) Apply(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	switch d {
	case MeanAbsoluteDeviation:
		return AbsoluteDeviation(x, CenterMean)
	case MedianAbsoluteDeviation:
		return AbsoluteDeviation(x, CenterMedian)
	case ModeAbsoluteDeviation:
		return AbsoluteDeviation(x, CenterMode)
	case UlcerIndexDeviation:
		return UlcerIndex(x)
	}
	return StdDev(x)
}

// CentralPoint is the reference value absolute deviation is measured from.
type CentralPoint int

const (
	CenterMean CentralPoint = iota
	CenterMedian
	CenterMode
)

func (c CentralPoint) String() string {
	switch c {
	case CenterMean:
		return "mean"
	case CenterMedian:
		return "median"
	case CenterMode:
		return "mode"
	}
	return "unknown"
}

func (c CentralPoint) Apply(x []float64) float64 {
	switch c {
	case CenterMedian:
		return Median(x)
	case CenterMode:
		return Mode(x)
	}
	return Mean(x)
}

// Position is the side a stop-and-reverse system starts on.
type Position int

const (
	Long Position = iota
	Short
)

func (p Position) String() string {
	if p == Short {
		return "short"
	}
	return "long"
}
