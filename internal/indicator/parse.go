package indicator

import (
	"strings"

	"github.com/amirphl/ezpz-ti/internal/ti"
)

// Tokens are matched case-insensitively after dropping '_', '-' and spaces,
// so "Simple_Moving_Average", "simple-moving-average" and "SMA" agree.
func normalizeToken(token string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '_', '-', ' ':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(token)))
}

type vocabulary[T any] struct {
	family    string
	canonical []string
	aliases   map[string]T
}

func (v vocabulary[T]) parse(token string) (T, error) {
	if value, ok := v.aliases[normalizeToken(token)]; ok {
		return value, nil
	}
	var zero T
	return zero, &InvalidConfigError{Token: token, Family: v.family, Valid: v.canonical}
}

var constantModels = vocabulary[ti.ConstantModel]{
	family: "constant model type",
	canonical: []string{
		"simple_moving_average", "smoothed_moving_average", "exponential_moving_average",
		"simple_moving_median", "simple_moving_mode",
	},
	aliases: map[string]ti.ConstantModel{
		"simplemovingaverage":      ti.SimpleMovingAverage,
		"sma":                      ti.SimpleMovingAverage,
		"smoothedmovingaverage":    ti.SmoothedMovingAverage,
		"smma":                     ti.SmoothedMovingAverage,
		"exponentialmovingaverage": ti.ExponentialMovingAverage,
		"ema":                      ti.ExponentialMovingAverage,
		"simplemovingmedian":       ti.SimpleMovingMedian,
		"median":                   ti.SimpleMovingMedian,
		"simplemovingmode":         ti.SimpleMovingMode,
		"mode":                     ti.SimpleMovingMode,
	},
}

var movingAverages = vocabulary[ti.MovingAverage]{
	family:    "moving average type",
	canonical: []string{"simple", "exponential", "smoothed"},
	aliases: map[string]ti.MovingAverage{
		"simple":      ti.Simple,
		"sma":         ti.Simple,
		"exponential": ti.Exponential,
		"ema":         ti.Exponential,
		"smoothed":    ti.Smoothed,
		"smma":        ti.Smoothed,
	},
}

var deviationModels = vocabulary[ti.DeviationModel]{
	family: "deviation model",
	canonical: []string{
		"standard_deviation", "mean_absolute_deviation", "median_absolute_deviation",
		"mode_absolute_deviation", "ulcer_index",
	},
	aliases: map[string]ti.DeviationModel{
		"standarddeviation":       ti.StandardDeviation,
		"std":                     ti.StandardDeviation,
		"stddev":                  ti.StandardDeviation,
		"meanabsolutedeviation":   ti.MeanAbsoluteDeviation,
		"mad":                     ti.MeanAbsoluteDeviation,
		"medianabsolutedeviation": ti.MedianAbsoluteDeviation,
		"modeabsolutedeviation":   ti.ModeAbsoluteDeviation,
		"ulcerindex":              ti.UlcerIndexDeviation,
		"ulcer":                   ti.UlcerIndexDeviation,
	},
}

var centralPoints = vocabulary[ti.CentralPoint]{
	family:    "central point",
	canonical: []string{"mean", "median", "mode"},
	aliases: map[string]ti.CentralPoint{
		"mean":   ti.CenterMean,
		"median": ti.CenterMedian,
		"mode":   ti.CenterMode,
	},
}

var positions = vocabulary[ti.Position]{
	family:    "position",
	canonical: []string{"long", "short"},
	aliases: map[string]ti.Position{
		"long":  ti.Long,
		"short": ti.Short,
	},
}

func ParseConstantModel(token string) (ti.ConstantModel, error) {
	return constantModels.parse(token)
}

func ParseMovingAverage(token string) (ti.MovingAverage, error) {
	return movingAverages.parse(token)
}

func ParseDeviationModel(token string) (ti.DeviationModel, error) {
	return deviationModels.parse(token)
}

func ParseCentralPoint(token string) (ti.CentralPoint, error) {
	return centralPoints.parse(token)
}

func ParsePosition(token string) (ti.Position, error) {
	return positions.parse(token)
}
