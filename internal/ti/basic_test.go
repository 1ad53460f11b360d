package ti

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var oneToTen = []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

// assertSeries compares element-wise, treating NaN as equal to NaN.
func assertSeries(t *testing.T, expected, actual []float64, delta float64) {
	t.Helper()
	require.Len(t, actual, len(expected))
	for i := range expected {
		if math.IsNaN(expected[i]) {
			assert.True(t, math.IsNaN(actual[i]), "index %d: expected NaN, got %v", i, actual[i])
			continue
		}
		assert.InDelta(t, expected[i], actual[i], delta, "index %d", i)
	}
}

func TestBasicStatistics(t *testing.T) {
	assert.Equal(t, 5.5, Mean(oneToTen))
	assert.Equal(t, 5.5, Median(oneToTen))
	assert.Equal(t, 5.5, Mode(oneToTen))
	assert.Equal(t, 8.25, Variance(oneToTen))
	assert.InDelta(t, 2.8722813232690143, StdDev(oneToTen), 1e-12)
	assert.Equal(t, 10.0, Max(oneToTen))
	assert.Equal(t, 1.0, Min(oneToTen))
	assert.Equal(t, 2.5, AbsoluteDeviation(oneToTen, CenterMean))
	assert.Equal(t, 2.5, AbsoluteDeviation(oneToTen, CenterMedian))
	assert.InDelta(t, 1.0, LogDifference(math.E, 1), 1e-12)
}

func TestConstantSequence(t *testing.T) {
	x := []float64{7, 7, 7, 7, 7}
	assert.Equal(t, 7.0, Mean(x))
	assert.Equal(t, 7.0, Median(x))
	assert.Equal(t, 7.0, Mode(x))
	assert.Equal(t, 0.0, Variance(x))
	assert.Equal(t, 0.0, StdDev(x))
	for _, d := range []DeviationModel{StandardDeviation, MeanAbsoluteDeviation, MedianAbsoluteDeviation, ModeAbsoluteDeviation, UlcerIndexDeviation} {
		assert.Equal(t, 0.0, d.Apply(x), d.String())
	}
}

func TestMedianAndMode(t *testing.T) {
	tests := []struct {
		name   string
		x      []float64
		median float64
		mode   float64
	}{
		{"odd length", []float64{3, 1, 2}, 2, 2},
		{"even length", []float64{4, 1, 3, 2}, 2.5, 2.5},
		{"single mode", []float64{1, 1, 2}, 1, 1},
		{"tied modes are averaged", []float64{1, 2, 2, 3, 3, 4}, 2.5, 2.5},
		{"one value", []float64{42}, 42, 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.median, Median(tt.x))
			assert.Equal(t, tt.mode, Mode(tt.x))
		})
	}
}

func TestMaxMinBounds(t *testing.T) {
	x := []float64{3.2, -1.5, 8.8, 0, 4.4}
	for _, v := range x {
		assert.GreaterOrEqual(t, Max(x), v)
		assert.LessOrEqual(t, Min(x), v)
	}
}

func TestMeanBulk(t *testing.T) {
	nan := math.NaN()
	assertSeries(t, []float64{nan, nan, 2, 3, 4, 5, 6, 7, 8, 9}, MeanBulk(oneToTen, 3), 0)
}

func TestBulkMatchesSingle(t *testing.T) {
	x := []float64{10.2, 11.7, 9.4, 12.9, 13.3, 12.1, 11.8, 14.6, 15.2, 13.9, 16.4, 15.5}
	const period = 5

	tests := []struct {
		name   string
		bulk   func([]float64, int) []float64
		single func([]float64) float64
	}{
		{"mean", MeanBulk, Mean},
		{"median", MedianBulk, Median},
		{"mode", ModeBulk, Mode},
		{"variance", VarianceBulk, Variance},
		{"standard deviation", StdDevBulk, StdDev},
		{"max", MaxBulk, Max},
		{"min", MinBulk, Min},
		{"absolute deviation", func(x []float64, p int) []float64 {
			return AbsoluteDeviationBulk(x, p, CenterMedian)
		}, func(x []float64) float64 { return AbsoluteDeviation(x, CenterMedian) }},
		{"ema", func(x []float64, p int) []float64 {
			return MovingAverageBulk(x, ExponentialMovingAverage, p)
		}, ExponentialMovingAverage.Apply},
		{"ulcer index", UlcerIndexBulk, UlcerIndex},
		{"stochastic", StochasticOscillatorBulk, StochasticOscillator},
		{"chande momentum", ChandeMomentumOscillatorBulk, ChandeMomentumOscillator},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.bulk(x, period)
			require.Len(t, out, len(x))
			for i := 0; i < period-1; i++ {
				assert.True(t, math.IsNaN(out[i]), "index %d", i)
			}
			for i := period - 1; i < len(x); i++ {
				assert.InDelta(t, tt.single(x[i-period+1:i+1]), out[i], 1e-9, "index %d", i)
			}
		})
	}
}

func TestBulkMatchesSingleAtVolumeMagnitude(t *testing.T) {
	assertSeries(t, []float64{math.NaN(), math.NaN(), 2.0 / 3, 2.0 / 3, 2.0 / 3},
		VarianceBulk([]float64{1e8 + 1, 1e8 + 2, 1e8 + 3, 1e8 + 4, 1e8 + 5}, 3), 1e-9)

	x := make([]float64, 40)
	for i := range x {
		x[i] = 1e8 + float64(i%7) + 0.25*float64(i%3)
	}
	const period = 3
	for name, fn := range map[string]struct {
		bulk   func([]float64, int) []float64
		single func([]float64) float64
	}{
		"mean":               {MeanBulk, Mean},
		"variance":           {VarianceBulk, Variance},
		"standard deviation": {StdDevBulk, StdDev},
	} {
		out := fn.bulk(x, period)
		for i := period - 1; i < len(x); i++ {
			assert.InDelta(t, fn.single(x[i-period+1:i+1]), out[i], 1e-6, "%s index %d", name, i)
		}
	}

	b := BollingerBandsBulk(x)
	for i := BollingerPeriod - 1; i < len(x); i++ {
		want := BollingerBands(x[i-BollingerPeriod+1 : i+1])
		assert.InDelta(t, want.Lower, b.Lower[i], 1e-6, "index %d", i)
		assert.InDelta(t, want.Middle, b.Middle[i], 1e-6, "index %d", i)
		assert.InDelta(t, want.Upper, b.Upper[i], 1e-6, "index %d", i)
	}
}

func TestBulkShortInput(t *testing.T) {
	for _, out := range [][]float64{
		MeanBulk([]float64{1, 2}, 3),
		VarianceBulk([]float64{1, 2}, 3),
		MedianBulk([]float64{1, 2}, 3),
	} {
		assertSeries(t, []float64{math.NaN(), math.NaN()}, out, 0)
	}
}

func TestBulkWithNaN(t *testing.T) {
	nan := math.NaN()
	x := []float64{1, nan, 3, 4, 5}
	assertSeries(t, []float64{nan, nan, nan, 3.5, 4.5}, MeanBulk(x, 2), 1e-12)
	assertSeries(t, []float64{nan, nan, nan, 4, 5}, MaxBulk(x, 2), 0)
}

func TestLogBulk(t *testing.T) {
	assertSeries(t, []float64{0, 1}, LogBulk([]float64{1, math.E}), 1e-12)
	assert.Empty(t, LogBulk(nil))
}

func TestLogDifferenceBulk(t *testing.T) {
	x := []float64{1, math.E, math.E * math.E, 5}
	out := LogDifferenceBulk(x)
	require.Len(t, out, len(x))
	assert.True(t, math.IsNaN(out[0]))
	for i := 1; i < len(x); i++ {
		assert.InDelta(t, math.Log(x[i])-math.Log(x[i-1]), out[i], 1e-12)
	}
}

func TestWindows(t *testing.T) {
	var got [][2]int
	Windows(5, 3, func(lo, hi int) { got = append(got, [2]int{lo, hi}) })
	assert.Equal(t, [][2]int{{0, 3}, {1, 4}, {2, 5}}, got)

	got = nil
	Windows(2, 3, func(lo, hi int) { got = append(got, [2]int{lo, hi}) })
	assert.Nil(t, got)

	got = nil
	x := []float64{1, 2, math.NaN(), 4, 5, 6}
	Windows(len(x), 2, func(lo, hi int) { got = append(got, [2]int{lo, hi}) }, x)
	assert.Equal(t, [][2]int{{0, 2}, {3, 5}, {4, 6}}, got)
}
