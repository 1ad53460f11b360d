package indicator

import (
	"math"
	"slices"
	"testing"

	"github.com/amirphl/ezpz-ti/internal/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const barCount = 60

// barsFrame holds valid oscillating OHLCV bars plus the derived columns the
// chained entry points read by default.
func barsFrame(t *testing.T) *frame.Frame {
	t.Helper()
	open := make([]float64, barCount)
	high := make([]float64, barCount)
	low := make([]float64, barCount)
	close := make([]float64, barCount)
	volume := make([]float64, barCount)
	for i := range barCount {
		close[i] = 100 + 10*math.Sin(float64(i)/3) + float64(i)/10
		open[i] = close[max(i-1, 0)]
		high[i] = max(open[i], close[i]) + 1
		low[i] = min(open[i], close[i]) - 1
		volume[i] = 1000 + float64(i%7)*50
	}
	f, err := frame.New(
		frame.NewFloat64("open", open),
		frame.NewFloat64("high", high),
		frame.NewFloat64("low", low),
		frame.NewFloat64("close", close),
		frame.NewFloat64("volume", volume),
		frame.NewFloat64("a", close),
		frame.NewFloat64("b", open),
	)
	require.NoError(t, err)

	derived := []struct{ entry, column string }{
		{"stochastic_oscillator_bulk", "stochastic"},
		{"slow_stochastic_bulk", "slow_stochastic"},
		{"macd_line_bulk", "macd"},
		{"aroon_up_bulk", "aroon_up"},
		{"aroon_down_bulk", "aroon_down"},
	}
	for _, d := range derived {
		e, ok := Lookup(d.entry)
		require.True(t, ok, d.entry)
		r, err := e.Invoke(Call{Frame: f})
		require.NoError(t, err, d.entry)
		require.Equal(t, d.column, r.Series.Name())
		f, err = f.With(r.Series)
		require.NoError(t, err)
	}
	return f
}

func TestCatalog(t *testing.T) {
	entries := Entries()
	require.NotEmpty(t, entries)

	seen := map[string]bool{}
	for _, e := range entries {
		assert.False(t, seen[e.Name], "duplicate %s", e.Name)
		seen[e.Name] = true
		assert.NotNil(t, e.invoke, e.Name)
		assert.Contains(t, Families(), e.Family)

		got, ok := Lookup(e.Name)
		require.True(t, ok)
		assert.Equal(t, e.Name, got.Name)
	}

	for _, name := range []string{"mean_single", "sma_bulk", "moving_constant_bands_bulk", "aroon_indicator_bulk", "correlate_asset_prices_single"} {
		_, ok := Lookup(name)
		assert.True(t, ok, name)
	}
	_, ok := Lookup("break_down_trends")
	assert.False(t, ok)
}

func TestEveryEntryRuns(t *testing.T) {
	f := barsFrame(t)
	exactLength := []string{"bollinger_bands_single", "macd_single", "rsi_single"}

	for _, e := range Entries() {
		t.Run(e.Name, func(t *testing.T) {
			params := map[string]string{}
			for _, p := range e.Params {
				if p.Default == "" {
					params[p.Name] = "2"
				}
			}
			r, err := e.Invoke(Call{Frame: f, Params: params})
			if slices.Contains(exactLength, e.Name) {
				assert.ErrorIs(t, err, ErrLengthPrecondition)
				return
			}
			require.NoError(t, err)

			out, err := r.Frame(e.Name)
			require.NoError(t, err)
			switch r.Kind {
			case SeriesResult, TableResult:
				assert.Equal(t, barCount, out.Height())
			case ScalarResult, TupleResult:
				assert.Equal(t, 1, out.Height())
			case ExtremaResult:
				assert.Equal(t, []string{"index", "value"}, out.Names())
			}
		})
	}
}

func TestInvokeResolvesColumns(t *testing.T) {
	f, err := frame.New(
		frame.NewFloat64("close", oneToTen),
		frame.NewInt("px", []int{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}),
		frame.NewString("name", make([]string, 10)),
	)
	require.NoError(t, err)

	mean, _ := Lookup("mean_single")
	r, err := mean.Invoke(Call{Frame: f})
	require.NoError(t, err)
	assert.Equal(t, ScalarResult, r.Kind)
	assert.Equal(t, 5.5, r.Scalar)

	r, err = mean.Invoke(Call{Frame: f, Inputs: map[string]string{"prices": "px"}})
	require.NoError(t, err)
	assert.Equal(t, 5.5, r.Scalar)

	_, err = mean.Invoke(Call{Frame: f, Inputs: map[string]string{"prices": "missing"}})
	assert.ErrorIs(t, err, ErrColumnNotFound)
	assert.Contains(t, err.Error(), "missing")

	_, err = mean.Invoke(Call{Frame: f, Inputs: map[string]string{"prices": "name"}})
	assert.ErrorIs(t, err, ErrCoercion)

	_, err = mean.Invoke(Call{Frame: f, Inputs: map[string]string{"volume": "px"}})
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestInvokeParams(t *testing.T) {
	f, err := frame.New(frame.NewFloat64("close", oneToTen))
	require.NoError(t, err)

	bulk, _ := Lookup("mean_bulk")
	r, err := bulk.Invoke(Call{Frame: f, Params: map[string]string{"period": "3"}})
	require.NoError(t, err)
	assert.Equal(t, SeriesResult, r.Kind)
	got := floats(t, r.Series)
	assert.True(t, math.IsNaN(got[1]))
	assert.InDelta(t, 2.0, got[2], 1e-12)

	_, err = bulk.Invoke(Call{Frame: f, Params: map[string]string{"period": "three"}})
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = bulk.Invoke(Call{Frame: f, Params: map[string]string{"window": "3"}})
	assert.ErrorIs(t, err, ErrInvalidParameter)

	ad, _ := Lookup("absolute_deviation_single")
	r, err = ad.Invoke(Call{Frame: f, Params: map[string]string{"central_point": "MEAN"}})
	require.NoError(t, err)
	assert.InDelta(t, 2.5, r.Scalar, 1e-12)

	_, err = ad.Invoke(Call{Frame: f, Params: map[string]string{"central_point": "average"}})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	roi, _ := Lookup("return_on_investment_single")
	_, err = roi.Invoke(Call{Params: map[string]string{"start_price": "100", "end_price": "110"}})
	var invalid *InvalidParameterError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "investment", invalid.Name)

	r, err = roi.Invoke(Call{Params: map[string]string{"start_price": "100", "end_price": "110", "investment": "1000"}})
	require.NoError(t, err)
	assert.Equal(t, TupleResult, r.Kind)
	assert.Equal(t, []NamedValue{{"final_investment_value", 1100}, {"percent_return", 10}}, r.Tuple)
}

func TestResultFrame(t *testing.T) {
	r := tuple([]string{"lower", "middle", "upper"}, 1, 2, 3)
	f, err := r.Frame("bands")
	require.NoError(t, err)
	assert.Equal(t, []string{"lower", "middle", "upper"}, f.Names())
	assert.Equal(t, 1, f.Height())

	r = Result{Kind: ScalarResult, Scalar: 4}
	f, err = r.Frame("mean_single")
	require.NoError(t, err)
	assert.Equal(t, []string{"mean_single"}, f.Names())

	_, err = Result{Kind: ResultKind(42)}.Frame("x")
	assert.Error(t, err)
}

func TestDefaultColumn(t *testing.T) {
	assert.Equal(t, "close", DefaultColumn("prices"))
	assert.Equal(t, "macd", DefaultColumn("macds"))
	assert.Equal(t, "volume", DefaultColumn("volume"))
}
