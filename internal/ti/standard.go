package ti

// Fixed parameters of the classic indicators.
const (
	BollingerPeriod     = 20
	BollingerMultiplier = 2.0
	MacdShort           = 12
	MacdLong            = 26
	MacdSignal          = 9
	MacdPeriod          = MacdLong + MacdSignal - 1
	RsiPeriod           = 14
)

// Bands is a lower/middle/upper triple shared by envelopes, bands and channels.
type Bands struct {
	Lower  float64
	Middle float64
	Upper  float64
}

// BandsSeries is the bulk counterpart of Bands.
type BandsSeries struct {
	Lower  []float64
	Middle []float64
	Upper  []float64
}

func newBandsSeries(n int) BandsSeries {
	return BandsSeries{Lower: nanSlice(n), Middle: nanSlice(n), Upper: nanSlice(n)}
}

func (b BandsSeries) set(i int, v Bands) {
	b.Lower[i], b.Middle[i], b.Upper[i] = v.Lower, v.Middle, v.Upper
}

// BollingerBands over a window: SMA middle, two population standard deviations wide.
func BollingerBands(x []float64) Bands {
	middle := Mean(x)
	width := BollingerMultiplier * StdDev(x)
	return Bands{Lower: middle - width, Middle: middle, Upper: middle + width}
}

func BollingerBandsBulk(x []float64) BandsSeries {
	out := newBandsSeries(len(x))
	Windows(len(x), BollingerPeriod, func(lo, hi int) {
		out.set(hi-1, BollingerBands(x[lo:hi]))
	}, x)
	return out
}

// Macd is the MACD line, its signal and the histogram between them.
type Macd struct {
	Macd      float64
	Signal    float64
	Histogram float64
}

type MacdSeries struct {
	Macd      []float64
	Signal    []float64
	Histogram []float64
}

// MacdLine is the difference between the short and long averages of the
// window tail.
func MacdLine(x []float64, short int, shortModel ConstantModel, long int, longModel ConstantModel) float64 {
	return shortModel.Apply(x[len(x)-short:]) - longModel.Apply(x[len(x)-long:])
}

// MACD over exactly MacdPeriod values: the 12/26 EMA line is evaluated on the
// last nine 26-value windows and the signal is their 9 EMA.
func MACD(x []float64) Macd {
	lines := make([]float64, MacdSignal)
	for k := range lines {
		lines[k] = MacdLine(x[k:k+MacdLong], MacdShort, ExponentialMovingAverage, MacdLong, ExponentialMovingAverage)
	}
	signal := ExponentialMovingAverage.Apply(lines)
	last := lines[len(lines)-1]
	return Macd{Macd: last, Signal: signal, Histogram: last - signal}
}

func MacdBulk(x []float64) MacdSeries {
	out := MacdSeries{Macd: nanSlice(len(x)), Signal: nanSlice(len(x)), Histogram: nanSlice(len(x))}
	Windows(len(x), MacdPeriod, func(lo, hi int) {
		m := MACD(x[lo:hi])
		out.Macd[hi-1], out.Signal[hi-1], out.Histogram[hi-1] = m.Macd, m.Signal, m.Histogram
	}, x)
	return out
}

// RelativeStrengthIndex averages gains and losses of the window with model.
// A window without losses reads 100.
func RelativeStrengthIndex(x []float64, model ConstantModel) float64 {
	gains := make([]float64, 0, len(x))
	losses := make([]float64, 0, len(x))
	for i := 1; i < len(x); i++ {
		change := x[i] - x[i-1]
		if change > 0 {
			gains = append(gains, change)
			losses = append(losses, 0)
		} else {
			gains = append(gains, 0)
			losses = append(losses, -change)
		}
	}
	avgGain := model.Apply(gains)
	avgLoss := model.Apply(losses)
	if avgLoss == 0 {
		return 100
	}
	return 100 - 100/(1+avgGain/avgLoss)
}

func RelativeStrengthIndexBulk(x []float64, model ConstantModel, period int) []float64 {
	return Rolling(x, period, func(w []float64) float64 {
		return RelativeStrengthIndex(w, model)
	})
}
