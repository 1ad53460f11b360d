package ti

import (
	"math"

	"github.com/markcheno/go-talib"
	"github.com/shopspring/decimal"
)

// Return is the outcome of holding an investment between two prices.
type Return struct {
	FinalValue    float64
	PercentReturn float64
}

// ReturnOnInvestment is computed in decimal so repeated compounding in the
// bulk variant does not drift.
func ReturnOnInvestment(startPrice, endPrice, investment float64) Return {
	start := decimal.NewFromFloat(startPrice)
	inv := decimal.NewFromFloat(investment)
	if start.IsZero() || inv.IsZero() {
		return Return{FinalValue: math.NaN(), PercentReturn: math.NaN()}
	}
	final := inv.Div(start).Mul(decimal.NewFromFloat(endPrice))
	pct := final.Sub(inv).Div(inv).Mul(decimal.NewFromInt(100))
	return Return{FinalValue: final.InexactFloat64(), PercentReturn: pct.InexactFloat64()}
}

// ReturnOnInvestmentBulk compounds the investment bar by bar. Index 0 holds
// the initial investment and has no return.
func ReturnOnInvestmentBulk(prices []float64, investment float64) (values, returns []float64) {
	values, returns = nanSlice(len(prices)), nanSlice(len(prices))
	if len(prices) == 0 {
		return values, returns
	}
	values[0] = investment
	for i := 1; i < len(prices); i++ {
		r := ReturnOnInvestment(prices[i-1], prices[i], values[i-1])
		values[i], returns[i] = r.FinalValue, r.PercentReturn
	}
	return values, returns
}

// TrueRange of a bar given the previous close.
func TrueRange(previousClose, high, low float64) float64 {
	return math.Max(high, previousClose) - math.Min(low, previousClose)
}

// TrueRangeBulk uses each bar's predecessor close; the first bar has none and
// is its high-low range.
func TrueRangeBulk(closes, highs, lows []float64) []float64 {
	n := len(closes)
	if n < 2 || hasNaN(closes, highs, lows) {
		out := make([]float64, n)
		for i := range n {
			if i == 0 {
				out[i] = highs[i] - lows[i]
				continue
			}
			out[i] = TrueRange(closes[i-1], highs[i], lows[i])
		}
		return out
	}
	out := talib.TRange(highs, lows, closes)
	out[0] = highs[0] - lows[0]
	return out
}

func AverageTrueRange(closes, highs, lows []float64, model ConstantModel) float64 {
	return model.Apply(TrueRangeBulk(closes, highs, lows))
}

func AverageTrueRangeBulk(closes, highs, lows []float64, model ConstantModel, period int) []float64 {
	return Rolling(TrueRangeBulk(closes, highs, lows), period, model.Apply)
}

// InternalBarStrength is where the close sits in the bar's range, in [0, 1].
func InternalBarStrength(high, low, close float64) float64 {
	return (close - low) / (high - low)
}

func InternalBarStrengthBulk(highs, lows, closes []float64) []float64 {
	out := make([]float64, len(closes))
	for i := range closes {
		out[i] = InternalBarStrength(highs[i], lows[i], closes[i])
	}
	return out
}

// PositivityIndicatorBulk is the close-open move of each bar in percent of
// the open, with a signal line averaged over signalPeriod.
func PositivityIndicatorBulk(opens, closes []float64, signalPeriod int, model ConstantModel) (indicator, signal []float64) {
	indicator = make([]float64, len(closes))
	for i := range closes {
		indicator[i] = (closes[i] - opens[i]) / opens[i] * 100
	}
	return indicator, Rolling(indicator, signalPeriod, model.Apply)
}
