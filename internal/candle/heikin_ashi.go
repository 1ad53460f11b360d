package candle

import "math"

// GenerateHeikinAshiCandles generates Heikin Ashi candles from raw candles.
// Input candles must be in time order. A missing bar yields a missing
// Heikin Ashi bar and restarts the chain on the next present one.
func GenerateHeikinAshiCandles(rawCandles []Candle) []Candle {
	if len(rawCandles) == 0 {
		return nil
	}

	haCandles := make([]Candle, len(rawCandles))
	var prevHA *Candle
	for i, c := range rawCandles {
		if c.IsMissing() {
			nan := math.NaN()
			haCandles[i] = Candle{Open: nan, High: nan, Low: nan, Close: nan, Volume: c.Volume}
			prevHA = nil
			continue
		}
		haCandles[i] = GenerateNextHeikinAshiCandle(prevHA, c)
		prevHA = &haCandles[i]
	}
	return haCandles
}

// GenerateNextHeikinAshiCandle generates the next Heikin Ashi candle given the
// previous Heikin Ashi candle (nil for the first) and a new raw candle.
func GenerateNextHeikinAshiCandle(prevHA *Candle, raw Candle) Candle {
	ha := raw
	ha.Close = (raw.Open + raw.High + raw.Low + raw.Close) / 4
	if prevHA == nil {
		ha.Open = (raw.Open + raw.Close) / 2
	} else {
		ha.Open = (prevHA.Open + prevHA.Close) / 2
	}
	ha.High = max(raw.High, ha.Open, ha.Close)
	ha.Low = min(raw.Low, ha.Open, ha.Close)
	return ha
}
