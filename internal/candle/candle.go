// Package candle
package candle

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidCandle = errors.New("invalid candle")

// Candle is one OHLCV bar. A missing value is NaN.
type Candle struct {
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// IsMissing reports whether any price of the bar is NaN.
func (c *Candle) IsMissing() bool {
	return math.IsNaN(c.Open) || math.IsNaN(c.High) || math.IsNaN(c.Low) || math.IsNaN(c.Close)
}

// Validate checks if a candle has valid data. Missing bars are not checked.
func (c *Candle) Validate() error {
	if c.IsMissing() {
		return nil
	}
	if c.Open <= 0 || c.High <= 0 || c.Low <= 0 || c.Close <= 0 {
		return fmt.Errorf("%w: prices must be positive", ErrInvalidCandle)
	}
	if c.High < c.Low {
		return fmt.Errorf("%w: high cannot be less than low", ErrInvalidCandle)
	}
	if c.Open < c.Low || c.Open > c.High {
		return fmt.Errorf("%w: open price must be between high and low", ErrInvalidCandle)
	}
	if c.Close < c.Low || c.Close > c.High {
		return fmt.Errorf("%w: close price must be between high and low", ErrInvalidCandle)
	}
	if c.Volume < 0 {
		return fmt.Errorf("%w: volume cannot be negative", ErrInvalidCandle)
	}
	return nil
}

// FromSeries zips equally long price series into validated candles. Volume
// is optional and zero when nil.
func FromSeries(open, high, low, close, volume []float64) ([]Candle, error) {
	n := len(close)
	if len(open) != n || len(high) != n || len(low) != n || (volume != nil && len(volume) != n) {
		return nil, fmt.Errorf("%w: series lengths differ", ErrInvalidCandle)
	}
	candles := make([]Candle, n)
	for i := range n {
		c := Candle{Open: open[i], High: high[i], Low: low[i], Close: close[i]}
		if volume != nil {
			c.Volume = volume[i]
		}
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("bar %d: %w", i, err)
		}
		candles[i] = c
	}
	return candles, nil
}

// Series splits candles back into open, high, low and close series.
func Series(candles []Candle) (open, high, low, close []float64) {
	open = make([]float64, len(candles))
	high = make([]float64, len(candles))
	low = make([]float64, len(candles))
	close = make([]float64, len(candles))
	for i, c := range candles {
		open[i], high[i], low[i], close[i] = c.Open, c.High, c.Low, c.Close
	}
	return open, high, low, close
}
