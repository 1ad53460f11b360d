package ti

import (
	"github.com/markcheno/go-talib"
)

// MovingConstantEnvelopes surrounds the model's central value by difference
// percent on each side.
func MovingConstantEnvelopes(x []float64, model ConstantModel, difference float64) Bands {
	middle := model.Apply(x)
	width := middle * difference / 100
	return Bands{Lower: middle - width, Middle: middle, Upper: middle + width}
}

func MovingConstantEnvelopesBulk(x []float64, model ConstantModel, difference float64, period int) BandsSeries {
	out := newBandsSeries(len(x))
	Windows(len(x), period, func(lo, hi int) {
		out.set(hi-1, MovingConstantEnvelopes(x[lo:hi], model, difference))
	}, x)
	return out
}

// McginleyDynamicEnvelopes uses the McGinley dynamic of the last value as the middle.
func McginleyDynamicEnvelopes(x []float64, difference, previous float64) Bands {
	middle := McginleyDynamic(x[len(x)-1], previous, len(x))
	width := middle * difference / 100
	return Bands{Lower: middle - width, Middle: middle, Upper: middle + width}
}

func McginleyDynamicEnvelopesBulk(x []float64, difference, previous float64, period int) BandsSeries {
	out := newBandsSeries(len(x))
	Windows(len(x), period, func(lo, hi int) {
		b := McginleyDynamicEnvelopes(x[lo:hi], difference, previous)
		out.set(hi-1, b)
		previous = b.Middle
	}, x)
	return out
}

// MovingConstantBands are multiplier deviations either side of the central value.
func MovingConstantBands(x []float64, model ConstantModel, deviation DeviationModel, multiplier float64) Bands {
	middle := model.Apply(x)
	width := multiplier * deviation.Apply(x)
	return Bands{Lower: middle - width, Middle: middle, Upper: middle + width}
}

func MovingConstantBandsBulk(x []float64, model ConstantModel, deviation DeviationModel, multiplier float64, period int) BandsSeries {
	out := newBandsSeries(len(x))
	Windows(len(x), period, func(lo, hi int) {
		out.set(hi-1, MovingConstantBands(x[lo:hi], model, deviation, multiplier))
	}, x)
	return out
}

func McginleyDynamicBands(x []float64, deviation DeviationModel, multiplier, previous float64) Bands {
	middle := McginleyDynamic(x[len(x)-1], previous, len(x))
	width := multiplier * deviation.Apply(x)
	return Bands{Lower: middle - width, Middle: middle, Upper: middle + width}
}

func McginleyDynamicBandsBulk(x []float64, deviation DeviationModel, multiplier, previous float64, period int) BandsSeries {
	out := newBandsSeries(len(x))
	Windows(len(x), period, func(lo, hi int) {
		b := McginleyDynamicBands(x[lo:hi], deviation, multiplier, previous)
		out.set(hi-1, b)
		previous = b.Middle
	}, x)
	return out
}

// Ichimoku holds the cloud values of the latest bar. Leading spans are not
// shifted forward; plotting them ahead is left to the caller.
type Ichimoku struct {
	LeadingSpanA   float64
	LeadingSpanB   float64
	BaseLine       float64
	ConversionLine float64
	LaggedPrice    float64
}

type IchimokuSeries struct {
	LeadingSpanA   []float64
	LeadingSpanB   []float64
	BaseLine       []float64
	ConversionLine []float64
	LaggedPrice    []float64
}

// IchimokuCloud needs max(conversion, base, spanB) bars.
func IchimokuCloud(highs, lows, closes []float64, conversionPeriod, basePeriod, spanBPeriod int) Ichimoku {
	n := len(closes)
	midpoint := func(period int) float64 {
		return (Max(highs[n-period:]) + Min(lows[n-period:])) / 2
	}
	conversion := midpoint(conversionPeriod)
	base := midpoint(basePeriod)
	return Ichimoku{
		LeadingSpanA:   (conversion + base) / 2,
		LeadingSpanB:   midpoint(spanBPeriod),
		BaseLine:       base,
		ConversionLine: conversion,
		LaggedPrice:    closes[n-basePeriod],
	}
}

func IchimokuCloudBulk(highs, lows, closes []float64, conversionPeriod, basePeriod, spanBPeriod int) IchimokuSeries {
	n := len(closes)
	out := IchimokuSeries{
		LeadingSpanA:   nanSlice(n),
		LeadingSpanB:   nanSlice(n),
		BaseLine:       nanSlice(n),
		ConversionLine: nanSlice(n),
		LaggedPrice:    nanSlice(n),
	}
	Windows(n, max(conversionPeriod, basePeriod, spanBPeriod), func(lo, hi int) {
		c := IchimokuCloud(highs[lo:hi], lows[lo:hi], closes[lo:hi], conversionPeriod, basePeriod, spanBPeriod)
		i := hi - 1
		out.LeadingSpanA[i] = c.LeadingSpanA
		out.LeadingSpanB[i] = c.LeadingSpanB
		out.BaseLine[i] = c.BaseLine
		out.ConversionLine[i] = c.ConversionLine
		out.LaggedPrice[i] = c.LaggedPrice
	}, highs, lows, closes)
	return out
}

// DonchianChannels spans the lowest low to the highest high of the window.
func DonchianChannels(highs, lows []float64) Bands {
	upper, lower := Max(highs), Min(lows)
	return Bands{Lower: lower, Middle: (upper + lower) / 2, Upper: upper}
}

func DonchianChannelsBulk(highs, lows []float64, period int) BandsSeries {
	upper := talibWindow(highs, period, talib.Max, Max)
	lower := talibWindow(lows, period, talib.Min, Min)
	middle := make([]float64, len(highs))
	for i := range middle {
		middle[i] = (upper[i] + lower[i]) / 2
	}
	return BandsSeries{Lower: lower, Middle: middle, Upper: upper}
}

// KeltnerChannel centres on the model of the typical price and is multiplier
// average true ranges wide.
func KeltnerChannel(highs, lows, closes []float64, model, atrModel ConstantModel, multiplier float64) Bands {
	typical := make([]float64, len(closes))
	for i := range closes {
		typical[i] = (highs[i] + lows[i] + closes[i]) / 3
	}
	middle := model.Apply(typical)
	width := multiplier * AverageTrueRange(closes, highs, lows, atrModel)
	return Bands{Lower: middle - width, Middle: middle, Upper: middle + width}
}

func KeltnerChannelBulk(highs, lows, closes []float64, model, atrModel ConstantModel, multiplier float64, period int) BandsSeries {
	out := newBandsSeries(len(closes))
	Windows(len(closes), period, func(lo, hi int) {
		out.set(hi-1, KeltnerChannel(highs[lo:hi], lows[lo:hi], closes[lo:hi], model, atrModel, multiplier))
	}, highs, lows, closes)
	return out
}

// Supertrend is the lower band (support) while the last close is above the
// window's high-low midpoint and the upper band (resistance) otherwise. The
// bands are multiplier average true ranges from the midpoint.
func Supertrend(highs, lows, closes []float64, model ConstantModel, multiplier float64) float64 {
	midpoint := (Max(highs) + Min(lows)) / 2
	width := multiplier * AverageTrueRange(closes, highs, lows, model)
	if closes[len(closes)-1] > midpoint {
		return midpoint - width
	}
	return midpoint + width
}

func SupertrendBulk(highs, lows, closes []float64, model ConstantModel, multiplier float64, period int) []float64 {
	out := nanSlice(len(closes))
	Windows(len(closes), period, func(lo, hi int) {
		out[hi-1] = Supertrend(highs[lo:hi], lows[lo:hi], closes[lo:hi], model, multiplier)
	}, highs, lows, closes)
	return out
}
