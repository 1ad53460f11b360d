package indicator

import (
	"github.com/amirphl/ezpz-ti/internal/candle"
	"github.com/amirphl/ezpz-ti/internal/frame"
	"github.com/amirphl/ezpz-ti/internal/ti"
)

func seriesFrame(names [3]string, b ti.BandsSeries) (*frame.Frame, error) {
	return bandsFrame(names, b.Lower, b.Middle, b.Upper)
}

// MovingConstantEnvelopesSingle puts the envelopes difference percent either
// side of the model's central value.
func MovingConstantEnvelopesSingle(in Input, constantModelType string, difference float64) (ti.Bands, error) {
	const name = "moving_constant_envelopes_single"
	x, err := resolveOne(name, in)
	if err != nil {
		return ti.Bands{}, err
	}
	model, err := ParseConstantModel(constantModelType)
	if err != nil {
		return ti.Bands{}, err
	}
	if err := requireObservations(name, x, 1); err != nil {
		return ti.Bands{}, err
	}
	return ti.MovingConstantEnvelopes(x, model, difference), nil
}

func MovingConstantEnvelopesBulk(in Input, constantModelType string, difference float64, period int) (*frame.Frame, error) {
	x, err := resolveOne("moving_constant_envelopes_bulk", in)
	if err != nil {
		return nil, err
	}
	model, err := ParseConstantModel(constantModelType)
	if err != nil {
		return nil, err
	}
	if err := requirePeriod("period", period, 1); err != nil {
		return nil, err
	}
	return seriesFrame(envelopeNames, ti.MovingConstantEnvelopesBulk(x, model, difference, period))
}

func McginleyDynamicEnvelopesSingle(in Input, difference, previous float64) (ti.Bands, error) {
	const name = "mcginley_dynamic_envelopes_single"
	x, err := resolveOne(name, in)
	if err != nil {
		return ti.Bands{}, err
	}
	if err := requireObservations(name, x, 1); err != nil {
		return ti.Bands{}, err
	}
	return ti.McginleyDynamicEnvelopes(x, difference, previous), nil
}

func McginleyDynamicEnvelopesBulk(in Input, difference, previous float64, period int) (*frame.Frame, error) {
	x, err := resolveOne("mcginley_dynamic_envelopes_bulk", in)
	if err != nil {
		return nil, err
	}
	if err := requirePeriod("period", period, 1); err != nil {
		return nil, err
	}
	return seriesFrame(
		[3]string{"lower_envelope", "mcginley_dynamic", "upper_envelope"},
		ti.McginleyDynamicEnvelopesBulk(x, difference, previous, period),
	)
}

func MovingConstantBandsSingle(in Input, constantModelType, deviationModel string, multiplier float64) (ti.Bands, error) {
	const name = "moving_constant_bands_single"
	x, err := resolveOne(name, in)
	if err != nil {
		return ti.Bands{}, err
	}
	model, deviation, err := parseModelPair(constantModelType, deviationModel)
	if err != nil {
		return ti.Bands{}, err
	}
	if err := requireObservations(name, x, 1); err != nil {
		return ti.Bands{}, err
	}
	return ti.MovingConstantBands(x, model, deviation, multiplier), nil
}

func MovingConstantBandsBulk(in Input, constantModelType, deviationModel string, multiplier float64, period int) (*frame.Frame, error) {
	x, err := resolveOne("moving_constant_bands_bulk", in)
	if err != nil {
		return nil, err
	}
	model, deviation, err := parseModelPair(constantModelType, deviationModel)
	if err != nil {
		return nil, err
	}
	if err := requirePeriod("period", period, 1); err != nil {
		return nil, err
	}
	return seriesFrame(bandNames, ti.MovingConstantBandsBulk(x, model, deviation, multiplier, period))
}

func McginleyDynamicBandsSingle(in Input, deviationModel string, multiplier, previous float64) (ti.Bands, error) {
	const name = "mcginley_dynamic_bands_single"
	x, err := resolveOne(name, in)
	if err != nil {
		return ti.Bands{}, err
	}
	deviation, err := ParseDeviationModel(deviationModel)
	if err != nil {
		return ti.Bands{}, err
	}
	if err := requireObservations(name, x, 1); err != nil {
		return ti.Bands{}, err
	}
	return ti.McginleyDynamicBands(x, deviation, multiplier, previous), nil
}

func McginleyDynamicBandsBulk(in Input, deviationModel string, multiplier, previous float64, period int) (*frame.Frame, error) {
	x, err := resolveOne("mcginley_dynamic_bands_bulk", in)
	if err != nil {
		return nil, err
	}
	deviation, err := ParseDeviationModel(deviationModel)
	if err != nil {
		return nil, err
	}
	if err := requirePeriod("period", period, 1); err != nil {
		return nil, err
	}
	return seriesFrame(
		[3]string{"lower_band", "mcginley_dynamic", "upper_band"},
		ti.McginleyDynamicBandsBulk(x, deviation, multiplier, previous, period),
	)
}

func checkIchimokuPeriods(conversionPeriod, basePeriod, spanBPeriod int) error {
	if err := requirePeriod("conversion_period", conversionPeriod, 1); err != nil {
		return err
	}
	if err := requirePeriod("base_period", basePeriod, 1); err != nil {
		return err
	}
	return requirePeriod("span_b_period", spanBPeriod, 1)
}

// IchimokuCloudSingle needs at least max(conversion, base, span B) bars.
func IchimokuCloudSingle(high, low, close Input, conversionPeriod, basePeriod, spanBPeriod int) (ti.Ichimoku, error) {
	const name = "ichimoku_cloud_single"
	in, err := resolve(name, high, low, close)
	if err != nil {
		return ti.Ichimoku{}, err
	}
	if err := checkIchimokuPeriods(conversionPeriod, basePeriod, spanBPeriod); err != nil {
		return ti.Ichimoku{}, err
	}
	if err := requireAtLeast(name, in[2], max(conversionPeriod, basePeriod, spanBPeriod)); err != nil {
		return ti.Ichimoku{}, err
	}
	return ti.IchimokuCloud(in[0], in[1], in[2], conversionPeriod, basePeriod, spanBPeriod), nil
}

func IchimokuCloudBulk(high, low, close Input, conversionPeriod, basePeriod, spanBPeriod int) (*frame.Frame, error) {
	in, err := resolve("ichimoku_cloud_bulk", high, low, close)
	if err != nil {
		return nil, err
	}
	if err := checkIchimokuPeriods(conversionPeriod, basePeriod, spanBPeriod); err != nil {
		return nil, err
	}
	c := ti.IchimokuCloudBulk(in[0], in[1], in[2], conversionPeriod, basePeriod, spanBPeriod)
	return frame.New(
		frame.NewFloat64("leading_span_a", c.LeadingSpanA),
		frame.NewFloat64("leading_span_b", c.LeadingSpanB),
		frame.NewFloat64("base_line", c.BaseLine),
		frame.NewFloat64("conversion_line", c.ConversionLine),
		frame.NewFloat64("lagged_price", c.LaggedPrice),
	)
}

func DonchianChannelsSingle(high, low Input) (ti.Bands, error) {
	const name = "donchian_channels_single"
	in, err := resolve(name, high, low)
	if err != nil {
		return ti.Bands{}, err
	}
	if err := requireObservations(name, in[0], 1); err != nil {
		return ti.Bands{}, err
	}
	return ti.DonchianChannels(in[0], in[1]), nil
}

func DonchianChannelsBulk(high, low Input, period int) (*frame.Frame, error) {
	in, err := resolve("donchian_channels_bulk", high, low)
	if err != nil {
		return nil, err
	}
	if err := requirePeriod("period", period, 1); err != nil {
		return nil, err
	}
	return seriesFrame(bandNames, ti.DonchianChannelsBulk(in[0], in[1], period))
}

func KeltnerChannelSingle(high, low, close Input, constantModelType, atrModelType string, multiplier float64) (ti.Bands, error) {
	const name = "keltner_channel_single"
	in, err := resolve(name, high, low, close)
	if err != nil {
		return ti.Bands{}, err
	}
	model, atrModel, err := parseShortLong(1, constantModelType, 1, atrModelType)
	if err != nil {
		return ti.Bands{}, err
	}
	if err := requireObservations(name, in[2], 1); err != nil {
		return ti.Bands{}, err
	}
	return ti.KeltnerChannel(in[0], in[1], in[2], model, atrModel, multiplier), nil
}

func KeltnerChannelBulk(high, low, close Input, constantModelType, atrModelType string, multiplier float64, period int) (*frame.Frame, error) {
	in, err := resolve("keltner_channel_bulk", high, low, close)
	if err != nil {
		return nil, err
	}
	model, atrModel, err := parseShortLong(period, constantModelType, period, atrModelType)
	if err != nil {
		return nil, err
	}
	return seriesFrame(bandNames, ti.KeltnerChannelBulk(in[0], in[1], in[2], model, atrModel, multiplier, period))
}

func SupertrendSingle(high, low, close Input, constantModelType string, multiplier float64) (float64, error) {
	const name = "supertrend_single"
	in, err := resolve(name, high, low, close)
	if err != nil {
		return 0, err
	}
	model, err := ParseConstantModel(constantModelType)
	if err != nil {
		return 0, err
	}
	if err := requireObservations(name, in[2], 1); err != nil {
		return 0, err
	}
	return ti.Supertrend(in[0], in[1], in[2], model, multiplier), nil
}

func SupertrendBulk(high, low, close Input, constantModelType string, multiplier float64, period int) (frame.Column, error) {
	in, err := resolve("supertrend_bulk", high, low, close)
	if err != nil {
		return frame.Column{}, err
	}
	model, err := ParseConstantModel(constantModelType)
	if err != nil {
		return frame.Column{}, err
	}
	if err := requirePeriod("period", period, 1); err != nil {
		return frame.Column{}, err
	}
	return frame.NewFloat64("supertrend", ti.SupertrendBulk(in[0], in[1], in[2], model, multiplier, period)), nil
}

// HeikinAshiBulk smooths OHLC bars into Heikin Ashi bars. Bars with a missing
// price come out missing.
func HeikinAshiBulk(open, high, low, close Input) (*frame.Frame, error) {
	const name = "heikin_ashi_bulk"
	in, err := resolve(name, open, high, low, close)
	if err != nil {
		return nil, err
	}
	bars, err := candle.FromSeries(in[0], in[1], in[2], in[3], nil)
	if err != nil {
		return nil, &InvalidParameterError{Name: "bars", Value: len(in[3]), Reason: err.Error()}
	}
	o, h, l, c := candle.Series(candle.GenerateHeikinAshiCandles(bars))
	return frame.New(
		frame.NewFloat64("ha_open", o),
		frame.NewFloat64("ha_high", h),
		frame.NewFloat64("ha_low", l),
		frame.NewFloat64("ha_close", c),
	)
}
