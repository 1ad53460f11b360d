package indicator

import (
	"github.com/amirphl/ezpz-ti/internal/frame"
	"github.com/amirphl/ezpz-ti/internal/ti"
)

func AroonUpSingle(highs Input) (float64, error) {
	return single("aroon_up_single", highs, ti.AroonUp)
}

func AroonDownSingle(lows Input) (float64, error) {
	return single("aroon_down_single", lows, ti.AroonDown)
}

func AroonOscillatorSingle(up, down float64) float64 {
	return ti.AroonOscillator(up, down)
}

func AroonIndicatorSingle(highs, lows Input) (ti.Aroon, error) {
	const name = "aroon_indicator_single"
	in, err := resolve(name, highs, lows)
	if err != nil {
		return ti.Aroon{}, err
	}
	if err := requireObservations(name, in[0], 1); err != nil {
		return ti.Aroon{}, err
	}
	return ti.AroonIndicator(in[0], in[1]), nil
}

func AroonUpBulk(highs Input, period int) (frame.Column, error) {
	return bulk("aroon_up_bulk", "aroon_up", highs, period, ti.AroonUpBulk)
}

func AroonDownBulk(lows Input, period int) (frame.Column, error) {
	return bulk("aroon_down_bulk", "aroon_down", lows, period, ti.AroonDownBulk)
}

func AroonOscillatorBulk(up, down Input) (frame.Column, error) {
	in, err := resolve("aroon_oscillator_bulk", up, down)
	if err != nil {
		return frame.Column{}, err
	}
	return frame.NewFloat64("aroon_oscillator", ti.AroonOscillatorBulk(in[0], in[1])), nil
}

func AroonIndicatorBulk(highs, lows Input, period int) (*frame.Frame, error) {
	in, err := resolve("aroon_indicator_bulk", highs, lows)
	if err != nil {
		return nil, err
	}
	if err := requirePeriod("period", period, 1); err != nil {
		return nil, err
	}
	a := ti.AroonIndicatorBulk(in[0], in[1], period)
	return frame.New(
		frame.NewFloat64("aroon_up", a.Up),
		frame.NewFloat64("aroon_down", a.Down),
		frame.NewFloat64("aroon_oscillator", a.Oscillator),
	)
}

func LongParabolicTimePriceSystemSingle(previousSAR, extremePoint, accelerationFactor, low float64) float64 {
	return ti.LongParabolicTimePriceSystem(previousSAR, extremePoint, accelerationFactor, low)
}

func ShortParabolicTimePriceSystemSingle(previousSAR, extremePoint, accelerationFactor, high float64) float64 {
	return ti.ShortParabolicTimePriceSystem(previousSAR, extremePoint, accelerationFactor, high)
}

func ParabolicTimePriceSystemBulk(highs, lows Input, afStart, afStep, afMax float64, position string, previousSAR float64) (frame.Column, error) {
	in, err := resolve("parabolic_time_price_system_bulk", highs, lows)
	if err != nil {
		return frame.Column{}, err
	}
	pos, err := ParsePosition(position)
	if err != nil {
		return frame.Column{}, err
	}
	if afStart <= 0 || afStep < 0 || afMax < afStart {
		return frame.Column{}, &InvalidParameterError{
			Name:   "acceleration_factor",
			Value:  [3]float64{afStart, afStep, afMax},
			Reason: "need 0 < start <= max and step >= 0",
		}
	}
	return frame.NewFloat64("parabolic_sar", ti.ParabolicTimePriceSystemBulk(in[0], in[1], afStart, afStep, afMax, pos, previousSAR)), nil
}

func DirectionalMovementSystemBulk(highs, lows, closes Input, period int, constantModelType string) (*frame.Frame, error) {
	in, err := resolve("directional_movement_system_bulk", highs, lows, closes)
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
	d := ti.DirectionalMovementSystemBulk(in[0], in[1], in[2], period, model)
	return frame.New(
		frame.NewFloat64("positive_di", d.PositiveDI),
		frame.NewFloat64("negative_di", d.NegativeDI),
		frame.NewFloat64("adx", d.ADX),
		frame.NewFloat64("adxr", d.ADXR),
	)
}

func VolumePriceTrendSingle(current, previous, volume, previousVPT float64) float64 {
	return ti.VolumePriceTrend(current, previous, volume, previousVPT)
}

func VolumePriceTrendBulk(prices, volumes Input, previousVPT float64) (frame.Column, error) {
	in, err := resolve("volume_price_trend_bulk", prices, volumes)
	if err != nil {
		return frame.Column{}, err
	}
	return frame.NewFloat64("volume_price_trend", ti.VolumePriceTrendBulk(in[0], in[1], previousVPT)), nil
}

// TrueStrengthIndexSingle needs at least firstPeriod+1 prices.
func TrueStrengthIndexSingle(in Input, firstModelType string, firstPeriod int, secondModelType string) (float64, error) {
	const name = "true_strength_index_single"
	x, err := resolveOne(name, in)
	if err != nil {
		return 0, err
	}
	firstModel, secondModel, err := parseShortLong(firstPeriod, firstModelType, 1, secondModelType)
	if err != nil {
		return 0, err
	}
	if err := requireAtLeast(name, x, firstPeriod+1); err != nil {
		return 0, err
	}
	return ti.TrueStrengthIndex(x, firstModel, firstPeriod, secondModel), nil
}

func TrueStrengthIndexBulk(in Input, firstModelType string, firstPeriod int, secondModelType string, secondPeriod int) (frame.Column, error) {
	x, err := resolveOne("true_strength_index_bulk", in)
	if err != nil {
		return frame.Column{}, err
	}
	firstModel, secondModel, err := parseShortLong(firstPeriod, firstModelType, secondPeriod, secondModelType)
	if err != nil {
		return frame.Column{}, err
	}
	return frame.NewFloat64("true_strength_index", ti.TrueStrengthIndexBulk(x, firstModel, firstPeriod, secondModel, secondPeriod)), nil
}
