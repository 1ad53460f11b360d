package indicator

import (
	"github.com/amirphl/ezpz-ti/internal/frame"
	"github.com/amirphl/ezpz-ti/internal/ti"
)

// The standard family fixes its parameters: Bollinger bands over 20 periods
// at two deviations, MACD 12/26/9 and RSI over 14 periods with smoothed
// averaging.

func SmaSingle(in Input) (float64, error) {
	return single("sma_single", in, ti.SimpleMovingAverage.Apply)
}

func SmmaSingle(in Input) (float64, error) {
	return single("smma_single", in, ti.SmoothedMovingAverage.Apply)
}

func EmaSingle(in Input) (float64, error) {
	return single("ema_single", in, ti.ExponentialMovingAverage.Apply)
}

func standardAverageBulk(name, output string, in Input, period int, model ti.ConstantModel) (frame.Column, error) {
	x, err := resolveOne(name, in)
	if err != nil {
		return frame.Column{}, err
	}
	if err := requirePeriod("period", period, 1); err != nil {
		return frame.Column{}, err
	}
	if err := requireAtLeast(name, x, period); err != nil {
		return frame.Column{}, err
	}
	return frame.NewFloat64(output, ti.MovingAverageBulk(x, model, period)), nil
}

func SmaBulk(in Input, period int) (frame.Column, error) {
	return standardAverageBulk("sma_bulk", "sma", in, period, ti.SimpleMovingAverage)
}

func SmmaBulk(in Input, period int) (frame.Column, error) {
	return standardAverageBulk("smma_bulk", "smma", in, period, ti.SmoothedMovingAverage)
}

func EmaBulk(in Input, period int) (frame.Column, error) {
	return standardAverageBulk("ema_bulk", "ema", in, period, ti.ExponentialMovingAverage)
}

func BollingerBandsSingle(in Input) (ti.Bands, error) {
	const name = "bollinger_bands_single"
	x, err := resolveOne(name, in)
	if err != nil {
		return ti.Bands{}, err
	}
	if err := requireExactly(name, x, ti.BollingerPeriod); err != nil {
		return ti.Bands{}, err
	}
	return ti.BollingerBands(x), nil
}

func BollingerBandsBulk(in Input) (*frame.Frame, error) {
	const name = "bollinger_bands_bulk"
	x, err := resolveOne(name, in)
	if err != nil {
		return nil, err
	}
	if err := requireAtLeast(name, x, ti.BollingerPeriod); err != nil {
		return nil, err
	}
	b := ti.BollingerBandsBulk(x)
	return bandsFrame([3]string{"bb_lower", "bb_middle", "bb_upper"}, b.Lower, b.Middle, b.Upper)
}

func MacdSingle(in Input) (ti.Macd, error) {
	const name = "macd_single"
	x, err := resolveOne(name, in)
	if err != nil {
		return ti.Macd{}, err
	}
	if err := requireExactly(name, x, ti.MacdPeriod); err != nil {
		return ti.Macd{}, err
	}
	return ti.MACD(x), nil
}

func MacdBulk(in Input) (*frame.Frame, error) {
	const name = "macd_bulk"
	x, err := resolveOne(name, in)
	if err != nil {
		return nil, err
	}
	if err := requireAtLeast(name, x, ti.MacdPeriod); err != nil {
		return nil, err
	}
	m := ti.MacdBulk(x)
	return frame.New(
		frame.NewFloat64("macd", m.Macd),
		frame.NewFloat64("macd_signal", m.Signal),
		frame.NewFloat64("macd_histogram", m.Histogram),
	)
}

func RsiSingle(in Input) (float64, error) {
	const name = "rsi_single"
	x, err := resolveOne(name, in)
	if err != nil {
		return 0, err
	}
	if err := requireExactly(name, x, ti.RsiPeriod); err != nil {
		return 0, err
	}
	return ti.RelativeStrengthIndex(x, ti.SmoothedMovingAverage), nil
}

func RsiBulk(in Input) (frame.Column, error) {
	const name = "rsi_bulk"
	x, err := resolveOne(name, in)
	if err != nil {
		return frame.Column{}, err
	}
	if err := requireAtLeast(name, x, ti.RsiPeriod); err != nil {
		return frame.Column{}, err
	}
	return frame.NewFloat64("rsi", ti.RelativeStrengthIndexBulk(x, ti.SmoothedMovingAverage, ti.RsiPeriod)), nil
}
