package indicator

import (
	"github.com/amirphl/ezpz-ti/internal/frame"
	"github.com/amirphl/ezpz-ti/internal/ti"
)

// McginleyDynamicCci pairs the index with the dynamic it was measured against.
type McginleyDynamicCci struct {
	CommodityChannelIndex float64
	McginleyDynamic       float64
}

func RelativeStrengthIndexSingle(in Input, constantModelType string) (float64, error) {
	const name = "relative_strength_index_single"
	x, err := resolveOne(name, in)
	if err != nil {
		return 0, err
	}
	model, err := ParseConstantModel(constantModelType)
	if err != nil {
		return 0, err
	}
	if err := requireObservations(name, x, 2); err != nil {
		return 0, err
	}
	return ti.RelativeStrengthIndex(x, model), nil
}

func RelativeStrengthIndexBulk(in Input, constantModelType string, period int) (frame.Column, error) {
	const name = "relative_strength_index_bulk"
	x, err := resolveOne(name, in)
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
	return frame.NewFloat64("rsi", ti.RelativeStrengthIndexBulk(x, model, period)), nil
}

func StochasticOscillatorSingle(in Input) (float64, error) {
	return single("stochastic_oscillator_single", in, ti.StochasticOscillator)
}

func StochasticOscillatorBulk(in Input, period int) (frame.Column, error) {
	return bulk("stochastic_oscillator_bulk", "stochastic", in, period, ti.StochasticOscillatorBulk)
}

func SlowStochasticSingle(stochastics Input, constantModelType string) (float64, error) {
	return smoothSingle("slow_stochastic_single", stochastics, constantModelType)
}

func SlowStochasticBulk(stochastics Input, constantModelType string, period int) (frame.Column, error) {
	return smoothBulk("slow_stochastic_bulk", "slow_stochastic", stochastics, constantModelType, period)
}

// SlowestStochasticSingle smooths slow stochastic values the same way slow
// values are smoothed from fast ones.
func SlowestStochasticSingle(slowStochastics Input, constantModelType string) (float64, error) {
	return smoothSingle("slowest_stochastic_single", slowStochastics, constantModelType)
}

func SlowestStochasticBulk(slowStochastics Input, constantModelType string, period int) (frame.Column, error) {
	return smoothBulk("slowest_stochastic_bulk", "slowest_stochastic", slowStochastics, constantModelType, period)
}

func smoothSingle(name string, in Input, constantModelType string) (float64, error) {
	x, err := resolveOne(name, in)
	if err != nil {
		return 0, err
	}
	model, err := ParseConstantModel(constantModelType)
	if err != nil {
		return 0, err
	}
	if err := requireObservations(name, x, 1); err != nil {
		return 0, err
	}
	return ti.SlowStochastic(x, model), nil
}

func smoothBulk(name, output string, in Input, constantModelType string, period int) (frame.Column, error) {
	x, err := resolveOne(name, in)
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
	return frame.NewFloat64(output, ti.SlowStochasticBulk(x, model, period)), nil
}

func WilliamsPercentRSingle(high, low Input, close float64) (float64, error) {
	const name = "williams_percent_r_single"
	in, err := resolve(name, high, low)
	if err != nil {
		return 0, err
	}
	if err := requireObservations(name, in[0], 1); err != nil {
		return 0, err
	}
	return ti.WilliamsPercentR(in[0], in[1], close), nil
}

func WilliamsPercentRBulk(high, low, close Input, period int) (frame.Column, error) {
	in, err := resolve("williams_percent_r_bulk", high, low, close)
	if err != nil {
		return frame.Column{}, err
	}
	if err := requirePeriod("period", period, 1); err != nil {
		return frame.Column{}, err
	}
	return frame.NewFloat64("williams_r", ti.WilliamsPercentRBulk(in[0], in[1], in[2], period)), nil
}

func MoneyFlowIndexSingle(prices, volume Input) (float64, error) {
	const name = "money_flow_index_single"
	in, err := resolve(name, prices, volume)
	if err != nil {
		return 0, err
	}
	if err := requireObservations(name, in[0], 2); err != nil {
		return 0, err
	}
	return ti.MoneyFlowIndex(in[0], in[1]), nil
}

func MoneyFlowIndexBulk(prices, volume Input, period int) (frame.Column, error) {
	in, err := resolve("money_flow_index_bulk", prices, volume)
	if err != nil {
		return frame.Column{}, err
	}
	if err := requirePeriod("period", period, 1); err != nil {
		return frame.Column{}, err
	}
	return frame.NewFloat64("mfi", ti.MoneyFlowIndexBulk(in[0], in[1], period)), nil
}

func RateOfChangeSingle(current, previous float64) float64 {
	return ti.RateOfChange(current, previous)
}

// RateOfChangeBulk compares each value with the one before it.
func RateOfChangeBulk(in Input) (frame.Column, error) {
	x, err := resolveOne("rate_of_change_bulk", in)
	if err != nil {
		return frame.Column{}, err
	}
	return frame.NewFloat64("roc", ti.RateOfChangeBulk(x)), nil
}

func OnBalanceVolumeSingle(current, previous, volume, previousOBV float64) float64 {
	return ti.OnBalanceVolume(current, previous, volume, previousOBV)
}

func OnBalanceVolumeBulk(prices, volume Input, previousOBV float64) (frame.Column, error) {
	in, err := resolve("on_balance_volume_bulk", prices, volume)
	if err != nil {
		return frame.Column{}, err
	}
	return frame.NewFloat64("obv", ti.OnBalanceVolumeBulk(in[0], in[1], previousOBV)), nil
}

func CommodityChannelIndexSingle(in Input, constantModelType, deviationModel string, multiplier float64) (float64, error) {
	const name = "commodity_channel_index_single"
	x, err := resolveOne(name, in)
	if err != nil {
		return 0, err
	}
	model, deviation, err := parseModelPair(constantModelType, deviationModel)
	if err != nil {
		return 0, err
	}
	if err := requireObservations(name, x, 1); err != nil {
		return 0, err
	}
	return ti.CommodityChannelIndex(x, model, deviation, multiplier), nil
}

func CommodityChannelIndexBulk(in Input, constantModelType, deviationModel string, multiplier float64, period int) (frame.Column, error) {
	x, err := resolveOne("commodity_channel_index_bulk", in)
	if err != nil {
		return frame.Column{}, err
	}
	model, deviation, err := parseModelPair(constantModelType, deviationModel)
	if err != nil {
		return frame.Column{}, err
	}
	if err := requirePeriod("period", period, 1); err != nil {
		return frame.Column{}, err
	}
	return frame.NewFloat64("cci", ti.CommodityChannelIndexBulk(x, model, deviation, multiplier, period)), nil
}

func McginleyDynamicCommodityChannelIndexSingle(in Input, previous float64, deviationModel string, multiplier float64) (McginleyDynamicCci, error) {
	const name = "mcginley_dynamic_commodity_channel_index_single"
	x, err := resolveOne(name, in)
	if err != nil {
		return McginleyDynamicCci{}, err
	}
	deviation, err := ParseDeviationModel(deviationModel)
	if err != nil {
		return McginleyDynamicCci{}, err
	}
	if err := requireObservations(name, x, 1); err != nil {
		return McginleyDynamicCci{}, err
	}
	cci, md := ti.McginleyDynamicCommodityChannelIndex(x, previous, deviation, multiplier)
	return McginleyDynamicCci{CommodityChannelIndex: cci, McginleyDynamic: md}, nil
}

func McginleyDynamicCommodityChannelIndexBulk(in Input, previous float64, deviationModel string, multiplier float64, period int) (*frame.Frame, error) {
	x, err := resolveOne("mcginley_dynamic_commodity_channel_index_bulk", in)
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
	cci, md := ti.McginleyDynamicCommodityChannelIndexBulk(x, previous, deviation, multiplier, period)
	return frame.New(frame.NewFloat64("cci", cci), frame.NewFloat64("mcginley_dynamic", md))
}

func MacdLineSingle(in Input, short int, shortModelType string, long int, longModelType string) (float64, error) {
	const name = "macd_line_single"
	x, err := resolveOne(name, in)
	if err != nil {
		return 0, err
	}
	shortModel, longModel, err := parseShortLong(short, shortModelType, long, longModelType)
	if err != nil {
		return 0, err
	}
	if err := requireAtLeast(name, x, max(short, long)); err != nil {
		return 0, err
	}
	return ti.MacdLine(x, short, shortModel, long, longModel), nil
}

func MacdLineBulk(in Input, short int, shortModelType string, long int, longModelType string) (frame.Column, error) {
	x, err := resolveOne("macd_line_bulk", in)
	if err != nil {
		return frame.Column{}, err
	}
	shortModel, longModel, err := parseShortLong(short, shortModelType, long, longModelType)
	if err != nil {
		return frame.Column{}, err
	}
	return frame.NewFloat64("macd", ti.MacdLineBulk(x, short, shortModel, long, longModel)), nil
}

func SignalLineSingle(macds Input, constantModelType string) (float64, error) {
	return smoothSingle("signal_line_single", macds, constantModelType)
}

func SignalLineBulk(macds Input, constantModelType string, period int) (frame.Column, error) {
	return smoothBulk("signal_line_bulk", "signal", macds, constantModelType, period)
}

func McginleyDynamicMacdLineBulk(in Input, short int, previousShort float64, long int, previousLong float64) (*frame.Frame, error) {
	x, err := resolveOne("mcginley_dynamic_macd_line_bulk", in)
	if err != nil {
		return nil, err
	}
	if err := requirePeriod("short_period", short, 1); err != nil {
		return nil, err
	}
	if err := requirePeriod("long_period", long, 1); err != nil {
		return nil, err
	}
	m := ti.McginleyDynamicMacdLineBulk(x, short, previousShort, long, previousLong)
	return frame.New(
		frame.NewFloat64("macd", m.Macd),
		frame.NewFloat64("short_mcginley", m.ShortMcginley),
		frame.NewFloat64("long_mcginley", m.LongMcginley),
	)
}

func ChaikinOscillatorBulk(high, low, close, volume Input, short, long int, previous float64, shortModelType, longModelType string) (*frame.Frame, error) {
	in, err := resolve("chaikin_oscillator_bulk", high, low, close, volume)
	if err != nil {
		return nil, err
	}
	shortModel, longModel, err := parseShortLong(short, shortModelType, long, longModelType)
	if err != nil {
		return nil, err
	}
	osc, ad := ti.ChaikinOscillatorBulk(in[0], in[1], in[2], in[3], short, long, previous, shortModel, longModel)
	return frame.New(frame.NewFloat64("chaikin_oscillator", osc), frame.NewFloat64("accumulation_distribution", ad))
}

func PercentagePriceOscillatorSingle(in Input, short, long int, constantModelType string) (float64, error) {
	const name = "percentage_price_oscillator_single"
	x, err := resolveOne(name, in)
	if err != nil {
		return 0, err
	}
	model, _, err := parseShortLong(short, constantModelType, long, constantModelType)
	if err != nil {
		return 0, err
	}
	if err := requireAtLeast(name, x, max(short, long)); err != nil {
		return 0, err
	}
	return ti.PercentagePriceOscillator(x, short, long, model), nil
}

func PercentagePriceOscillatorBulk(in Input, short, long int, constantModelType string) (frame.Column, error) {
	x, err := resolveOne("percentage_price_oscillator_bulk", in)
	if err != nil {
		return frame.Column{}, err
	}
	model, _, err := parseShortLong(short, constantModelType, long, constantModelType)
	if err != nil {
		return frame.Column{}, err
	}
	return frame.NewFloat64("ppo", ti.PercentagePriceOscillatorBulk(x, short, long, model)), nil
}

func ChandeMomentumOscillatorSingle(in Input) (float64, error) {
	return single("chande_momentum_oscillator_single", in, ti.ChandeMomentumOscillator)
}

func ChandeMomentumOscillatorBulk(in Input, period int) (frame.Column, error) {
	return bulk("chande_momentum_oscillator_bulk", "chande_momentum_oscillator", in, period, ti.ChandeMomentumOscillatorBulk)
}

func parseModelPair(constantModelType, deviationModel string) (ti.ConstantModel, ti.DeviationModel, error) {
	model, err := ParseConstantModel(constantModelType)
	if err != nil {
		return 0, 0, err
	}
	deviation, err := ParseDeviationModel(deviationModel)
	if err != nil {
		return 0, 0, err
	}
	return model, deviation, nil
}

// parseShortLong validates a short/long period pair and their models.
func parseShortLong(short int, shortModelType string, long int, longModelType string) (ti.ConstantModel, ti.ConstantModel, error) {
	if err := requirePeriod("short_period", short, 1); err != nil {
		return 0, 0, err
	}
	if err := requirePeriod("long_period", long, 1); err != nil {
		return 0, 0, err
	}
	shortModel, err := ParseConstantModel(shortModelType)
	if err != nil {
		return 0, 0, err
	}
	longModel, err := ParseConstantModel(longModelType)
	if err != nil {
		return 0, 0, err
	}
	return shortModel, longModel, nil
}
