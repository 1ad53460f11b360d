package indicator

import (
	"github.com/amirphl/ezpz-ti/internal/frame"
	"github.com/amirphl/ezpz-ti/internal/ti"
)

func ReturnOnInvestmentSingle(startPrice, endPrice, investment float64) ti.Return {
	return ti.ReturnOnInvestment(startPrice, endPrice, investment)
}

func ReturnOnInvestmentBulk(prices Input, investment float64) (*frame.Frame, error) {
	x, err := resolveOne("return_on_investment_bulk", prices)
	if err != nil {
		return nil, err
	}
	values, returns := ti.ReturnOnInvestmentBulk(x, investment)
	return frame.New(
		frame.NewFloat64("final_investment_value", values),
		frame.NewFloat64("percent_return", returns),
	)
}

func TrueRangeSingle(close, high, low float64) float64 {
	return ti.TrueRange(close, high, low)
}

func TrueRangeBulk(close, high, low Input) (frame.Column, error) {
	in, err := resolve("true_range_bulk", close, high, low)
	if err != nil {
		return frame.Column{}, err
	}
	return frame.NewFloat64("true_range", ti.TrueRangeBulk(in[0], in[1], in[2])), nil
}

func AverageTrueRangeSingle(close, high, low Input, constantModelType string) (float64, error) {
	const name = "average_true_range_single"
	in, err := resolve(name, close, high, low)
	if err != nil {
		return 0, err
	}
	model, err := ParseConstantModel(constantModelType)
	if err != nil {
		return 0, err
	}
	if err := requireObservations(name, in[0], 1); err != nil {
		return 0, err
	}
	return ti.AverageTrueRange(in[0], in[1], in[2], model), nil
}

func AverageTrueRangeBulk(close, high, low Input, constantModelType string, period int) (frame.Column, error) {
	in, err := resolve("average_true_range_bulk", close, high, low)
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
	return frame.NewFloat64("average_true_range", ti.AverageTrueRangeBulk(in[0], in[1], in[2], model, period)), nil
}

func InternalBarStrengthSingle(high, low, close float64) float64 {
	return ti.InternalBarStrength(high, low, close)
}

func InternalBarStrengthBulk(high, low, close Input) (frame.Column, error) {
	in, err := resolve("internal_bar_strength_bulk", high, low, close)
	if err != nil {
		return frame.Column{}, err
	}
	return frame.NewFloat64("internal_bar_strength", ti.InternalBarStrengthBulk(in[0], in[1], in[2])), nil
}

func PositivityIndicatorBulk(open, close Input, signalPeriod int, constantModelType string) (*frame.Frame, error) {
	in, err := resolve("positivity_indicator_bulk", open, close)
	if err != nil {
		return nil, err
	}
	model, err := ParseConstantModel(constantModelType)
	if err != nil {
		return nil, err
	}
	if err := requirePeriod("signal_period", signalPeriod, 1); err != nil {
		return nil, err
	}
	indicator, signal := ti.PositivityIndicatorBulk(in[0], in[1], signalPeriod, model)
	return frame.New(
		frame.NewFloat64("positivity_indicator", indicator),
		frame.NewFloat64("signal_line", signal),
	)
}
