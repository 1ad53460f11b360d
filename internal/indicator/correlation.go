package indicator

import (
	"github.com/amirphl/ezpz-ti/internal/frame"
	"github.com/amirphl/ezpz-ti/internal/ti"
)

func CorrelateAssetPricesSingle(a, b Input, constantModelType, deviationModel string) (float64, error) {
	const name = "correlate_asset_prices_single"
	in, err := resolve(name, a, b)
	if err != nil {
		return 0, err
	}
	model, deviation, err := parseModelPair(constantModelType, deviationModel)
	if err != nil {
		return 0, err
	}
	if err := requireObservations(name, in[0], 1); err != nil {
		return 0, err
	}
	return ti.CorrelateAssetPrices(in[0], in[1], model, deviation), nil
}

func CorrelateAssetPricesBulk(a, b Input, constantModelType, deviationModel string, period int) (frame.Column, error) {
	in, err := resolve("correlate_asset_prices_bulk", a, b)
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
	return frame.NewFloat64("correlation", ti.CorrelateAssetPricesBulk(in[0], in[1], model, deviation, period)), nil
}
