package indicator

import (
	"github.com/amirphl/ezpz-ti/internal/frame"
	"github.com/amirphl/ezpz-ti/internal/ti"
)

func UlcerIndexSingle(in Input) (float64, error) {
	return single("ulcer_index_single", in, ti.UlcerIndex)
}

func UlcerIndexBulk(in Input, period int) (frame.Column, error) {
	return bulk("ulcer_index_bulk", "ulcer_index", in, period, ti.UlcerIndexBulk)
}

func VolatilitySystemBulk(high, low, close Input, period int, multiplier float64, constantModelType string) (frame.Column, error) {
	in, err := resolve("volatility_system_bulk", high, low, close)
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
	return frame.NewFloat64("volatility_system", ti.VolatilitySystemBulk(in[0], in[1], in[2], period, multiplier, model)), nil
}
