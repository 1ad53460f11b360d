package indicator

import (
	"github.com/amirphl/ezpz-ti/internal/frame"
	"github.com/amirphl/ezpz-ti/internal/ti"
)

func AccumulationDistributionSingle(high, low, close, volume, previous float64) float64 {
	return ti.AccumulationDistribution(high, low, close, volume, previous)
}

func AccumulationDistributionBulk(high, low, close, volume Input, previous float64) (frame.Column, error) {
	in, err := resolve("accumulation_distribution_bulk", high, low, close, volume)
	if err != nil {
		return frame.Column{}, err
	}
	return frame.NewFloat64("accumulation_distribution", ti.AccumulationDistributionBulk(in[0], in[1], in[2], in[3], previous)), nil
}

// VolumeIndexSingle starts from 100 when previousIndex is zero.
func VolumeIndexSingle(current, previous, previousIndex float64) float64 {
	return ti.VolumeIndex(current, previous, previousIndex)
}

func PositiveVolumeIndexBulk(close, volume Input, previous float64) (frame.Column, error) {
	in, err := resolve("positive_volume_index_bulk", close, volume)
	if err != nil {
		return frame.Column{}, err
	}
	return frame.NewFloat64("positive_volume_index", ti.PositiveVolumeIndexBulk(in[0], in[1], previous)), nil
}

func NegativeVolumeIndexBulk(close, volume Input, previous float64) (frame.Column, error) {
	in, err := resolve("negative_volume_index_bulk", close, volume)
	if err != nil {
		return frame.Column{}, err
	}
	return frame.NewFloat64("negative_volume_index", ti.NegativeVolumeIndexBulk(in[0], in[1], previous)), nil
}

// RelativeVigorIndexSingle needs at least four bars.
func RelativeVigorIndexSingle(open, high, low, close Input, constantModelType string) (float64, error) {
	const name = "relative_vigor_index_single"
	in, err := resolve(name, open, high, low, close)
	if err != nil {
		return 0, err
	}
	model, err := ParseConstantModel(constantModelType)
	if err != nil {
		return 0, err
	}
	if err := requireAtLeast(name, in[3], 4); err != nil {
		return 0, err
	}
	return ti.RelativeVigorIndex(in[0], in[1], in[2], in[3], model), nil
}

func RelativeVigorIndexBulk(open, high, low, close Input, constantModelType string, period int) (frame.Column, error) {
	in, err := resolve("relative_vigor_index_bulk", open, high, low, close)
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
	return frame.NewFloat64("relative_vigor_index", ti.RelativeVigorIndexBulk(in[0], in[1], in[2], in[3], model, period)), nil
}
