package indicator

import (
	"github.com/amirphl/ezpz-ti/internal/frame"
	"github.com/amirphl/ezpz-ti/internal/ti"
)

func MovingAverageSingle(in Input, movingAverageType string) (float64, error) {
	const name = "moving_average_single"
	x, err := resolveOne(name, in)
	if err != nil {
		return 0, err
	}
	kind, err := ParseMovingAverage(movingAverageType)
	if err != nil {
		return 0, err
	}
	if err := requireObservations(name, x, 1); err != nil {
		return 0, err
	}
	return kind.Apply(x), nil
}

func MovingAverageBulk(in Input, movingAverageType string, period int) (frame.Column, error) {
	const name = "moving_average_bulk"
	x, err := resolveOne(name, in)
	if err != nil {
		return frame.Column{}, err
	}
	kind, err := ParseMovingAverage(movingAverageType)
	if err != nil {
		return frame.Column{}, err
	}
	if err := requirePeriod("period", period, 1); err != nil {
		return frame.Column{}, err
	}
	return frame.NewFloat64("moving_average", ti.MovingAverageBulk(x, kind.Model(), period)), nil
}

// McginleyDynamicSingle advances previous towards the last value of the input.
func McginleyDynamicSingle(in Input, previous float64, period int) (float64, error) {
	const name = "mcginley_dynamic_single"
	x, err := resolveOne(name, in)
	if err != nil {
		return 0, err
	}
	if err := requirePeriod("period", period, 1); err != nil {
		return 0, err
	}
	if err := requireObservations(name, x, 1); err != nil {
		return 0, err
	}
	return ti.McginleyDynamic(x[len(x)-1], previous, period), nil
}

func McginleyDynamicBulk(in Input, previous float64, period int) (frame.Column, error) {
	return bulk("mcginley_dynamic_bulk", "mcginley_dynamic", in, period, func(x []float64, p int) []float64 {
		return ti.McginleyDynamicBulk(x, previous, p)
	})
}

// PersonalisedMovingAverageSingle weights with alpha = alphaNum / (n + alphaDen).
func PersonalisedMovingAverageSingle(in Input, alphaNum, alphaDen float64) (float64, error) {
	return single("personalised_moving_average_single", in, func(x []float64) float64 {
		return ti.PersonalisedMovingAverage(x, alphaNum, alphaDen)
	})
}

func PersonalisedMovingAverageBulk(in Input, alphaNum, alphaDen float64, period int) (frame.Column, error) {
	return bulk("personalised_moving_average_bulk", "personalised_moving_average", in, period, func(x []float64, p int) []float64 {
		return ti.PersonalisedMovingAverageBulk(x, alphaNum, alphaDen, p)
	})
}
