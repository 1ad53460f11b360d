package indicator

import (
	"github.com/amirphl/ezpz-ti/internal/frame"
	"github.com/amirphl/ezpz-ti/internal/ti"
)

// FullStochasticBulk computes %K and %D from bars.
func FullStochasticBulk(high, low, close Input, periodK, smoothK, periodD int) (*frame.Frame, error) {
	in, err := resolve("full_stochastic_bulk", high, low, close)
	if err != nil {
		return nil, err
	}
	if err := requirePeriod("period_k", periodK, 1); err != nil {
		return nil, err
	}
	if err := requirePeriod("smooth_k", smoothK, 1); err != nil {
		return nil, err
	}
	if err := requirePeriod("period_d", periodD, 1); err != nil {
		return nil, err
	}
	k, d := ti.FullStochasticBulk(in[0], in[1], in[2], periodK, smoothK, periodD)
	return frame.New(frame.NewFloat64("stochastic_k", k), frame.NewFloat64("stochastic_d", d))
}
