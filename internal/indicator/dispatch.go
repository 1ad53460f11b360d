// Package indicator exposes technical indicators over frames. Each entry point
// resolves its input columns, coerces them to float64, parses its
// configuration tokens, runs one transform from package ti and names the
// result.
package indicator

import (
	"fmt"

	"github.com/amirphl/ezpz-ti/internal/frame"
)

// resolve runs every input through resolution and coercion and requires the
// results to be equally long.
func resolve(name string, inputs ...Input) ([][]float64, error) {
	out := make([][]float64, len(inputs))
	for i, in := range inputs {
		values, err := in.Float64s()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if i > 0 && len(values) != len(out[0]) {
			return nil, &LengthPreconditionError{Name: name, Required: len(out[0]), Actual: len(values), Exact: true}
		}
		out[i] = values
	}
	return out, nil
}

func resolveOne(name string, in Input) ([]float64, error) {
	out, err := resolve(name, in)
	if err != nil {
		return nil, err
	}
	return out[0], nil
}

func requireObservations(name string, x []float64, minimum int) error {
	if len(x) < minimum {
		return &EmptyInputError{Name: name, Minimum: minimum}
	}
	return nil
}

func requireAtLeast(name string, x []float64, required int) error {
	if len(x) < required {
		return &LengthPreconditionError{Name: name, Required: required, Actual: len(x)}
	}
	return nil
}

func requireExactly(name string, x []float64, required int) error {
	if len(x) != required {
		return &LengthPreconditionError{Name: name, Required: required, Actual: len(x), Exact: true}
	}
	return nil
}

func requirePeriod(param string, period, minimum int) error {
	if period < minimum {
		return &InvalidParameterError{Name: param, Value: period, Reason: fmt.Sprintf("must be at least %d", minimum)}
	}
	return nil
}

// single reduces one input with fn after requiring a non-empty series.
func single(name string, in Input, fn func([]float64) float64) (float64, error) {
	x, err := resolveOne(name, in)
	if err != nil {
		return 0, err
	}
	if err := requireObservations(name, x, 1); err != nil {
		return 0, err
	}
	return fn(x), nil
}

// bulk runs a windowed transform over one input and names the result.
func bulk(name, output string, in Input, period int, fn func([]float64, int) []float64) (frame.Column, error) {
	x, err := resolveOne(name, in)
	if err != nil {
		return frame.Column{}, err
	}
	if err := requirePeriod("period", period, 1); err != nil {
		return frame.Column{}, err
	}
	return frame.NewFloat64(output, fn(x, period)), nil
}

// bandsFrame assembles a lower/middle/upper triple under the given names.
func bandsFrame(names [3]string, lower, middle, upper []float64) (*frame.Frame, error) {
	return frame.New(
		frame.NewFloat64(names[0], lower),
		frame.NewFloat64(names[1], middle),
		frame.NewFloat64(names[2], upper),
	)
}

var (
	bandNames     = [3]string{"lower_band", "middle_band", "upper_band"}
	envelopeNames = [3]string{"lower_envelope", "middle_envelope", "upper_envelope"}
)
