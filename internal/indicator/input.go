package indicator

import (
	"errors"
	"slices"

	"github.com/amirphl/ezpz-ti/internal/frame"
)

type inputKind uint8

const (
	bareValues inputKind = iota
	bareColumn
	namedColumn
)

// Input is one numeric series handed to an entry point: a bare slice, a bare
// column, or a column looked up by name in a frame.
type Input struct {
	kind   inputKind
	values []float64
	column frame.Column
	source *frame.Frame
	name   string
}

// Values wraps a bare series. Resolution is skipped and the slice is copied.
func Values(v []float64) Input {
	return Input{kind: bareValues, values: v}
}

// FromColumn wraps a bare column; only coercion applies.
func FromColumn(c frame.Column) Input {
	return Input{kind: bareColumn, column: c, name: c.Name()}
}

// FromFrame refers to the column called name in f.
func FromFrame(f *frame.Frame, name string) Input {
	return Input{kind: namedColumn, source: f, name: name}
}

// Name is the column name, empty for bare values.
func (in Input) Name() string {
	return in.name
}

// Float64s resolves the input and coerces it to float64. Nulls become NaN.
func (in Input) Float64s() ([]float64, error) {
	switch in.kind {
	case namedColumn:
		if in.source == nil {
			return nil, &ColumnNotFoundError{Column: in.name, Err: errors.New("no frame to look up in")}
		}
		c, err := in.source.Column(in.name)
		if err != nil {
			return nil, &ColumnNotFoundError{Column: in.name, Err: err}
		}
		return coerce(c)
	case bareColumn:
		return coerce(in.column)
	}
	out := slices.Clone(in.values)
	if out == nil {
		out = []float64{}
	}
	return out, nil
}

func coerce(c frame.Column) ([]float64, error) {
	values, err := c.Float64s()
	if err != nil {
		return nil, &CoercionError{Column: c.Name(), DType: c.DType()}
	}
	return values, nil
}
