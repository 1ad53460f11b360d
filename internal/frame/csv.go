package frame

import (
	"fmt"
	"io"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// FromDataFrame converts a gota DataFrame. Float columns keep NaN as a value,
// Int/Bool/String columns carry NaN cells as nulls.
func FromDataFrame(df dataframe.DataFrame) (*Frame, error) {
	if df.Err != nil {
		return nil, fmt.Errorf("invalid dataframe: %w", df.Err)
	}
	names := df.Names()
	columns := make([]Column, 0, len(names))
	for _, name := range names {
		c, err := fromSeries(df.Col(name))
		if err != nil {
			return nil, err
		}
		columns = append(columns, c)
	}
	return New(columns...)
}

func fromSeries(s series.Series) (Column, error) {
	if s.Err != nil {
		return Column{}, fmt.Errorf("series %q: %w", s.Name, s.Err)
	}
	nulls := s.IsNaN()
	valid := make([]bool, len(nulls))
	hasNull := false
	for i, isNull := range nulls {
		valid[i] = !isNull
		hasNull = hasNull || isNull
	}

	var c Column
	switch s.Type() {
	case series.Float:
		return NewFloat64(s.Name, s.Float()), nil
	case series.Int:
		// element-wise so ids above 2^53 do not round through float64
		ints := make([]int64, s.Len())
		for i := range ints {
			if !valid[i] {
				continue
			}
			v, err := s.Elem(i).Int()
			if err != nil {
				return Column{}, fmt.Errorf("series %q row %d: %w", s.Name, i, err)
			}
			ints[i] = int64(v)
		}
		c = NewInt64(s.Name, ints)
	case series.Bool:
		records := s.Records()
		bools := make([]bool, len(records))
		for i, r := range records {
			bools[i] = r == "true"
		}
		c = NewBool(s.Name, bools)
	default:
		c = NewString(s.Name, s.Records())
	}
	if !hasNull {
		return c, nil
	}
	return c.WithNulls(valid)
}

func gotaType(d DType) series.Type {
	switch {
	case d == Float64 || d == Float32:
		return series.Float
	case d.IsNumeric():
		return series.Int
	case d == Bool:
		return series.Bool
	}
	return series.String
}

// DataFrame converts the frame to a gota DataFrame. Unsigned and narrow
// integer widths collapse to gota's Int, times to RFC 3339 strings.
func (f *Frame) DataFrame() dataframe.DataFrame {
	ss := make([]series.Series, 0, len(f.columns))
	for _, c := range f.columns {
		records := make([]string, c.n)
		for i := range records {
			records[i] = c.Format(i)
		}
		ss = append(ss, series.New(records, gotaType(c.dtype), c.name))
	}
	return dataframe.New(ss...)
}

// ReadCSV parses a headed CSV document with gota's type inference.
func ReadCSV(r io.Reader) (*Frame, error) {
	return FromDataFrame(dataframe.ReadCSV(r))
}

// WriteCSV writes the frame with a header row.
func (f *Frame) WriteCSV(w io.Writer) error {
	if err := f.DataFrame().WriteCSV(w); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}
