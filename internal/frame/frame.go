package frame

import (
	"errors"
	"fmt"
	"slices"
)

// ErrColumnNotFound is returned by Frame.Column for an unknown name.
var ErrColumnNotFound = errors.New("column not found")

// Frame is an ordered set of equally long, uniquely named columns.
type Frame struct {
	columns []Column
	index   map[string]int
	height  int
}

// New builds a frame. All columns must have the same length and distinct names.
func New(columns ...Column) (*Frame, error) {
	f := &Frame{
		columns: make([]Column, 0, len(columns)),
		index:   make(map[string]int, len(columns)),
	}
	for i, c := range columns {
		if _, dup := f.index[c.name]; dup {
			return nil, fmt.Errorf("duplicate column name %q", c.name)
		}
		if i == 0 {
			f.height = c.n
		} else if c.n != f.height {
			return nil, fmt.Errorf("column %q has %d rows, expected %d", c.name, c.n, f.height)
		}
		f.index[c.name] = i
		f.columns = append(f.columns, c)
	}
	return f, nil
}

// Column looks a column up by exact, case-sensitive name.
func (f *Frame) Column(name string) (Column, error) {
	i, ok := f.index[name]
	if !ok {
		return Column{}, fmt.Errorf("%w: %q (available: %v)", ErrColumnNotFound, name, f.Names())
	}
	return f.columns[i], nil
}

func (f *Frame) Names() []string {
	names := make([]string, len(f.columns))
	for i, c := range f.columns {
		names[i] = c.name
	}
	return names
}

func (f *Frame) Columns() []Column {
	return slices.Clone(f.columns)
}

func (f *Frame) Height() int { return f.height }
func (f *Frame) Width() int  { return len(f.columns) }

// With returns a new frame with columns appended, replacing any existing
// column of the same name in place.
func (f *Frame) With(columns ...Column) (*Frame, error) {
	merged := slices.Clone(f.columns)
	for _, c := range columns {
		if i, ok := f.index[c.name]; ok {
			merged[i] = c
			continue
		}
		merged = append(merged, c)
	}
	return New(merged...)
}
