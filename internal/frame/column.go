// Package frame
package frame

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"time"
)

// DType identifies the storage type of a column.
type DType uint8

const (
	Float64 DType = iota
	Float32
	Int64
	Int32
	Int16
	Int8
	Uint64
	Uint32
	Uint16
	Uint8
	Bool
	String
	Time
)

var dtypeNames = [...]string{
	Float64: "f64",
	Float32: "f32",
	Int64:   "i64",
	Int32:   "i32",
	Int16:   "i16",
	Int8:    "i8",
	Uint64:  "u64",
	Uint32:  "u32",
	Uint16:  "u16",
	Uint8:   "u8",
	Bool:    "bool",
	String:  "str",
	Time:    "datetime",
}

func (d DType) String() string {
	if int(d) < len(dtypeNames) {
		return dtypeNames[d]
	}
	return "dtype(" + strconv.Itoa(int(d)) + ")"
}

// IsNumeric reports whether values of this dtype can be widened to float64.
func (d DType) IsNumeric() bool {
	return d <= Uint8
}

// ErrNotNumeric is returned when a non-numeric column is coerced.
var ErrNotNumeric = errors.New("column is not numeric")

// Column is a named, typed, immutable sequence with an optional null mask.
type Column struct {
	name  string
	dtype DType
	data  any
	valid []bool
	n     int
}

func newColumn[T any](name string, dtype DType, values []T) Column {
	data := make([]T, len(values))
	copy(data, values)
	return Column{name: name, dtype: dtype, data: data, n: len(values)}
}

func NewFloat64(name string, values []float64) Column { return newColumn(name, Float64, values) }
func NewFloat32(name string, values []float32) Column { return newColumn(name, Float32, values) }
func NewInt64(name string, values []int64) Column     { return newColumn(name, Int64, values) }
func NewInt32(name string, values []int32) Column     { return newColumn(name, Int32, values) }
func NewInt16(name string, values []int16) Column     { return newColumn(name, Int16, values) }
func NewInt8(name string, values []int8) Column       { return newColumn(name, Int8, values) }
func NewUint64(name string, values []uint64) Column   { return newColumn(name, Uint64, values) }
func NewUint32(name string, values []uint32) Column   { return newColumn(name, Uint32, values) }
func NewUint16(name string, values []uint16) Column   { return newColumn(name, Uint16, values) }
func NewUint8(name string, values []uint8) Column     { return newColumn(name, Uint8, values) }
func NewBool(name string, values []bool) Column       { return newColumn(name, Bool, values) }
func NewString(name string, values []string) Column   { return newColumn(name, String, values) }
func NewTime(name string, values []time.Time) Column  { return newColumn(name, Time, values) }

// NewInt stores platform ints as i64.
func NewInt(name string, values []int) Column {
	data := make([]int64, len(values))
	for i, v := range values {
		data[i] = int64(v)
	}
	return Column{name: name, dtype: Int64, data: data, n: len(values)}
}

// WithNulls returns a copy of the column where valid[i] == false marks row i as null.
func (c Column) WithNulls(valid []bool) (Column, error) {
	if len(valid) != c.n {
		return Column{}, fmt.Errorf("null mask has %d entries, column %q has %d rows", len(valid), c.name, c.n)
	}
	c.valid = slices.Clone(valid)
	return c, nil
}

func (c Column) Name() string { return c.name }
func (c Column) DType() DType { return c.dtype }
func (c Column) Len() int     { return c.n }

// Rename returns the same data under a different name.
func (c Column) Rename(name string) Column {
	c.name = name
	return c
}

func (c Column) IsNull(i int) bool {
	return c.valid != nil && !c.valid[i]
}

func (c Column) NullCount() int {
	count := 0
	for _, ok := range c.valid {
		if !ok {
			count++
		}
	}
	return count
}

// Values exposes the typed backing slice ([]float64, []string, ...). It must not be modified.
func (c Column) Values() any {
	return c.data
}

type number interface {
	~float32 | ~float64 | ~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

func widen[T number](values []T) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}

// Float64s casts every element to float64. Nulls become NaN so the length
// always matches the column.
func (c Column) Float64s() ([]float64, error) {
	var out []float64
	switch v := c.data.(type) {
	case []float64:
		out = slices.Clone(v)
	case []float32:
		out = widen(v)
	case []int64:
		out = widen(v)
	case []int32:
		out = widen(v)
	case []int16:
		out = widen(v)
	case []int8:
		out = widen(v)
	case []uint64:
		out = widen(v)
	case []uint32:
		out = widen(v)
	case []uint16:
		out = widen(v)
	case []uint8:
		out = widen(v)
	default:
		return nil, fmt.Errorf("%w: %q has dtype %s", ErrNotNumeric, c.name, c.dtype)
	}
	for i := range out {
		if c.IsNull(i) {
			out[i] = math.NaN()
		}
	}
	return out, nil
}

// Format renders row i the way it is written to CSV. Nulls render as NaN.
func (c Column) Format(i int) string {
	if c.IsNull(i) {
		return "NaN"
	}
	switch v := c.data.(type) {
	case []float64:
		return strconv.FormatFloat(v[i], 'f', -1, 64)
	case []float32:
		return strconv.FormatFloat(float64(v[i]), 'f', -1, 32)
	case []int64:
		return strconv.FormatInt(v[i], 10)
	case []int32:
		return strconv.FormatInt(int64(v[i]), 10)
	case []int16:
		return strconv.FormatInt(int64(v[i]), 10)
	case []int8:
		return strconv.FormatInt(int64(v[i]), 10)
	case []uint64:
		return strconv.FormatUint(v[i], 10)
	case []uint32:
		return strconv.FormatUint(uint64(v[i]), 10)
	case []uint16:
		return strconv.FormatUint(uint64(v[i]), 10)
	case []uint8:
		return strconv.FormatUint(uint64(v[i]), 10)
	case []bool:
		return strconv.FormatBool(v[i])
	case []string:
		return v[i]
	case []time.Time:
		return v[i].Format(time.RFC3339)
	}
	return ""
}
