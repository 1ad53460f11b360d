package frame

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		columns []Column
		wantErr string
		height  int
	}{
		{
			name:    "equal lengths",
			columns: []Column{NewFloat64("a", []float64{1, 2}), NewString("b", []string{"x", "y"})},
			height:  2,
		},
		{
			name:    "no columns",
			columns: nil,
			height:  0,
		},
		{
			name:    "length mismatch",
			columns: []Column{NewFloat64("a", []float64{1, 2}), NewInt("b", []int{1})},
			wantErr: "has 1 rows, expected 2",
		},
		{
			name:    "duplicate names",
			columns: []Column{NewFloat64("a", []float64{1}), NewFloat64("a", []float64{2})},
			wantErr: "duplicate column name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := New(tt.columns...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.height, f.Height())
			assert.Equal(t, len(tt.columns), f.Width())
		})
	}
}

func TestFrameColumnLookup(t *testing.T) {
	f, err := New(NewFloat64("close", []float64{1, 2, 3}), NewFloat64("open", []float64{1, 2, 3}))
	require.NoError(t, err)

	c, err := f.Column("close")
	require.NoError(t, err)
	assert.Equal(t, "close", c.Name())

	_, err = f.Column("Close")
	require.ErrorIs(t, err, ErrColumnNotFound)
	assert.Contains(t, err.Error(), "[close open]")
}

func TestFrameWith(t *testing.T) {
	f, err := New(NewFloat64("a", []float64{1, 2}))
	require.NoError(t, err)

	g, err := f.With(NewFloat64("b", []float64{3, 4}), NewFloat64("a", []float64{5, 6}))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, g.Names())

	a, err := g.Column("a")
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 6}, a.Values())

	_, err = f.With(NewFloat64("c", []float64{1}))
	assert.Error(t, err)
}

func TestFloat64s(t *testing.T) {
	t.Run("every numeric width", func(t *testing.T) {
		signed := []float64{1, -2}
		unsigned := []float64{1, 2}
		cases := []struct {
			column Column
			want   []float64
		}{
			{NewFloat32("f32", []float32{1.5, -2}), []float64{1.5, -2}},
			{NewInt64("i64", []int64{1, -2}), signed},
			{NewInt32("i32", []int32{1, -2}), signed},
			{NewInt16("i16", []int16{1, -2}), signed},
			{NewInt8("i8", []int8{1, -2}), signed},
			{NewUint64("u64", []uint64{1, 2}), unsigned},
			{NewUint32("u32", []uint32{1, 2}), unsigned},
			{NewUint16("u16", []uint16{1, 2}), unsigned},
			{NewUint8("u8", []uint8{1, 2}), unsigned},
		}
		for _, tc := range cases {
			assert.True(t, tc.column.DType().IsNumeric(), tc.column.Name())
			got, err := tc.column.Float64s()
			require.NoError(t, err, tc.column.Name())
			assert.Equal(t, tc.want, got, tc.column.Name())
		}
	})

	t.Run("nulls become NaN", func(t *testing.T) {
		c, err := NewInt32("v", []int32{1, 0, 3}).WithNulls([]bool{true, false, true})
		require.NoError(t, err)
		got, err := c.Float64s()
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, 1.0, got[0])
		assert.True(t, math.IsNaN(got[1]))
		assert.Equal(t, 3.0, got[2])
		assert.Equal(t, 1, c.NullCount())
	})

	t.Run("non numeric", func(t *testing.T) {
		for _, c := range []Column{
			NewString("s", []string{"a"}),
			NewBool("b", []bool{true}),
		} {
			_, err := c.Float64s()
			require.ErrorIs(t, err, ErrNotNumeric)
			assert.Contains(t, err.Error(), c.DType().String())
		}
	})

	t.Run("round trip is bit identical", func(t *testing.T) {
		in := []float64{0, -0.0, 1e-300, math.Inf(1), math.NaN(), 3.141592653589793}
		got, err := NewFloat64("x", in).Float64s()
		require.NoError(t, err)
		for i := range in {
			assert.Equal(t, math.Float64bits(in[i]), math.Float64bits(got[i]), "index %d", i)
		}
	})

	t.Run("copy is independent", func(t *testing.T) {
		in := []float64{1, 2}
		c := NewFloat64("x", in)
		in[0] = 99
		got, err := c.Float64s()
		require.NoError(t, err)
		got[1] = 42
		again, _ := c.Float64s()
		assert.Equal(t, []float64{1, 2}, again)
	})
}

func TestWithNullsLengthMismatch(t *testing.T) {
	_, err := NewFloat64("x", []float64{1, 2}).WithNulls([]bool{true})
	assert.Error(t, err)
}

func TestReadCSV(t *testing.T) {
	doc := "ts,close,symbol\n1,10.5,BTC\n2,NaN,ETH\n3,12,BTC\n"
	f, err := ReadCSV(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, 3, f.Height())
	assert.Equal(t, []string{"ts", "close", "symbol"}, f.Names())

	ts, err := f.Column("ts")
	require.NoError(t, err)
	assert.Equal(t, Int64, ts.DType())

	closes, err := f.Column("close")
	require.NoError(t, err)
	assert.Equal(t, Float64, closes.DType())
	values, err := closes.Float64s()
	require.NoError(t, err)
	assert.Equal(t, 10.5, values[0])
	assert.True(t, math.IsNaN(values[1]))

	symbol, err := f.Column("symbol")
	require.NoError(t, err)
	assert.Equal(t, String, symbol.DType())
	_, err = symbol.Float64s()
	assert.ErrorIs(t, err, ErrNotNumeric)
}

func TestReadCSVKeepsLargeIntegers(t *testing.T) {
	doc := "uid,x\n1834567890123456789,1\n9223372036854775807,2\n"
	f, err := ReadCSV(strings.NewReader(doc))
	require.NoError(t, err)

	uid, err := f.Column("uid")
	require.NoError(t, err)
	require.Equal(t, Int64, uid.DType())
	assert.Equal(t, []int64{1834567890123456789, 9223372036854775807}, uid.Values())
	assert.Equal(t, "1834567890123456789", uid.Format(0))

	var buf bytes.Buffer
	require.NoError(t, f.WriteCSV(&buf))
	assert.Contains(t, buf.String(), "1834567890123456789,1")
}

func TestWriteCSV(t *testing.T) {
	f, err := New(
		NewInt("n", []int{1, 2}),
		NewFloat64("sma", []float64{math.NaN(), 1.5}),
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.WriteCSV(&buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "n,sma", lines[0])
	assert.True(t, strings.HasPrefix(lines[2], "2,1.5"), lines[2])
}
