package indicator

import (
	"math"
	"testing"

	"github.com/amirphl/ezpz-ti/internal/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFrame(t *testing.T) *frame.Frame {
	t.Helper()
	f, err := frame.New(
		frame.NewFloat64("close", []float64{1, 2, 3}),
		frame.NewInt64("volume", []int64{10, 20, 30}),
		frame.NewString("symbol", []string{"BTC", "ETH", "BTC"}),
	)
	require.NoError(t, err)
	return f
}

func TestValuesAreCopied(t *testing.T) {
	src := []float64{1, 2, 3}
	got, err := Values(src).Float64s()
	require.NoError(t, err)
	got[0] = 99
	assert.Equal(t, 1.0, src[0])

	got, err = Values(nil).Float64s()
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFromFrame(t *testing.T) {
	f := testFrame(t)

	got, err := FromFrame(f, "close").Float64s()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, got)

	got, err = FromFrame(f, "volume").Float64s()
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20, 30}, got)
}

func TestFromFrameErrors(t *testing.T) {
	f := testFrame(t)

	_, err := FromFrame(f, "Close").Float64s()
	require.ErrorIs(t, err, ErrColumnNotFound)
	require.ErrorIs(t, err, frame.ErrColumnNotFound)
	var notFound *ColumnNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Close", notFound.Column)
	assert.Contains(t, err.Error(), "available")

	_, err = FromFrame(f, "symbol").Float64s()
	require.ErrorIs(t, err, ErrCoercion)
	var coercion *CoercionError
	require.ErrorAs(t, err, &coercion)
	assert.Equal(t, frame.String, coercion.DType)

	_, err = FromFrame(nil, "close").Float64s()
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestFromColumnNulls(t *testing.T) {
	c, err := frame.NewInt32("volume", []int32{1, 2, 3}).WithNulls([]bool{true, false, true})
	require.NoError(t, err)

	in := FromColumn(c)
	assert.Equal(t, "volume", in.Name())
	got, err := in.Float64s()
	require.NoError(t, err)
	assert.Equal(t, 1.0, got[0])
	assert.True(t, math.IsNaN(got[1]))
	assert.Equal(t, 3.0, got[2])
}

func TestColumnRoundTrip(t *testing.T) {
	values := []float64{0.1, -2.5e300, math.SmallestNonzeroFloat64, 42}
	got, err := FromColumn(frame.NewFloat64("x", values)).Float64s()
	require.NoError(t, err)
	for i := range values {
		assert.Equal(t, math.Float64bits(values[i]), math.Float64bits(got[i]))
	}
}
