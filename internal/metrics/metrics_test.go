package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	r := New()
	r.Observe("mean_single", time.Now(), nil)
	r.Observe("mean_single", time.Now(), nil)
	r.Observe("mean_single", time.Now(), errors.New("boom"))
	r.AddRows(10)

	families, err := r.Registry().Gather()
	require.NoError(t, err)

	got := map[string]float64{}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				key := mf.GetName()
				for _, l := range m.GetLabel() {
					key += "/" + l.GetValue()
				}
				got[key] = m.GetCounter().GetValue()
			case m.GetHistogram() != nil:
				got[mf.GetName()] = float64(m.GetHistogram().GetSampleCount())
			}
		}
	}
	assert.Equal(t, 2.0, got["ezpz_indicator_calls_total/mean_single/ok"])
	assert.Equal(t, 1.0, got["ezpz_indicator_calls_total/mean_single/error"])
	assert.Equal(t, 10.0, got["ezpz_input_rows_total"])
	assert.Equal(t, 3.0, got["ezpz_indicator_duration_seconds"])
}

func TestWriteTextfile(t *testing.T) {
	r := New()
	r.Observe("sma_bulk", time.Now(), nil)

	path := filepath.Join(t.TempDir(), "ezpz.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `ezpz_indicator_calls_total{indicator="sma_bulk",status="ok"} 1`)
}
