// Package metrics counts indicator invocations on a private prometheus
// registry so a one-shot CLI can flush them to a node_exporter textfile.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	StatusOK    = "ok"
	StatusError = "error"
)

type Recorder struct {
	registry *prometheus.Registry
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	rows     prometheus.Counter
}

func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ezpz_indicator_calls_total",
			Help: "Indicator invocations by entry point and outcome",
		}, []string{"indicator", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ezpz_indicator_duration_seconds",
			Help:    "Wall time of one indicator invocation",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"indicator"}),
		rows: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ezpz_input_rows_total",
			Help: "Rows read from input frames",
		}),
	}
	r.registry.MustRegister(r.calls, r.duration, r.rows)
	return r
}

// Observe records one call. err decides the status label.
func (r *Recorder) Observe(indicator string, started time.Time, err error) {
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	r.calls.WithLabelValues(indicator, status).Inc()
	r.duration.WithLabelValues(indicator).Observe(time.Since(started).Seconds())
}

func (r *Recorder) AddRows(n int) {
	r.rows.Add(float64(n))
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes the registry in the text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
