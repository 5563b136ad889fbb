package sink

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ib-77/trycatch/pkg/try/catch"
)

// Metrics counts failures seen by its Sink.
type Metrics struct {
	failures *prometheus.CounterVec
}

// NewMetrics registers trycatch_failures_total on reg, or on the default
// registerer when reg is nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trycatch_failures_total",
				Help: "Failed calls seen by catch helpers, by failure kind.",
			},
			[]string{"kind"},
		),
	}

	reg.MustRegister(m.failures)
	return m
}

func (m *Metrics) Sink() catch.Sink {
	return func(_ string, cause error) {
		m.failures.WithLabelValues(Kind(cause)).Inc()
	}
}

// Counter increments c once per failure.
func Counter(c prometheus.Counter) catch.Sink {
	return func(string, error) {
		c.Inc()
	}
}
