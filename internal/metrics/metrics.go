// Package metrics records operation counts and calculation timings in a
// private Prometheus registry.
package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/common/expfmt"
)

const namespace = "utilkit"

// Operation labels for ObserveOperation.
const (
	OpGreet     = "greet"
	OpAdd       = "add"
	OpValue     = "value"
	OpFibonacci = "fibonacci"
)

// Registry owns the application's collectors. The zero value is not usable;
// call NewRegistry.
type Registry struct {
	registry         *prometheus.Registry
	operations       *prometheus.CounterVec
	calculations     *prometheus.HistogramVec
	accumulatorValue prometheus.Gauge
}

// NewRegistry creates a registry with the application collectors and the Go
// runtime collector registered.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Number of greeter, accumulator and Fibonacci operations performed.",
		}, []string{"operation"}),
		calculations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fibonacci_duration_seconds",
			Help:      "Duration of Fibonacci calculations by strategy and outcome.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 8),
		}, []string{"algorithm", "status"}),
		accumulatorValue: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "accumulator_value",
			Help:      "Last value read from the accumulator.",
		}),
	}
	r.registry.MustRegister(
		r.operations,
		r.calculations,
		r.accumulatorValue,
		collectors.NewGoCollector(),
	)
	return r
}

// ObserveOperation counts one call of op.
func (r *Registry) ObserveOperation(op string) {
	r.operations.WithLabelValues(op).Inc()
}

// ObserveCalculation records a calculator run.
func (r *Registry) ObserveCalculation(algorithm string, d time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	r.calculations.WithLabelValues(algorithm, status).Observe(d.Seconds())
}

// SetAccumulatorValue records the latest accumulator reading.
func (r *Registry) SetAccumulatorValue(v float64) {
	r.accumulatorValue.Set(v)
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteText writes every metric family in the Prometheus text exposition
// format.
func (r *Registry) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
