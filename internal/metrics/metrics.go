package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records the figures of a single pipeline run in its own registry.
type Metrics struct {
	registry   *prometheus.Registry
	prometheus Prometheus
}

func New(run string) *Metrics {
	registry := prometheus.NewRegistry()
	p := NewPrometheusMetrics(run)
	registry.MustRegister(p.collectors()...)
	return &Metrics{
		registry:   registry,
		prometheus: p,
	}
}

func (m *Metrics) Documents(n int) {
	m.prometheus.Documents.Set(float64(n))
}

func (m *Metrics) Vocabulary(n int) {
	m.prometheus.Vocabulary.Set(float64(n))
}

func (m *Metrics) Partition(name string, n int) {
	m.prometheus.Rows.WithLabelValues(name).Set(float64(n))
}

func (m *Metrics) Accuracy(a float64) {
	m.prometheus.Accuracy.Set(a)
}

func (m *Metrics) Stage(name string, d time.Duration) {
	m.prometheus.Duration.WithLabelValues(name).Set(d.Seconds())
}

// Registry exposes the gatherer of the run.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTo writes the metrics in the text exposition format to the given file.
func (m *Metrics) WriteTo(file string) error {
	if err := prometheus.WriteToTextfile(file, m.registry); err != nil {
		return fmt.Errorf("could not write metrics to '%s': %w", file, err)
	}
	return nil
}
