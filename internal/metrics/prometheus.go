package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "news_forest"

type Prometheus struct {
	Documents  prometheus.Gauge
	Vocabulary prometheus.Gauge
	Rows       *prometheus.GaugeVec
	Accuracy   prometheus.Gauge
	Duration   *prometheus.GaugeVec
}

func NewPrometheusMetrics(run string) Prometheus {
	labels := prometheus.Labels{"run": run}
	return Prometheus{
		Documents: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "documents",
			Help:        "Documents loaded from the dataset.",
			ConstLabels: labels,
		}),
		Vocabulary: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "vocabulary_terms",
			Help:        "Terms in the fitted vocabulary.",
			ConstLabels: labels,
		}),
		Rows: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "partition_rows",
			Help:        "Rows per partition.",
			ConstLabels: labels,
		}, []string{"partition"}),
		Accuracy: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "test_accuracy",
			Help:        "Accuracy on the test partition.",
			ConstLabels: labels,
		}),
		Duration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "stage_duration_seconds",
			Help:        "Duration of each pipeline stage.",
			ConstLabels: labels,
		}, []string{"stage"}),
	}
}

func (p Prometheus) collectors() []prometheus.Collector {
	return []prometheus.Collector{p.Documents, p.Vocabulary, p.Rows, p.Accuracy, p.Duration}
}
