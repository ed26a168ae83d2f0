package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {

	m := New("run-1")
	m.Documents(20)
	m.Vocabulary(7)
	m.Partition("train", 16)
	m.Partition("test", 4)
	m.Accuracy(0.75)
	m.Stage("train", 1500*time.Millisecond)

	assert.Equal(t, 20.0, testutil.ToFloat64(m.prometheus.Documents))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.prometheus.Vocabulary))
	assert.Equal(t, 16.0, testutil.ToFloat64(m.prometheus.Rows.WithLabelValues("train")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.prometheus.Rows.WithLabelValues("test")))
	assert.Equal(t, 0.75, testutil.ToFloat64(m.prometheus.Accuracy))
	assert.Equal(t, 1.5, testutil.ToFloat64(m.prometheus.Duration.WithLabelValues("train")))

	file := filepath.Join(t.TempDir(), "news.prom")
	err := m.WriteTo(file)
	assert.NoError(t, err)

	b, err := os.ReadFile(file)
	assert.NoError(t, err)
	assert.Contains(t, string(b), `news_forest_test_accuracy{run="run-1"} 0.75`)
	assert.Contains(t, string(b), `news_forest_partition_rows{partition="train",run="run-1"} 16`)

}
