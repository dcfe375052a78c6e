package metric

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type (
	PrometheusMetrics struct {
		*registry
		labels Labels
	}

	registry struct {
		namespace  string
		impl       *prometheus.Registry
		mutex      sync.Mutex
		counters   map[string]*prometheus.CounterVec
		histograms map[string]*prometheus.HistogramVec
	}
)

// NewPrometheus creates Metrics backed by its own prometheus registry.
// Label names of a metric are fixed by its first use, observations with another label set are dropped.
func NewPrometheus(namespace string) *PrometheusMetrics {
	impl := prometheus.NewRegistry()
	impl.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &PrometheusMetrics{
		registry: &registry{
			namespace:  namespace,
			impl:       impl,
			counters:   make(map[string]*prometheus.CounterVec),
			histograms: make(map[string]*prometheus.HistogramVec),
		},
		labels: nil,
	}
}

func (m *PrometheusMetrics) Gatherer() prometheus.Gatherer {
	return m.impl
}

// WriteTextfile dumps the registry in the node_exporter textfile format.
func (m *PrometheusMetrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Gatherer())
}

func (m *PrometheusMetrics) With(labels Labels) Metrics {
	if len(labels) == 0 {
		return m
	}

	merged := make(Labels, len(m.labels)+len(labels))
	maps.Copy(merged, m.labels)
	maps.Copy(merged, labels)
	return &PrometheusMetrics{registry: m.registry, labels: merged}
}

func (m *PrometheusMetrics) WithLabel(name, value string) Metrics {
	return m.With(Labels{name: value})
}

func (m *PrometheusMetrics) Increment(key string) {
	counter, err := m.counter(key, m.labelNames()).GetMetricWith(prometheus.Labels(m.labels))
	if err != nil {
		return
	}

	counter.Inc()
}

func (m *PrometheusMetrics) Duration(key string, duration time.Duration) {
	histogram, err := m.histogram(key, m.labelNames()).GetMetricWith(prometheus.Labels(m.labels))
	if err != nil {
		return
	}

	histogram.Observe(duration.Seconds())
}

func (m *PrometheusMetrics) labelNames() []string {
	return slices.Sorted(maps.Keys(m.labels))
}

func (r *registry) counter(key string, labelNames []string) *prometheus.CounterVec {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if vec, ok := r.counters[key]; ok {
		return vec
	}

	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: r.namespace,
		Name:      key,
		Help:      help(key),
	}, labelNames)
	r.impl.MustRegister(vec)
	r.counters[key] = vec
	return vec
}

func (r *registry) histogram(key string, labelNames []string) *prometheus.HistogramVec {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if vec, ok := r.histograms[key]; ok {
		return vec
	}

	vec := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: r.namespace,
		Name:      key,
		Help:      help(key),
		Buckets:   prometheus.DefBuckets,
	}, labelNames)
	r.impl.MustRegister(vec)
	r.histograms[key] = vec
	return vec
}

func help(key string) string {
	return fmt.Sprintf("Tracks %s.", strings.ReplaceAll(key, "_", " "))
}
