package metric

import (
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type (
	PrometheusRegistry struct {
		impl *prometheus.Registry

		mutex      sync.Mutex
		counters   map[string]*prometheus.CounterVec
		histograms map[string]*prometheus.HistogramVec
	}

	prometheusMetrics struct {
		registry *PrometheusRegistry
		labels   Labels
	}
)

func NewPrometheusRegistry() *PrometheusRegistry {
	return &PrometheusRegistry{
		impl:       prometheus.NewRegistry(),
		counters:   make(map[string]*prometheus.CounterVec),
		histograms: make(map[string]*prometheus.HistogramVec),
	}
}

func (r *PrometheusRegistry) Metrics() Metrics {
	return prometheusMetrics{registry: r}
}

func (r *PrometheusRegistry) Handler() http.Handler {
	return promhttp.HandlerFor(r.impl, promhttp.HandlerOpts{})
}

func (r *PrometheusRegistry) Gatherer() prometheus.Gatherer {
	return r.impl
}

func (m prometheusMetrics) With(labels Labels) Metrics {
	merged := make(Labels, len(m.labels)+len(labels))
	for key, value := range m.labels {
		merged[key] = value
	}
	for key, value := range labels {
		merged[key] = value
	}

	return prometheusMetrics{registry: m.registry, labels: merged}
}

// Increment and Duration silently skip a sample whose label set differs from the first registration.
func (m prometheusMetrics) Increment(key string) {
	counter, err := m.registry.counter(key, m.labelNames()).GetMetricWith(prometheus.Labels(m.labels))
	if err != nil {
		return
	}

	counter.Inc()
}

func (m prometheusMetrics) Duration(key string, duration time.Duration) {
	observer, err := m.registry.histogram(key, m.labelNames()).GetMetricWith(prometheus.Labels(m.labels))
	if err != nil {
		return
	}

	observer.Observe(duration.Seconds())
}

func (m prometheusMetrics) labelNames() []string {
	names := make([]string, 0, len(m.labels))
	for name := range m.labels {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func (r *PrometheusRegistry) counter(name string, labelNames []string) *prometheus.CounterVec {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if vec, ok := r.counters[name]; ok {
		return vec
	}

	vec := prometheus.NewCounterVec(prometheus.CounterOpts{Name: name}, labelNames)
	r.impl.MustRegister(vec)
	r.counters[name] = vec

	return vec
}

func (r *PrometheusRegistry) histogram(name string, labelNames []string) *prometheus.HistogramVec {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if vec, ok := r.histograms[name]; ok {
		return vec
	}

	vec := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    name,
		Buckets: prometheus.DefBuckets,
	}, labelNames)
	r.impl.MustRegister(vec)
	r.histograms[name] = vec

	return vec
}
