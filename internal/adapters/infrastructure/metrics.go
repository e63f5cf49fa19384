package infrastructure

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"weatherblock.app/internal/ports"
)

// PrometheusWeatherMetrics implements the WeatherMetrics port
type PrometheusWeatherMetrics struct {
	hits            prometheus.Counter
	misses          prometheus.Counter
	hitRatio        prometheus.Gauge
	upstreamCalls   *prometheus.CounterVec
	upstreamLatency *prometheus.HistogramVec

	mu          sync.Mutex
	hitCount    int64
	lookupCount int64
}

// NewPrometheusWeatherMetrics registers the weather collectors with registerer
func NewPrometheusWeatherMetrics(registerer prometheus.Registerer) *PrometheusWeatherMetrics {
	factory := promauto.With(registerer)

	return &PrometheusWeatherMetrics{
		hits: factory.NewCounter(prometheus.CounterOpts{
			Name: "weather_cache_hits_total",
			Help: "The total number of weather lookups served from cache",
		}),
		misses: factory.NewCounter(prometheus.CounterOpts{
			Name: "weather_cache_misses_total",
			Help: "The total number of weather lookups that missed the cache",
		}),
		hitRatio: factory.NewGauge(prometheus.GaugeOpts{
			Name: "weather_cache_hit_ratio",
			Help: "Cache hit ratio (hits/total lookups)",
		}),
		upstreamCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "weather_upstream_requests_total",
			Help: "Upstream weather API calls by outcome",
		}, []string{"outcome"}),
		upstreamLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "weather_upstream_duration_seconds",
			Help:    "Upstream weather API call duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"outcome"}),
	}
}

func (m *PrometheusWeatherMetrics) RecordCacheHit() {
	m.hits.Inc()
	m.recordLookup(true)
}

func (m *PrometheusWeatherMetrics) RecordCacheMiss() {
	m.misses.Inc()
	m.recordLookup(false)
}

func (m *PrometheusWeatherMetrics) RecordUpstreamCall(outcome string, duration time.Duration) {
	m.upstreamCalls.WithLabelValues(outcome).Inc()
	m.upstreamLatency.WithLabelValues(outcome).Observe(duration.Seconds())
}

func (m *PrometheusWeatherMetrics) recordLookup(hit bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lookupCount++
	if hit {
		m.hitCount++
	}
	m.hitRatio.Set(float64(m.hitCount) / float64(m.lookupCount))
}

var _ ports.WeatherMetrics = (*PrometheusWeatherMetrics)(nil)
