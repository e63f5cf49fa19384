package infrastructure

import (
	"github.com/prometheus/client_golang/prometheus"
	"weatherblock.app/internal/ports"
)

// CacheStatsCollector exports a cache store's own counters to Prometheus.
// Values are read from the store on every scrape.
type CacheStatsCollector struct {
	source    ports.CacheMetrics
	cacheType string

	hits     *prometheus.Desc
	misses   *prometheus.Desc
	hitRatio *prometheus.Desc
}

// NewCacheStatsCollector creates a collector for source labeled with cacheType
func NewCacheStatsCollector(source ports.CacheMetrics, cacheType string) *CacheStatsCollector {
	labels := []string{"cache_type"}
	return &CacheStatsCollector{
		source:    source,
		cacheType: cacheType,
		hits: prometheus.NewDesc("weather_cache_store_hits_total",
			"Reads answered by the cache store", labels, nil),
		misses: prometheus.NewDesc("weather_cache_store_misses_total",
			"Reads the cache store could not answer", labels, nil),
		hitRatio: prometheus.NewDesc("weather_cache_store_hit_ratio",
			"Cache store hit ratio", labels, nil),
	}
}

func (c *CacheStatsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.hits
	ch <- c.misses
	ch <- c.hitRatio
}

func (c *CacheStatsCollector) Collect(ch chan<- prometheus.Metric) {
	stats := c.source.GetStats()
	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(stats.Hits), c.cacheType)
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(stats.Misses), c.cacheType)
	ch <- prometheus.MustNewConstMetric(c.hitRatio, prometheus.GaugeValue, stats.HitRatio, c.cacheType)
}
