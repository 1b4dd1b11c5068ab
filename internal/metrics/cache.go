package metrics

// RecordCacheHit records a hit on the named cache
func (m *Metrics) RecordCacheHit(cache string) {
	m.safeExecute("RecordCacheHit", func() {
		m.CacheHitsTotal.WithLabelValues(cache).Inc()
	})
}

// RecordCacheMiss records a miss on the named cache
func (m *Metrics) RecordCacheMiss(cache string) {
	m.safeExecute("RecordCacheMiss", func() {
		m.CacheMissesTotal.WithLabelValues(cache).Inc()
	})
}
