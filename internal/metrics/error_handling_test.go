package metrics

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// Recording operations must never take down a request, whatever state the
// metrics are in.
func TestMetricOperationsDoNotPanic(t *testing.T) {
	logger := zap.NewNop()

	tests := []struct {
		name      string
		operation func(*Metrics)
	}{
		{
			name: "RecordHTTPRequest",
			operation: func(m *Metrics) {
				m.RecordHTTPRequest("GET", "/api/v1/tasks", 200, time.Second)
			},
		},
		{
			name: "RecordDBQuery",
			operation: func(m *Metrics) {
				m.RecordDBQuery("select", "tasks", time.Millisecond, nil)
			},
		},
		{
			name: "RecordCacheHit",
			operation: func(m *Metrics) {
				m.RecordCacheHit("dashboard")
			},
		},
		{
			name: "IncrementTaskCreated",
			operation: func(m *Metrics) {
				m.IncrementTaskCreated()
			},
		},
		{
			name: "IncrementTeamReused",
			operation: func(m *Metrics) {
				m.IncrementTeamReused()
			},
		},
		{
			name: "SetProjectsTotal",
			operation: func(m *Metrics) {
				m.SetProjectsTotal(100)
			},
		},
		{
			name: "UpdateDBStats",
			operation: func(m *Metrics) {
				m.UpdateDBStats(sql.DBStats{
					OpenConnections: 10,
					InUse:           5,
					Idle:            5,
				})
			},
		},
		{
			name: "UpdateDBStats with wrong type",
			operation: func(m *Metrics) {
				m.UpdateDBStats("not stats")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := prometheus.NewRegistry()
			m := NewWithRegistry(registry, logger)

			assert.NotPanics(t, func() {
				tt.operation(m)
			}, "Metric operation should not panic")
		})
	}
}

func TestMetricCollectionContinuesAfterError(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewWithRegistry(registry, zap.NewNop())

	assert.NotPanics(t, func() {
		m.RecordHTTPRequest("GET", "/api/v1/tasks", 200, time.Millisecond*100)
		m.RecordHTTPRequest("POST", "/api/v1/tasks", 201, time.Millisecond*150)
		m.RecordDBQuery("select", "users", time.Millisecond*10, nil)
		m.RecordDBQuery("insert", "projects", time.Millisecond*20, errors.New("test error"))
		m.RecordCacheMiss("dashboard")
		m.IncrementProjectCreated()
		m.IncrementTaskCreated()
		m.IncrementCommentCreated()
		m.SetProjectsTotal(100)
		m.SetTasksTotal(50)
	}, "Multiple metric operations should not panic")
}

func TestSafeExecuteWithPanic(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewWithRegistry(registry, zap.NewNop())

	assert.NotPanics(t, func() {
		m.safeExecute("test_panic", func() {
			panic("intentional panic for testing")
		})
	}, "safeExecute should catch panics")
}

func TestMetricsWithNilLogger(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewWithRegistry(registry, nil)

	assert.NotPanics(t, func() {
		m.RecordHTTPRequest("GET", "/api/v1/tags", 200, time.Second)
		m.RecordDBQuery("select", "tags", time.Millisecond, nil)
		m.IncrementTagCreated()
	}, "Metrics should work without a logger")
}

func TestCollectorPanicRecovery(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewWithRegistry(registry, zap.NewNop())

	collector := &BusinessMetricsCollector{
		db:      nil,
		metrics: m,
		logger:  zap.NewNop(),
	}

	assert.NotPanics(t, func() {
		collector.collect()
	}, "Collector should handle errors gracefully")
}
