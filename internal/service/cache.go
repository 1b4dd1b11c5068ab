package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"project-task-api/internal/dto"
	"project-task-api/internal/metrics"
)

const dashboardCacheName = "dashboard_summary"

// DashboardCache caches per-user dashboard summaries in Redis.
// A nil client disables caching; every method degrades to a no-op so the
// service keeps working without Redis.
type DashboardCache struct {
	client *redis.Client
	ttl    time.Duration
	m      *metrics.Metrics
	logger *zap.Logger
}

// NewDashboardCache creates a dashboard summary cache
func NewDashboardCache(client *redis.Client, ttl time.Duration, m *metrics.Metrics, logger *zap.Logger) *DashboardCache {
	return &DashboardCache{client: client, ttl: ttl, m: m, logger: logger}
}

func dashboardKey(userID uuid.UUID) string {
	return "dashboard:summary:" + userID.String()
}

// Get returns the cached summary for the user, if present
func (c *DashboardCache) Get(ctx context.Context, userID uuid.UUID) (*dto.DashboardSummaryResponse, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	payload, err := c.client.Get(ctx, dashboardKey(userID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("Dashboard cache read failed", zap.Error(err))
		}
		if c.m != nil {
			c.m.RecordCacheMiss(dashboardCacheName)
		}
		return nil, false
	}
	var summary dto.DashboardSummaryResponse
	if err := json.Unmarshal(payload, &summary); err != nil {
		c.logger.Warn("Dashboard cache payload corrupt", zap.Error(err))
		if c.m != nil {
			c.m.RecordCacheMiss(dashboardCacheName)
		}
		return nil, false
	}
	if c.m != nil {
		c.m.RecordCacheHit(dashboardCacheName)
	}
	return &summary, true
}

// Set stores the summary for the user with the configured TTL
func (c *DashboardCache) Set(ctx context.Context, userID uuid.UUID, summary *dto.DashboardSummaryResponse) {
	if c == nil || c.client == nil {
		return
	}
	payload, err := json.Marshal(summary)
	if err != nil {
		c.logger.Warn("Dashboard cache marshal failed", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, dashboardKey(userID), payload, c.ttl).Err(); err != nil {
		c.logger.Warn("Dashboard cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached summaries for the given users
func (c *DashboardCache) Invalidate(ctx context.Context, userIDs ...uuid.UUID) {
	if c == nil || c.client == nil || len(userIDs) == 0 {
		return
	}
	keys := make([]string, 0, len(userIDs))
	for _, id := range dedupeIDs(userIDs) {
		keys = append(keys, dashboardKey(id))
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("Dashboard cache invalidation failed", zap.Error(err))
	}
}
