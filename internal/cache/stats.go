package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ilkhanul13/portfolio101/internal/domain"
	apperrors "github.com/ilkhanul13/portfolio101/pkg/errors"
)

const statsKeyPrefix = "testimonial:stats:"

// StatsCache caches per-project testimonial aggregates in Redis. Entries are
// short-lived and explicitly invalidated on moderation, so a stale read
// window is bounded by the TTL either way.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache creates a Redis-backed stats cache.
func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	return &StatsCache{
		client: client,
		ttl:    ttl,
	}
}

// Get retrieves cached stats for a project.
func (c *StatsCache) Get(ctx context.Context, projectID string) (domain.Stats, error) {
	key := statsKeyPrefix + projectID

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return domain.Stats{}, apperrors.NotFound("stats", projectID)
		}
		return domain.Stats{}, fmt.Errorf("redis get stats: %w", err)
	}

	var stats domain.Stats
	if err := json.Unmarshal(data, &stats); err != nil {
		return domain.Stats{}, fmt.Errorf("unmarshal stats: %w", err)
	}

	return stats, nil
}

// Set stores stats for a project with the configured TTL.
func (c *StatsCache) Set(ctx context.Context, projectID string, stats domain.Stats) error {
	key := statsKeyPrefix + projectID

	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set stats: %w", err)
	}

	return nil
}

// Invalidate drops the cached stats for a project.
func (c *StatsCache) Invalidate(ctx context.Context, projectID string) error {
	key := statsKeyPrefix + projectID

	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del stats: %w", err)
	}

	return nil
}
