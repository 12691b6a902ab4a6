package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"quest-ring.backend/internal/domain/entities"
)

// LeaderboardCache caches ranked leaderboard pages so hot reads skip the
// database between refreshes.
type LeaderboardCache struct {
	ttl time.Duration
}

var (
	setCacheValue = Set
	getCacheValue = Get
	delCacheValue = Del
)

// NewLeaderboardCache creates a new leaderboard cache
func NewLeaderboardCache(ttl time.Duration) *LeaderboardCache {
	return &LeaderboardCache{ttl: ttl}
}

func cacheKey(limit int) string {
	return fmt.Sprintf("leaderboard:top:%d", limit)
}

// GetTop returns a cached page, or (nil, nil) on a miss
func (c *LeaderboardCache) GetTop(ctx context.Context, limit int) ([]*entities.LeaderboardEntry, error) {
	raw, err := getCacheValue(ctx, cacheKey(limit))
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var entries []*entities.LeaderboardEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// SetTop stores a ranked page for the configured TTL
func (c *LeaderboardCache) SetTop(ctx context.Context, limit int, entries []*entities.LeaderboardEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return setCacheValue(ctx, cacheKey(limit), raw, c.ttl)
}

// Invalidate drops the cached page for a limit. Called after a refresh.
func (c *LeaderboardCache) Invalidate(ctx context.Context, limit int) error {
	return delCacheValue(ctx, cacheKey(limit))
}
