package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/domain"
)

const leaderboardKeyPrefix = "leaderboard:top:"

// LeaderboardCache stores ranked pages for a short TTL. A nil client makes
// every call a miss.
type LeaderboardCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewLeaderboardCache creates a cache over rdb. rdb may be nil.
func NewLeaderboardCache(rdb *redis.Client, ttl time.Duration) *LeaderboardCache {
	return &LeaderboardCache{rdb: rdb, ttl: ttl}
}

type cachedEntry struct {
	UID      string  `json:"uid"`
	Name     *string `json:"name,omitempty"`
	PhotoURL *string `json:"photo_url,omitempty"`
	Points   int64   `json:"points"`
}

// Get returns the cached page for limit. ok is false on a miss.
func (c *LeaderboardCache) Get(ctx context.Context, limit int) ([]domain.LeaderboardEntry, bool, error) {
	if c.rdb == nil {
		return nil, false, nil
	}

	data, err := c.rdb.Get(ctx, leaderboardKey(limit)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis: get leaderboard: %w", err)
	}

	var cached []cachedEntry
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, false, fmt.Errorf("redis: decode leaderboard: %w", err)
	}

	out := make([]domain.LeaderboardEntry, len(cached))
	for i, e := range cached {
		out[i] = domain.LeaderboardEntry{UID: e.UID, Name: e.Name, PhotoURL: e.PhotoURL, Points: e.Points}
	}
	return out, true, nil
}

// Set stores the page for limit.
func (c *LeaderboardCache) Set(ctx context.Context, limit int, entries []domain.LeaderboardEntry) error {
	if c.rdb == nil {
		return nil
	}

	cached := make([]cachedEntry, len(entries))
	for i, e := range entries {
		cached[i] = cachedEntry{UID: e.UID, Name: e.Name, PhotoURL: e.PhotoURL, Points: e.Points}
	}

	b, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("redis: encode leaderboard: %w", err)
	}
	if err := c.rdb.Set(ctx, leaderboardKey(limit), b, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis: set leaderboard: %w", err)
	}
	return nil
}

func leaderboardKey(limit int) string {
	return fmt.Sprintf("%s%d", leaderboardKeyPrefix, limit)
}

// Ping reports whether the cache backend is reachable. A disabled cache is
// always healthy.
func (c *LeaderboardCache) Ping(ctx context.Context) error {
	if c.rdb == nil {
		return nil
	}
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis: ping: %w", err)
	}
	return nil
}
