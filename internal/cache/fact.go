package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// lastFactKey holds the most recently fetched upstream fact.
const lastFactKey = "fact:last"

// Common cache errors.
var (
	ErrCacheMiss = errors.New("cache miss")
)

// GetLastFact retrieves the last successfully fetched fact.
// Returns ErrCacheMiss if none is stored or the entry expired.
func (c *Cache) GetLastFact(ctx context.Context) (string, error) {
	result, err := c.client.Get(ctx, lastFactKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	if err != nil {
		return "", fmt.Errorf("redis get failed: %w", err)
	}
	return result, nil
}

// SetLastFact stores a fact as the last known good value.
// A zero ttl stores the fact without expiry.
func (c *Cache) SetLastFact(ctx context.Context, fact string, ttl time.Duration) error {
	if err := c.client.Set(ctx, lastFactKey, fact, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}
