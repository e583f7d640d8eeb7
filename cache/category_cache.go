package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const categoriesKey = "trivia:categories"

// CategoryCache keeps the id -> label category mapping in Redis.
type CategoryCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCategoryCache(client *redis.Client, ttl time.Duration) *CategoryCache {
	return &CategoryCache{client: client, ttl: ttl}
}

// Get returns the cached mapping. A miss is reported as ok=false with a nil error.
func (c *CategoryCache) Get(ctx context.Context) (map[uint]string, bool, error) {
	data, err := c.client.Get(ctx, categoriesKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", categoriesKey, err)
	}

	var categories map[uint]string
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, false, fmt.Errorf("decode cached categories: %w", err)
	}
	return categories, true, nil
}

func (c *CategoryCache) Set(ctx context.Context, categories map[uint]string) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, categoriesKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", categoriesKey, err)
	}
	return nil
}

func (c *CategoryCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, categoriesKey).Err()
}
