package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/nandanugg/apartment-notifier/module/core/internal/repository/cache"
)

var _ cache.SeenCache = (*SeenCache)(nil)

const keyPrefix = "apartments:seen:"

type SeenCache struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewSeenCache(client *goredis.Client, ttl time.Duration) *SeenCache {
	return &SeenCache{client: client, ttl: ttl}
}

func (c *SeenCache) MarkSeen(ctx context.Context, listingID string) (bool, error) {
	ok, err := c.client.SetNX(ctx, keyPrefix+listingID, 1, c.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx: %w", err)
	}
	return ok, nil
}

func (c *SeenCache) Forget(ctx context.Context, listingID string) error {
	if err := c.client.Del(ctx, keyPrefix+listingID).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
