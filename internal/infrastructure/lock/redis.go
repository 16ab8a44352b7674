package lock

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "megui:genlock:"

// RedisGuard is a Guard backed by redis SET NX, for deployments with
// more than one backend instance. The TTL bounds how long a crashed
// instance can block regeneration.
type RedisGuard struct {
	client *redis.Client
}

// NewRedisGuard creates a RedisGuard.
func NewRedisGuard(client *redis.Client) *RedisGuard {
	return &RedisGuard{client: client}
}

// Acquire takes the hold via SET NX with expiry.
func (g *RedisGuard) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return g.client.SetNX(ctx, keyPrefix+key, 1, ttl).Result()
}

// Release frees the hold on key.
func (g *RedisGuard) Release(ctx context.Context, key string) error {
	return g.client.Del(ctx, keyPrefix+key).Err()
}

var _ Guard = (*RedisGuard)(nil)
