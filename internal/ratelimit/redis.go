package ratelimit

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisLimiter is the shared fixed-window counter for multi-instance
// deployments: INCR the key, set the window TTL on first hit.
type RedisLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	prefix string
}

func NewRedisLimiter(client *redis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  limit,
		window: window,
		prefix: "ratelimit:mail:",
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	full := l.prefix + key

	count, err := l.client.Incr(ctx, full).Result()
	if err != nil {
		return false, err
	}

	if count == 1 {
		if err := l.client.Expire(ctx, full, l.window).Err(); err != nil {
			return false, err
		}
	}

	return count <= int64(l.limit), nil
}

var _ Limiter = (*RedisLimiter)(nil)
