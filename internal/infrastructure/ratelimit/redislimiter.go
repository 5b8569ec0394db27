// Package ratelimit throttles repeated failed logins. The redis limiter is
// used when redis is configured; deployments without redis fall back to the
// in-memory limiter.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// DefaultMaxFailures is how many failed attempts are tolerated per key
	// within the window before logins are rejected.
	DefaultMaxFailures = 5
	// DefaultWindow is the sliding window for counting failures.
	DefaultWindow = 15 * time.Minute
)

// RedisLoginRateLimiter counts failed attempts in a redis sorted set keyed
// by account, scored by attempt time. Shared across instances.
type RedisLoginRateLimiter struct {
	client      *redis.Client
	maxFailures int
	window      time.Duration
}

func NewRedisLoginRateLimiter(client *redis.Client, maxFailures int, window time.Duration) *RedisLoginRateLimiter {
	if maxFailures <= 0 {
		maxFailures = DefaultMaxFailures
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &RedisLoginRateLimiter{
		client:      client,
		maxFailures: maxFailures,
		window:      window,
	}
}

func (l *RedisLoginRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := l.redisKey(key)
	windowStart := time.Now().Add(-l.window).UnixNano()

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", fmt.Sprintf("%d", windowStart))
	zcard := pipe.ZCard(ctx, redisKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to count login failures: %w", err)
	}

	return zcard.Val() < int64(l.maxFailures), nil
}

func (l *RedisLoginRateLimiter) RecordFailure(ctx context.Context, key string) error {
	redisKey := l.redisKey(key)
	now := time.Now().UnixNano()

	pipe := l.client.Pipeline()
	pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(now), Member: now})
	pipe.Expire(ctx, redisKey, l.window+time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record login failure: %w", err)
	}
	return nil
}

func (l *RedisLoginRateLimiter) Reset(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, l.redisKey(key)).Err(); err != nil {
		return fmt.Errorf("failed to reset login failures: %w", err)
	}
	return nil
}

func (l *RedisLoginRateLimiter) redisKey(key string) string {
	return "login_failures:" + key
}
