package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter implements fixed-window rate limiting using Redis.
type Limiter struct {
	client    *redis.Client
	keyPrefix string
}

// NewLimiter creates a new rate limiter with a Redis backend.
func NewLimiter(client *redis.Client, keyPrefix string) *Limiter {
	return &Limiter{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Result contains the outcome of a rate limit check.
type Result struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
	Limit     int
}

// incrScript increments the window counter and sets its expiry
// atomically, so a crashed client cannot leave an immortal counter.
var incrScript = redis.NewScript(`
	local count = redis.call('INCR', KEYS[1])
	if count == 1 then
		redis.call('PEXPIRE', KEYS[1], ARGV[1])
	end
	return count
`)

// Allow checks whether a request fits the budget for the current fixed
// window. The window key embeds the window start, so counters roll over
// naturally.
func (l *Limiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (*Result, error) {
	now := time.Now()
	windowStart := now.Truncate(window)
	resetAt := windowStart.Add(window)

	redisKey := fmt.Sprintf("%s%s:%d", l.keyPrefix, key, windowStart.UnixMilli())

	count, err := incrScript.Run(ctx, l.client, []string{redisKey}, window.Milliseconds()).Int64()
	if err != nil {
		return nil, fmt.Errorf("redis script error: %w", err)
	}

	remaining := limit - int(count)
	if remaining < 0 {
		remaining = 0
	}

	return &Result{
		Allowed:   count <= int64(limit),
		Remaining: remaining,
		ResetAt:   resetAt,
		Limit:     limit,
	}, nil
}

// Reset clears the current window counter for a key.
func (l *Limiter) Reset(ctx context.Context, key string, window time.Duration) error {
	windowStart := time.Now().Truncate(window)
	redisKey := fmt.Sprintf("%s%s:%d", l.keyPrefix, key, windowStart.UnixMilli())
	return l.client.Del(ctx, redisKey).Err()
}
