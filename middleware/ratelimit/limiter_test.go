package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

const testRedisAddr = "localhost:6379"

// setupLimiter connects to a local Redis, skipping the test when none
// is available.
func setupLimiter(t *testing.T) (*Limiter, func()) {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: testRedisAddr})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available at %s: %v", testRedisAddr, err)
	}

	prefix := "test:" + t.Name() + ":"
	limiter := NewLimiter(client, prefix)

	cleanup := func() {
		keys, err := client.Keys(ctx, prefix+"*").Result()
		if err == nil && len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	}
	return limiter, cleanup
}

func TestLimiter_Allow(t *testing.T) {
	limiter, cleanup := setupLimiter(t)
	defer cleanup()

	ctx := context.Background()
	const limit = 3

	for i := 1; i <= limit; i++ {
		result, err := limiter.Allow(ctx, "client-a", limit, time.Minute)
		if err != nil {
			t.Fatalf("Allow() error = %v", err)
		}
		if !result.Allowed {
			t.Fatalf("request %d should be allowed", i)
		}
		if result.Remaining != limit-i {
			t.Errorf("request %d: expected remaining %d, got %d", i, limit-i, result.Remaining)
		}
	}

	result, err := limiter.Allow(ctx, "client-a", limit, time.Minute)
	if err != nil {
		t.Fatalf("Allow() error = %v", err)
	}
	if result.Allowed {
		t.Error("request over the budget should be denied")
	}
	if result.Remaining != 0 {
		t.Errorf("expected remaining 0, got %d", result.Remaining)
	}
	if !result.ResetAt.After(time.Now()) {
		t.Errorf("expected ResetAt in the future, got %v", result.ResetAt)
	}
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	limiter, cleanup := setupLimiter(t)
	defer cleanup()

	ctx := context.Background()

	if _, err := limiter.Allow(ctx, "client-a", 1, time.Minute); err != nil {
		t.Fatalf("Allow() error = %v", err)
	}

	result, err := limiter.Allow(ctx, "client-b", 1, time.Minute)
	if err != nil {
		t.Fatalf("Allow() error = %v", err)
	}
	if !result.Allowed {
		t.Error("different keys must not share a budget")
	}
}

func TestLimiter_Reset(t *testing.T) {
	limiter, cleanup := setupLimiter(t)
	defer cleanup()

	ctx := context.Background()

	if _, err := limiter.Allow(ctx, "client-a", 1, time.Minute); err != nil {
		t.Fatalf("Allow() error = %v", err)
	}
	if result, _ := limiter.Allow(ctx, "client-a", 1, time.Minute); result.Allowed {
		t.Fatal("budget should be exhausted before reset")
	}

	if err := limiter.Reset(ctx, "client-a", time.Minute); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}

	result, err := limiter.Allow(ctx, "client-a", 1, time.Minute)
	if err != nil {
		t.Fatalf("Allow() error = %v", err)
	}
	if !result.Allowed {
		t.Error("expected budget to be available after reset")
	}
}
