package ratelimit

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("expected RedisAddr 'localhost:6379', got %q", cfg.RedisAddr)
	}
	if cfg.DefaultLimit != 120 {
		t.Errorf("expected DefaultLimit 120, got %d", cfg.DefaultLimit)
	}
	if cfg.Window != time.Minute {
		t.Errorf("expected Window 1m, got %v", cfg.Window)
	}
	if cfg.KeyPrefix != "calc:ratelimit:" {
		t.Errorf("expected KeyPrefix 'calc:ratelimit:', got %q", cfg.KeyPrefix)
	}
	if cfg.ClientIDHeader != "X-Client-ID" {
		t.Errorf("expected ClientIDHeader 'X-Client-ID', got %q", cfg.ClientIDHeader)
	}
	if cfg.ServiceLimits == nil {
		t.Error("expected ServiceLimits to be initialized")
	}
}

func TestOptions(t *testing.T) {
	cfg := DefaultConfig()

	WithRedisAddr("redis.example.com:6380")(&cfg)
	WithRedisPassword("secret")(&cfg)
	WithRedisDB(3)(&cfg)
	WithDefaultLimit(10, 30*time.Second)(&cfg)
	WithServiceLimit("evaluate", 5)(&cfg)
	WithKeyPrefix("test:")(&cfg)

	if cfg.RedisAddr != "redis.example.com:6380" {
		t.Errorf("expected RedisAddr 'redis.example.com:6380', got %q", cfg.RedisAddr)
	}
	if cfg.RedisPassword != "secret" {
		t.Errorf("expected RedisPassword 'secret', got %q", cfg.RedisPassword)
	}
	if cfg.RedisDB != 3 {
		t.Errorf("expected RedisDB 3, got %d", cfg.RedisDB)
	}
	if cfg.DefaultLimit != 10 || cfg.Window != 30*time.Second {
		t.Errorf("expected limit 10 per 30s, got %d per %v", cfg.DefaultLimit, cfg.Window)
	}
	if cfg.ServiceLimits["evaluate"] != 5 {
		t.Errorf("expected evaluate limit 5, got %d", cfg.ServiceLimits["evaluate"])
	}
	if cfg.KeyPrefix != "test:" {
		t.Errorf("expected KeyPrefix 'test:', got %q", cfg.KeyPrefix)
	}
}

func TestLimitForService(t *testing.T) {
	m, err := New(
		WithDefaultLimit(100, time.Minute),
		WithServiceLimit("evaluate", 20),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if got := m.limitForService("evaluate"); got != 20 {
		t.Errorf("expected service-specific limit 20, got %d", got)
	}
	if got := m.limitForService("history"); got != 100 {
		t.Errorf("expected default limit 100, got %d", got)
	}
}
