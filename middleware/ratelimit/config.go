// Package ratelimit provides Redis-backed rate limiting for the
// calculator services as a mono middleware module. The evaluate service
// is the public write path of the application, so it gets a tighter
// limit than the read services.
package ratelimit

import "time"

// Config holds rate limiter configuration.
type Config struct {
	// RedisAddr is the Redis server address (e.g., "localhost:6379")
	RedisAddr string

	// RedisPassword is the Redis authentication password (optional)
	RedisPassword string

	// RedisDB is the Redis database number (default: 0)
	RedisDB int

	// DefaultLimit is the request budget per client per window for
	// services without a specific limit
	DefaultLimit int

	// Window is the fixed time window the budget applies to
	Window time.Duration

	// ServiceLimits maps service names to their specific budgets
	ServiceLimits map[string]int

	// KeyPrefix is the prefix for Redis keys (default: "calc:ratelimit:")
	KeyPrefix string

	// ClientIDHeader is the header the client id is read from
	ClientIDHeader string
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		RedisAddr:      "localhost:6379",
		DefaultLimit:   120,
		Window:         time.Minute,
		ServiceLimits:  make(map[string]int),
		KeyPrefix:      "calc:ratelimit:",
		ClientIDHeader: "X-Client-ID",
	}
}

// Option is a function that modifies Config.
type Option func(*Config)

// WithRedisAddr sets the Redis server address.
func WithRedisAddr(addr string) Option {
	return func(c *Config) {
		c.RedisAddr = addr
	}
}

// WithRedisPassword sets the Redis authentication password.
func WithRedisPassword(password string) Option {
	return func(c *Config) {
		c.RedisPassword = password
	}
}

// WithRedisDB sets the Redis database number.
func WithRedisDB(db int) Option {
	return func(c *Config) {
		c.RedisDB = db
	}
}

// WithDefaultLimit sets the default per-window request budget.
func WithDefaultLimit(limit int, window time.Duration) Option {
	return func(c *Config) {
		c.DefaultLimit = limit
		c.Window = window
	}
}

// WithServiceLimit sets a specific budget for one service.
func WithServiceLimit(serviceName string, limit int) Option {
	return func(c *Config) {
		c.ServiceLimits[serviceName] = limit
	}
}

// WithKeyPrefix sets the Redis key prefix.
func WithKeyPrefix(prefix string) Option {
	return func(c *Config) {
		c.KeyPrefix = prefix
	}
}
