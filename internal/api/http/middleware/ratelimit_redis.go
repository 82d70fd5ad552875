package middleware

import (
	"context"
	"time"

	"github.com/dtroode/catalog-server/internal/logger"
	"github.com/redis/go-redis/v9"
)

const rateLimitScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
if current > tonumber(ARGV[2]) then
  return 0
end
return 1
`

const redisLimiterTimeout = 250 * time.Millisecond

// RedisLimiter is a fixed-window limiter shared by every instance through Redis.
// Redis failures let the request through.
type RedisLimiter struct {
	client *redis.Client
	script *redis.Script
	logger *logger.Logger
}

// NewRedisLimiter returns nil when client is nil.
func NewRedisLimiter(client *redis.Client, logger *logger.Logger) *RedisLimiter {
	if client == nil {
		return nil
	}
	return &RedisLimiter{
		client: client,
		script: redis.NewScript(rateLimitScript),
		logger: logger,
	}
}

// Allow counts the request against key and reports whether it is within limit.
func (l *RedisLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) bool {
	if l == nil || l.client == nil {
		return true
	}
	if key == "" || limit <= 0 || window <= 0 {
		return true
	}
	ttl := window.Milliseconds()
	if ttl <= 0 {
		ttl = 1
	}

	ctx, cancel := context.WithTimeout(ctx, redisLimiterTimeout)
	defer cancel()

	allowed, err := l.script.Run(ctx, l.client, []string{key}, ttl, limit).Int64()
	if err != nil {
		l.logger.Warn("Rate limiter: redis unavailable, allowing request",
			"error", err.Error())
		return true
	}
	return allowed == 1
}
