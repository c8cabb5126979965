package cache

import (
	"arbeit/pkg/logger"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	rateLimitKeyPrefix = "ratelimit:"
	// rateLimitTTL bounds how long an idle bucket is kept.
	rateLimitTTL = 10 * time.Minute
)

// tokenBucketScript refills and consumes a bucket in a single atomic step.
var tokenBucketScript = redis.NewScript(`
	local key = KEYS[1]
	local rate = tonumber(ARGV[1])      -- tokens per second
	local burst = tonumber(ARGV[2])     -- bucket capacity
	local now = tonumber(ARGV[3])       -- current time in milliseconds
	local ttl = tonumber(ARGV[4])       -- seconds

	local data = redis.call('HMGET', key, 'tokens', 'last_update')
	local tokens = tonumber(data[1]) or burst
	local last_update = tonumber(data[2]) or now

	local elapsed = math.max(0, now - last_update) / 1000
	tokens = math.min(burst, tokens + (elapsed * rate))

	local allowed = 0
	local retry_after = 0
	if tokens >= 1 then
		tokens = tokens - 1
		allowed = 1
	else
		retry_after = math.ceil((1 - tokens) / rate)
	end

	redis.call('HSET', key, 'tokens', tokens, 'last_update', now)
	redis.call('EXPIRE', key, ttl)

	return {allowed, retry_after, math.floor(tokens)}
`)

// CheckRateLimit fails open: when Redis is unreachable the request is allowed
// and the error is only logged.
func (r *Redis) CheckRateLimit(ctx context.Context,
	scope, subject string,
	ratePerMinute, burst int) (*RateLimitResult, error) {
	if ratePerMinute <= 0 {
		return &RateLimitResult{Allowed: true, Remaining: int64(burst)}, nil
	}
	if burst <= 0 {
		burst = 1
	}

	rate := float64(ratePerMinute) / 60.0
	res, err := tokenBucketScript.Run(ctx, r.client,
		[]string{r.key(rateLimitKeyPrefix, scope, ":", hashSubject(subject))},
		rate, burst, time.Now().UnixMilli(), int(rateLimitTTL.Seconds()),
	).Int64Slice()
	if err != nil {
		logger.Warn(ctx, "rate limit check failed, allowing request",
			zap.String("scope", scope), zap.Error(err))

		return &RateLimitResult{Allowed: true, Limit: burst, Remaining: int64(burst)}, nil
	}

	retryAfter := time.Duration(res[1]) * time.Second

	return &RateLimitResult{
		Allowed:    res[0] == 1,
		Limit:      burst,
		Remaining:  res[2],
		ResetAt:    time.Now().Add(time.Duration(float64(time.Second) / rate)),
		RetryAfter: retryAfter,
	}, nil
}

// hashSubject keeps raw IPs and e-mails out of Redis keys.
func hashSubject(subject string) string {
	hash := sha256.Sum256([]byte(subject))

	return hex.EncodeToString(hash[:8])
}
