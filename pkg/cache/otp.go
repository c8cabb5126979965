package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	otpKeyPrefix      = "otp:"
	verifiedKeyPrefix = "otp:verified:"
)

// verifyOTPScript checks a code and counts failures atomically.
// Returns 1 on match, 0 on mismatch, -1 when missing, -2 when exhausted.
var verifyOTPScript = redis.NewScript(`
	local key = KEYS[1]
	local code = ARGV[1]
	local max = tonumber(ARGV[2])

	local stored = redis.call('HGET', key, 'code')
	if not stored then
		return -1
	end

	if stored == code then
		redis.call('DEL', key)
		return 1
	end

	local attempts = redis.call('HINCRBY', key, 'attempts', 1)
	if attempts >= max then
		redis.call('DEL', key)
		return -2
	end

	return 0
`)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *Redis) StoreOTP(ctx context.Context, email, code string, ttl time.Duration) error {
	key := r.key(otpKeyPrefix, normalizeEmail(email))

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, "code", code, "attempts", 0)
		pipe.Expire(ctx, key, ttl)

		return nil
	})
	if err != nil {
		return fmt.Errorf("could not store otp: %w", err)
	}

	return nil
}

func (r *Redis) VerifyOTP(ctx context.Context, email, code string, maxAttempts int) (OTPResult, error) {
	if maxAttempts <= 0 {
		maxAttempts = 1
	}

	res, err := verifyOTPScript.Run(ctx, r.client,
		[]string{r.key(otpKeyPrefix, normalizeEmail(email))},
		code, maxAttempts,
	).Int64()
	if err != nil {
		return OTPMissing, fmt.Errorf("could not verify otp: %w", err)
	}

	switch res {
	case 1:
		return OTPValid, nil
	case 0:
		return OTPMismatch, nil
	case -2:
		return OTPExhausted, nil
	default:
		return OTPMissing, nil
	}
}

func (r *Redis) MarkVerified(ctx context.Context, email string, ttl time.Duration) error {
	if err := r.client.Set(ctx, r.key(verifiedKeyPrefix, normalizeEmail(email)), 1, ttl).Err(); err != nil {
		return fmt.Errorf("could not mark email verified: %w", err)
	}

	return nil
}

func (r *Redis) ConsumeVerified(ctx context.Context, email string) (bool, error) {
	err := r.client.GetDel(ctx, r.key(verifiedKeyPrefix, normalizeEmail(email))).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("could not consume verified email: %w", err)
	}

	return true, nil
}
