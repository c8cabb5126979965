package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	revokedKeyPrefix = "token:revoked:"
)

func (r *Redis) RevokeToken(ctx context.Context, jti string, ttl time.Duration) (bool, error) {
	if ttl <= 0 {
		// already expired, nothing can replay it
		ttl = time.Second
	}

	ok, err := r.client.SetNX(ctx, r.key(revokedKeyPrefix, jti), 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("could not revoke token: %w", err)
	}

	return ok, nil
}

func (r *Redis) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := r.client.Exists(ctx, r.key(revokedKeyPrefix, jti)).Result()
	if err != nil {
		return false, fmt.Errorf("could not check revoked token: %w", err)
	}

	return n > 0, nil
}
