package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options configures the Redis connection.
type Options struct {
	// URL is a redis:// or rediss:// connection string.
	URL             string
	PoolSize        int
	MinIdleConns    int
	PoolTimeout     time.Duration
	ConnMaxIdleTime time.Duration
	// Prefix namespaces every key written by this process.
	Prefix string
}

// Redis implements Cache on top of go-redis.
type Redis struct {
	client *redis.Client
	prefix string
}

var _ Cache = (*Redis)(nil)

// New connects to Redis and verifies the connection with a PING.
func New(ctx context.Context, options Options) (*Redis, error) {
	opt, err := redis.ParseURL(options.URL)
	if err != nil {
		return nil, fmt.Errorf("could not parse redis url: %w", err)
	}

	if options.PoolSize > 0 {
		opt.PoolSize = options.PoolSize
	}
	if options.MinIdleConns > 0 {
		opt.MinIdleConns = options.MinIdleConns
	}
	if options.PoolTimeout > 0 {
		opt.PoolTimeout = options.PoolTimeout
	}
	if options.ConnMaxIdleTime > 0 {
		opt.ConnMaxIdleTime = options.ConnMaxIdleTime
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("could not ping redis: %w", err)
	}

	return &Redis{client: client, prefix: options.Prefix}, nil
}

// Ping checks Redis connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("could not ping redis: %w", err)
	}

	return nil
}

// Close closes the Redis client.
func (r *Redis) Close() error {
	return r.client.Close()
}

func (r *Redis) key(parts ...string) string {
	var b strings.Builder
	b.WriteString(r.prefix)
	if r.prefix != "" && !strings.HasSuffix(r.prefix, ":") {
		b.WriteByte(':')
	}
	for _, p := range parts {
		b.WriteString(p)
	}

	return b.String()
}
