package cache_test

import (
	"arbeit/pkg/cache"
	"arbeit/pkg/logger"
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

func setupTestRedis(t *testing.T) (*cache.Redis, func()) {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379"},
			WaitingFor:   wait.ForListeningPort("6379"),
		},
		Started: true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	r, err := cache.New(ctx, cache.Options{
		URL:    fmt.Sprintf("redis://%s:%d/0", host, port.Int()),
		Prefix: "test:",
	})
	require.NoError(t, err)

	return r, func() {
		_ = r.Close()
		_ = container.Terminate(ctx)
	}
}

func TestRedis_OTP(t *testing.T) {
	r, cleanup := setupTestRedis(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	email := "HR@Acme.test"

	res, err := r.VerifyOTP(ctx, email, "123456", 5)
	require.NoError(t, err)
	require.Equal(t, cache.OTPMissing, res)

	require.NoError(t, r.StoreOTP(ctx, email, "123456", time.Minute))

	res, err = r.VerifyOTP(ctx, "hr@acme.test", "000000", 5)
	require.NoError(t, err)
	require.Equal(t, cache.OTPMismatch, res)

	res, err = r.VerifyOTP(ctx, "hr@acme.test", "123456", 5)
	require.NoError(t, err)
	require.Equal(t, cache.OTPValid, res)

	res, err = r.VerifyOTP(ctx, "hr@acme.test", "123456", 5)
	require.NoError(t, err)
	require.Equal(t, cache.OTPMissing, res, "codes are single use")

	t.Run("attempts exhaust the code", func(t *testing.T) {
		require.NoError(t, r.StoreOTP(ctx, email, "654321", time.Minute))
		for i := 0; i < 2; i++ {
			res, err := r.VerifyOTP(ctx, email, "111111", 3)
			require.NoError(t, err)
			require.Equal(t, cache.OTPMismatch, res)
		}

		res, err := r.VerifyOTP(ctx, email, "111111", 3)
		require.NoError(t, err)
		require.Equal(t, cache.OTPExhausted, res)

		res, err = r.VerifyOTP(ctx, email, "654321", 3)
		require.NoError(t, err)
		require.Equal(t, cache.OTPMissing, res)
	})

	t.Run("resend resets attempts", func(t *testing.T) {
		require.NoError(t, r.StoreOTP(ctx, email, "222222", time.Minute))
		res, err := r.VerifyOTP(ctx, email, "999999", 2)
		require.NoError(t, err)
		require.Equal(t, cache.OTPMismatch, res)

		require.NoError(t, r.StoreOTP(ctx, email, "333333", time.Minute))
		res, err = r.VerifyOTP(ctx, email, "999999", 2)
		require.NoError(t, err)
		require.Equal(t, cache.OTPMismatch, res)
	})

	t.Run("verified flag is consumed once", func(t *testing.T) {
		require.NoError(t, r.MarkVerified(ctx, email, time.Minute))

		ok, err := r.ConsumeVerified(ctx, "hr@acme.test")
		require.NoError(t, err)
		require.True(t, ok)

		ok, err = r.ConsumeVerified(ctx, email)
		require.NoError(t, err)
		require.False(t, ok)
	})
}

func TestRedis_RevokeToken(t *testing.T) {
	r, cleanup := setupTestRedis(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	revoked, err := r.IsTokenRevoked(ctx, "jti-1")
	require.NoError(t, err)
	require.False(t, revoked)

	first, err := r.RevokeToken(ctx, "jti-1", time.Minute)
	require.NoError(t, err)
	require.True(t, first)

	second, err := r.RevokeToken(ctx, "jti-1", time.Minute)
	require.NoError(t, err)
	require.False(t, second, "a token can only be rotated once")

	revoked, err = r.IsTokenRevoked(ctx, "jti-1")
	require.NoError(t, err)
	require.True(t, revoked)
}

func TestRedis_CheckRateLimit(t *testing.T) {
	r, cleanup := setupTestRedis(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	for i := 0; i < 3; i++ {
		res, err := r.CheckRateLimit(ctx, "otp", "10.0.0.1", 1, 3)
		require.NoError(t, err)
		require.True(t, res.Allowed, "request %d within burst", i)
	}

	res, err := r.CheckRateLimit(ctx, "otp", "10.0.0.1", 1, 3)
	require.NoError(t, err)
	require.False(t, res.Allowed)
	require.Positive(t, res.RetryAfter)

	other, err := r.CheckRateLimit(ctx, "otp", "10.0.0.2", 1, 3)
	require.NoError(t, err)
	require.True(t, other.Allowed, "buckets are per subject")

	unlimited, err := r.CheckRateLimit(ctx, "otp", "10.0.0.1", 0, 3)
	require.NoError(t, err)
	require.True(t, unlimited.Allowed)
}

func TestRedis_JSON(t *testing.T) {
	r, cleanup := setupTestRedis(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	var out []string
	found, err := r.GetJSON(ctx, "jobs:active", &out)
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, r.SetJSON(ctx, "jobs:active", []string{"101", "102"}, time.Minute))
	found, err = r.GetJSON(ctx, "jobs:active", &out)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []string{"101", "102"}, out)

	require.NoError(t, r.Delete(ctx, "jobs:active"))
	found, err = r.GetJSON(ctx, "jobs:active", &out)
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, r.Ping(ctx))
}
