package ratelimiter

import (
	"cfs-service/internal/app/services/shared/redis"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestLimiter(t *testing.T) *ResourceLimiter {
	t.Helper()
	server := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewResourceLimiter(redis.NewRedisRepository(client), zap.NewNop())
}

func TestResourceLimiter_FixedWindow(t *testing.T) {
	limiter := newTestLimiter(t)
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 10, 0, 30, 0, time.UTC)

	in := &ApplyResourceLimiterInput{
		ResourceName:     "export-publish",
		LimiterGroupName: "admin",
		WindowDuration:   time.Minute,
		MaxQuota:         2,
		NowUTC:           now,
	}

	for i := 0; i < 2; i++ {
		out, err := limiter.ApplyResourceLimiter(ctx, in)
		require.NoError(t, err)
		assert.True(t, out.Allowed)
	}

	out, err := limiter.ApplyResourceLimiter(ctx, in)
	require.NoError(t, err)
	assert.False(t, out.Allowed)
	assert.Equal(t, 31, out.RetryAfterSecs)

	in.NowUTC = now.Add(time.Minute)
	out, err = limiter.ApplyResourceLimiter(ctx, in)
	require.NoError(t, err)
	assert.True(t, out.Allowed)
}

func TestResourceLimiter_Edges(t *testing.T) {
	limiter := newTestLimiter(t)
	ctx := context.Background()

	out, err := limiter.ApplyResourceLimiter(ctx, &ApplyResourceLimiterInput{ResourceName: "x", LimiterGroupName: "y"})
	require.NoError(t, err)
	assert.True(t, out.Allowed)

	out, err = limiter.ApplyResourceLimiter(ctx, &ApplyResourceLimiterInput{MaxQuota: 1})
	require.NoError(t, err)
	assert.False(t, out.Allowed)

	_, err = limiter.ApplyResourceLimiter(ctx, nil)
	assert.Error(t, err)
}
