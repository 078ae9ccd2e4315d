package exchange_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"

	"github.com/xy-planning-network/connect"
	"github.com/xy-planning-network/connect/exchange"
)

func TestDigest(t *testing.T) {
	d := exchange.Digest("4/secret-code")
	require.Len(t, d, 64)
	require.NotContains(t, d, "secret")
	require.Equal(t, d, exchange.Digest("4/secret-code"))
	require.NotEqual(t, d, exchange.Digest("4/other-code"))
}

func TestDedupMemory(t *testing.T) {
	// Arrange
	ctx := context.Background()
	cache := exchange.NewMemorySeenCache(exchange.SeenTTL)

	// Act + Assert
	require.NoError(t, exchange.Dedup(ctx, cache, "a"))
	require.ErrorIs(t, exchange.Dedup(ctx, cache, "a"), exchange.ErrDuplicate)
	require.NoError(t, exchange.Dedup(ctx, cache, "b"))
	require.NoError(t, exchange.Dedup(ctx, nil, "a"))
}

func TestMemorySeenCacheExpires(t *testing.T) {
	// Arrange
	ctx := context.Background()
	cache := exchange.NewMemorySeenCache(time.Nanosecond)

	// Act
	first, err := cache.MarkSeen(ctx, "a")
	require.NoError(t, err)
	time.Sleep(time.Millisecond)
	second, err := cache.MarkSeen(ctx, "a")
	require.NoError(t, err)

	// Assert
	require.False(t, first)
	require.False(t, second)
}

type fakeRedis struct {
	redis.Cmdable
	err  error
	keys map[string]time.Duration
}

func (f *fakeRedis) SetNX(ctx context.Context, key string, _ any, exp time.Duration) *redis.BoolCmd {
	cmd := redis.NewBoolCmd(ctx)
	if f.err != nil {
		cmd.SetErr(f.err)
		return cmd
	}

	_, ok := f.keys[key]
	if !ok {
		f.keys[key] = exp
	}
	cmd.SetVal(!ok)
	return cmd
}

func TestRedisSeenCache(t *testing.T) {
	t.Run("SetNX", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		fake := &fakeRedis{keys: make(map[string]time.Duration)}
		cache := exchange.NewRedisSeenCache(fake, exchange.SeenTTL)

		// Act
		first, err := cache.MarkSeen(ctx, "a")
		require.NoError(t, err)
		second, err := cache.MarkSeen(ctx, "a")
		require.NoError(t, err)

		// Assert
		require.False(t, first)
		require.True(t, second)
		require.Equal(t, map[string]time.Duration{"connect:seen:a": exchange.SeenTTL}, fake.keys)
	})

	t.Run("Error", func(t *testing.T) {
		fake := &fakeRedis{err: errors.New("connection refused")}
		cache := exchange.NewRedisSeenCache(fake, exchange.SeenTTL)

		err := exchange.Dedup(context.Background(), cache, "a")
		require.ErrorIs(t, err, connect.ErrUnexpected)
	})
}
