package tokencache

import (
	"context"
	"testing"

	"concert_tickets/internal/infrastructure/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("none", func(t *testing.T) {
		c, err := NewFromConfig(ctx, config.TokenCache{Backend: config.TokenCacheNone})
		require.NoError(t, err)
		assert.Nil(t, c)
	})

	t.Run("memory", func(t *testing.T) {
		c, err := NewFromConfig(ctx, config.TokenCache{Backend: config.TokenCacheMemory})
		require.NoError(t, err)
		assert.IsType(t, &MemoryCache{}, c)
	})

	t.Run("redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		c, err := NewFromConfig(ctx, config.TokenCache{Backend: config.TokenCacheRedis, RedisAddr: mr.Addr()})
		require.NoError(t, err)
		assert.IsType(t, &RedisCache{}, c)
	})

	t.Run("redis without addr", func(t *testing.T) {
		_, err := NewFromConfig(ctx, config.TokenCache{Backend: config.TokenCacheRedis})
		assert.Error(t, err)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := NewFromConfig(ctx, config.TokenCache{Backend: "memcached"})
		assert.Error(t, err)
	})
}
