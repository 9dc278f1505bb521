package cache

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// unreachable points at a closed port so PING fails fast
var unreachable = config.RedisConfig{Host: "127.0.0.1", Port: 1}

func TestFactory_CreateCache(t *testing.T) {
	t.Run("falls back to memory when Redis is unreachable", func(t *testing.T) {
		core, recorded := observer.New(zapcore.WarnLevel)
		f := NewFactory(unreachable, WithLogger(zap.New(core)))

		c, err := f.CreateCache()
		require.NoError(t, err)
		defer c.Close()

		_, ok := c.(*InMemoryCache)
		assert.True(t, ok)
		assert.Equal(t, 1, recorded.FilterMessage("Redis unavailable, falling back to in-memory report cache").Len())
	})

	t.Run("fails when fallback is disabled", func(t *testing.T) {
		f := NewFactory(unreachable, WithInMemoryFallback(false))

		c, err := f.CreateCache()
		assert.Nil(t, c)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "redis required")
	})
}

func TestRedisCache_Keys(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	c := NewRedisCacheWithClient(client, "")
	defer c.Close()

	assert.Equal(t, "storefront:report:finance:all", c.key("report:finance:all"))

	custom := NewRedisCacheWithClient(client, "test:")
	assert.Equal(t, "test:k", custom.key("k"))

	t.Run("errors are wrapped rather than reported as misses", func(t *testing.T) {
		_, err := c.Get(context.Background(), "k")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read cache key k")
	})

	t.Run("delete without keys is a no-op", func(t *testing.T) {
		assert.NoError(t, c.Delete(context.Background()))
	})
}
