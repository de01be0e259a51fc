package redis

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRepository(t *testing.T) {
	mr := miniredis.RunT(t)
	repository := NewRedisRepository(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	ctx := context.Background()

	t.Run("Set Stores JSON", func(t *testing.T) {
		require.NoError(t, repository.Set(ctx, "greeting", "hello", time.Minute))

		raw, err := mr.Get("greeting")
		require.NoError(t, err)
		assert.Equal(t, `"hello"`, raw)
		assert.Equal(t, time.Minute, mr.TTL("greeting"))
	})

	t.Run("Get Missing Key", func(t *testing.T) {
		value, err := repository.Get(ctx, "missing")

		assert.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repository.Set(ctx, "doomed", 1, 0))
		require.NoError(t, repository.Delete(ctx, "doomed"))

		assert.False(t, mr.Exists("doomed"))
	})

	t.Run("Connection Failure", func(t *testing.T) {
		broken := miniredis.RunT(t)
		brokenRepository := NewRedisRepository(redis.NewClient(&redis.Options{Addr: broken.Addr(), MaxRetries: -1}))
		broken.Close()

		_, err := brokenRepository.Get(ctx, "anything")

		assert.Error(t, err)
	})
}
