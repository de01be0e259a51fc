package tokenstore

import (
	"context"
	"fmt"
	redisRepository "shrm-web/internal/app/services/shared/redis"
	"shrm-web/internal/pkg/constvars"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sessionContext(sessionID string) context.Context {
	return context.WithValue(context.Background(), constvars.CONTEXT_SESSION_ID_KEY, sessionID)
}

func expiredJWT(t *testing.T) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(-time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	return token
}

func TestRedisTokenStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisTokenStore(redisRepository.NewRedisRepository(client), 24*time.Hour, zap.NewNop())

	t.Run("Round Trip Under Fixed Key", func(t *testing.T) {
		ctx := sessionContext("visitor-1")

		require.NoError(t, store.SetToken(ctx, "opaque-token"))

		assert.True(t, mr.Exists("shrm:session:visitor-1:token"))
		assert.Equal(t, 24*time.Hour, mr.TTL("shrm:session:visitor-1:token"))
		token, err := store.GetToken(ctx)
		require.NoError(t, err)
		assert.Equal(t, "opaque-token", token)
	})

	t.Run("Sessions Are Isolated", func(t *testing.T) {
		require.NoError(t, store.SetToken(sessionContext("visitor-a"), "token-a"))

		token, err := store.GetToken(sessionContext("visitor-b"))

		require.NoError(t, err)
		assert.Empty(t, token)
	})

	t.Run("Clear Token", func(t *testing.T) {
		ctx := sessionContext("visitor-2")
		require.NoError(t, store.SetToken(ctx, "to-be-cleared"))

		require.NoError(t, store.ClearToken(ctx))

		token, err := store.GetToken(ctx)
		require.NoError(t, err)
		assert.Empty(t, token)
	})

	t.Run("Expired JWT Is Dropped", func(t *testing.T) {
		ctx := sessionContext("visitor-3")
		require.NoError(t, store.SetToken(ctx, expiredJWT(t)))

		token, err := store.GetToken(ctx)

		require.NoError(t, err)
		assert.Empty(t, token)
		assert.False(t, mr.Exists(fmt.Sprintf(constvars.RedisSessionKeyFormat, "visitor-3", constvars.StorageKeyToken)))
	})

	t.Run("Unreadable Value Is Dropped", func(t *testing.T) {
		require.NoError(t, mr.Set("shrm:session:visitor-4:token", "not json"))

		token, err := store.GetToken(sessionContext("visitor-4"))

		require.NoError(t, err)
		assert.Empty(t, token)
		assert.False(t, mr.Exists("shrm:session:visitor-4:token"))
	})

	t.Run("No Session Is Anonymous", func(t *testing.T) {
		token, err := store.GetToken(context.Background())
		assert.NoError(t, err)
		assert.Empty(t, token)

		assert.Error(t, store.SetToken(context.Background(), "orphan"))
		assert.NoError(t, store.ClearToken(context.Background()))
	})

	t.Run("Last Write Wins", func(t *testing.T) {
		ctx := sessionContext("visitor-5")
		require.NoError(t, store.SetToken(ctx, "first"))
		require.NoError(t, store.SetToken(ctx, "second"))

		token, err := store.GetToken(ctx)

		require.NoError(t, err)
		assert.Equal(t, "second", token)
	})
}

func TestMemoryTokenStore(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store := NewMemoryTokenStore(time.Hour).(*memoryTokenStore)
	store.now = func() time.Time { return now }

	ctx := sessionContext("visitor-1")
	require.NoError(t, store.SetToken(ctx, "opaque-token"))

	token, err := store.GetToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "opaque-token", token)

	now = now.Add(2 * time.Hour)
	token, err = store.GetToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, token, "entries expire after the session TTL")

	require.NoError(t, store.SetToken(ctx, "fresh"))
	require.NoError(t, store.ClearToken(ctx))
	token, _ = store.GetToken(ctx)
	assert.Empty(t, token)
}

func TestMemoryTokenStore_Sweep(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store := NewMemoryTokenStore(time.Hour).(*memoryTokenStore)
	store.now = func() time.Time { return now }

	for i := 0; i < 100; i++ {
		require.NoError(t, store.SetToken(sessionContext(fmt.Sprintf("abandoned-%d", i)), "token"))
	}
	assert.Len(t, store.entries, 100)

	now = now.Add(2 * time.Hour)
	require.NoError(t, store.SetToken(sessionContext("returning"), "token"))

	assert.Len(t, store.entries, 1, "expired entries are swept on write")
	token, err := store.GetToken(sessionContext("returning"))
	require.NoError(t, err)
	assert.Equal(t, "token", token)
}
