package tokenstore

import (
	"context"
	"fmt"
	"shrm-web/internal/app/contracts"
	"shrm-web/internal/pkg/constvars"
	"shrm-web/internal/pkg/exceptions"
	"shrm-web/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type redisTokenStore struct {
	Redis contracts.RedisRepository
	TTL   time.Duration
	Log   *zap.Logger
	now   func() time.Time
}

// NewRedisTokenStore keeps one bearer token per visitor session in Redis.
func NewRedisTokenStore(redisRepository contracts.RedisRepository, ttl time.Duration, logger *zap.Logger) contracts.TokenProvider {
	return &redisTokenStore{
		Redis: redisRepository,
		TTL:   ttl,
		Log:   logger,
		now:   time.Now,
	}
}

func (s *redisTokenStore) GetToken(ctx context.Context) (string, error) {
	sessionID := utils.GetSessionID(ctx)
	if sessionID == "" {
		return "", nil
	}

	raw, err := s.Redis.Get(ctx, sessionKey(sessionID))
	if err != nil {
		s.Log.Error("redisTokenStore.GetToken error reading token",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return "", err
	}
	if raw == "" {
		return "", nil
	}

	var token string
	err = json.Unmarshal([]byte(raw), &token)
	if err != nil {
		s.Log.Warn("redisTokenStore.GetToken dropping unreadable token",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return "", s.ClearToken(ctx)
	}

	if utils.IsTokenExpired(token, s.now()) {
		s.Log.Info("redisTokenStore.GetToken dropping expired token",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		)
		return "", s.ClearToken(ctx)
	}

	return token, nil
}

func (s *redisTokenStore) SetToken(ctx context.Context, token string) error {
	sessionID := utils.GetSessionID(ctx)
	if sessionID == "" {
		return exceptions.ErrMissingSessionID(nil)
	}
	return s.Redis.Set(ctx, sessionKey(sessionID), token, s.TTL)
}

func (s *redisTokenStore) ClearToken(ctx context.Context) error {
	sessionID := utils.GetSessionID(ctx)
	if sessionID == "" {
		return nil
	}
	return s.Redis.Delete(ctx, sessionKey(sessionID))
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf(constvars.RedisSessionKeyFormat, sessionID, constvars.StorageKeyToken)
}
