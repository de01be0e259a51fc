package database

import (
	"context"
	"fmt"
	"shrm-web/internal/app/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient connects to Redis. It returns nil when Redis is disabled,
// in which case visitor tokens are kept in process memory.
func NewRedisClient(driverConfig *config.DriverConfig, log *zap.Logger) *redis.Client {
	if !driverConfig.Redis.Enabled {
		log.Warn("Redis disabled, visitor tokens will be kept in memory")
		return nil
	}

	var ctx = context.Background()
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port),
		Password: driverConfig.Redis.Password,
	})

	_, err := rdb.Ping(ctx).Result()
	if err != nil {
		log.Fatal("Could not connect to Redis", zap.Error(err))
	}

	log.Info("Successfully connected to Redis")
	return rdb
}
