package database

import (
	"cfs-service/internal/app/config"
	"context"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient dials Redis and exits when it cannot be pinged. Redis
// holds sessions and locks for every deployment, so the service cannot run
// without it.
func NewRedisClient(driverConfig *config.DriverConfig, log *zap.Logger) *redis.Client {
	redisConfig := driverConfig.Redis
	dialTimeout := time.Duration(redisConfig.DialTimeoutInSeconds) * time.Second

	rdb := redis.NewClient(&redis.Options{
		Addr:        net.JoinHostPort(redisConfig.Host, redisConfig.Port),
		Password:    redisConfig.Password,
		DB:          redisConfig.DB,
		DialTimeout: dialTimeout,
		PoolSize:    redisConfig.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout+time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal("Could not connect to Redis",
			zap.String("address", rdb.Options().Addr),
			zap.Error(err),
		)
	}

	log.Info("Successfully connected to Redis",
		zap.String("address", rdb.Options().Addr),
		zap.Int("db", redisConfig.DB),
	)
	return rdb
}
