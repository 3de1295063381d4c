package database

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-redis/redis/v8"
)

type RedisSettings struct {
	Addr     string
	Password string
	DB       int
}

// ConnectRedis returns nil, nil when no address is configured; Redis is optional.
func ConnectRedis(ctx context.Context, s RedisSettings) (*redis.Client, error) {
	if s.Addr == "" {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     s.Addr,
		Password: s.Password,
		DB:       s.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "ping redis")
	}
	return client, nil
}
