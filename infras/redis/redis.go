package redis

import (
	"context"
	"fmt"
	"time"

	"hotel/config"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// New connects to the primary node and pings it before returning.
func New(cfg *config.Config) (*goRedis.Client, error) {
	primary := cfg.Cache.Redis.Primary
	timeout := time.Duration(cfg.Cache.Redis.TimeoutSeconds) * time.Second

	client := goRedis.NewClient(&goRedis.Options{
		Addr:         primary.Addr(),
		Password:     primary.Password,
		DB:           primary.DB,
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), max(timeout, time.Second))
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("failed to connect to redis at %s: %w", primary.Addr(), err)
	}

	log.Info().Int("db", primary.DB).Str("addr", primary.Addr()).Msg("Connected to Redis")

	return client, nil
}
