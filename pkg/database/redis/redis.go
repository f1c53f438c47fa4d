package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mobileHospital/pkg/config"

	"github.com/redis/go-redis/v9"
)

// Options maps the storage settings onto client options. Shop collections
// are small JSON documents with no expiry, so one pool serves every key.
func Options(cfg config.RedisConfig) *redis.Options {
	return &redis.Options{
		Addr:         fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Username:     cfg.RedisUsername,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  cfg.Timeout,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: 1,
	}
}

// OpenKV connects the client backing the key-value store and checks it is
// reachable. An empty key prefix is refused: the shop keys would share the
// database namespace with anything else stored there.
func OpenKV(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.KeyPrefix == "" {
		return nil, errors.New("redis key prefix must not be empty")
	}

	client := redis.NewClient(Options(cfg))

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout+2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", client.Options().Addr, err)
	}

	return client, nil
}

// Close closes the Redis connection
func Close(client *redis.Client) error {
	if client != nil {
		return client.Close()
	}

	return nil
}
