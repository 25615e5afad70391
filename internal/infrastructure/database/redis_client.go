package database

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis creates a Redis client for REDIS_ADDR (default localhost:6379)
// and checks it with PING.
func ConnectRedis(ctx context.Context) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: getenvDefault("REDIS_ADDR", "localhost:6379")})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}
