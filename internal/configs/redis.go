package config

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/rueidis"
)

// NewRedisClient connects to the autocomplete cache and checks that the
// server answers. Client-side caching stays off: cached lists are
// refreshed by the warmer, not by server invalidation.
func NewRedisClient(addr string) (rueidis.Client, error) {
	redisClient, err := rueidis.NewClient(
		rueidis.ClientOption{
			InitAddress:  []string{addr},
			ClientName:   "agilefant",
			DisableCache: true,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Do(ctx, redisClient.B().Ping().Build()).Error(); err != nil {
		redisClient.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}

	return redisClient, nil
}
