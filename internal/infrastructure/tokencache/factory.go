package tokencache

import (
	"context"
	"fmt"
	"log"

	"concert_tickets/internal/infrastructure/config"
	"concert_tickets/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// NewFromConfig returns the configured cache backend, or nil when caching is off.
func NewFromConfig(ctx context.Context, cfg config.TokenCache) (interfaces.ITokenCache, error) {
	switch cfg.Backend {
	case config.TokenCacheNone:
		log.Printf("[token-cache] disabled")
		return nil, nil
	case config.TokenCacheMemory, "":
		log.Printf("[token-cache] in-memory backend")
		return NewMemoryCache(), nil
	case config.TokenCacheRedis:
		if cfg.RedisAddr == "" {
			return nil, fmt.Errorf("token cache backend redis requires TOKEN_CACHE_REDIS_ADDR")
		}
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("redis ping failed: %w", err)
		}
		log.Printf("[token-cache] redis backend addr=%s", cfg.RedisAddr)
		return NewRedisCache(client), nil
	default:
		return nil, fmt.Errorf("unknown token cache backend %q", cfg.Backend)
	}
}
