package tokencache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"concert_tickets/internal/domain/entities"
	"concert_tickets/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

type redisEntry struct {
	Value  string    `json:"value"`
	Expiry time.Time `json:"expiry"`
}

// RedisCache shares tokens between replicas of the service.
type RedisCache struct {
	client *redis.Client
}

var _ interfaces.ITokenCache = (*RedisCache)(nil)

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (r *RedisCache) Get(ctx context.Context, key string) (entities.AccessToken, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.AccessToken{}, ErrCacheMiss
	}
	if err != nil {
		return entities.AccessToken{}, fmt.Errorf("redis get failed: %w", err)
	}

	var e redisEntry
	if err := json.Unmarshal(data, &e); err != nil {
		return entities.AccessToken{}, fmt.Errorf("unmarshal token failed: %w", err)
	}
	return entities.AccessToken{Value: e.Value, Expiry: e.Expiry}, nil
}

func (r *RedisCache) Set(ctx context.Context, key string, token entities.AccessToken, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	b, err := json.Marshal(redisEntry{Value: token.Value, Expiry: token.Expiry})
	if err != nil {
		return fmt.Errorf("marshal token failed: %w", err)
	}
	if err := r.client.Set(ctx, key, b, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisCache) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}
