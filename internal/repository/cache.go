package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/climate_dashboard/internal/service"
)

// RedisPageCache хранит готовые страницы в Redis в виде JSON
type RedisPageCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewRedisPageCache(redisClient *redis.Client, ttl time.Duration) service.PageCache {
	return &RedisPageCache{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// Get читает страницу в dst. Возвращает false, если ключа нет в кэше
func (c *RedisPageCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	val, err := c.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get page from cache: %w", err)
	}

	if err := json.Unmarshal(val, dst); err != nil {
		return false, fmt.Errorf("failed to unmarshal page from cache: %w", err)
	}
	return true, nil
}

// Set сохраняет страницу со сроком жизни CACHE_TTL
func (c *RedisPageCache) Set(ctx context.Context, key string, value any) error {
	val, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal page for cache: %w", err)
	}
	if err := c.redisClient.Set(ctx, key, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set page in cache: %w", err)
	}
	return nil
}
