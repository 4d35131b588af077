package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"restaurant-backend/internal/domain"
	"restaurant-backend/internal/service"
)

const catalogKey = "catalog:dishes"

// RedisCatalogCache keeps a JSON snapshot of the dish catalog.
type RedisCatalogCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCatalogCache(client *redis.Client, ttl time.Duration) *RedisCatalogCache {
	return &RedisCatalogCache{Client: client, TTL: ttl}
}

var _ service.CatalogCache = (*RedisCatalogCache)(nil)

// GetDishes returns (nil, nil) on a cache miss.
func (c *RedisCatalogCache) GetDishes(ctx context.Context) ([]domain.Dish, error) {
	payload, err := c.Client.Get(ctx, catalogKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var dishes []domain.Dish
	if err := json.Unmarshal(payload, &dishes); err != nil {
		return nil, err
	}
	return dishes, nil
}

func (c *RedisCatalogCache) SetDishes(ctx context.Context, dishes []domain.Dish) error {
	payload, err := json.Marshal(dishes)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, catalogKey, payload, c.TTL).Err()
}

func (c *RedisCatalogCache) Invalidate(ctx context.Context) error {
	return c.Client.Del(ctx, catalogKey).Err()
}
