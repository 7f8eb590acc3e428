package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"byteBrosStore/domain"
	"byteBrosStore/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const (
	productsKey = "cache:produtos"
	newsKey     = "cache:noticias"
)

// CatalogCache is a best-effort read cache for the public listings.
// Cache failures are logged and treated as misses.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	if ttl <= 0 {
		ttl = time.Minute
	}

	return &CatalogCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *CatalogCache) GetProducts(ctx context.Context) ([]domain.Product, bool) {
	var products []domain.Product
	if !c.get(ctx, productsKey, &products) {
		return nil, false
	}

	return products, true
}

func (c *CatalogCache) SetProducts(ctx context.Context, products []domain.Product) {
	c.set(ctx, productsKey, products)
}

func (c *CatalogCache) InvalidateProducts(ctx context.Context) {
	c.invalidate(ctx, productsKey)
}

func (c *CatalogCache) GetNews(ctx context.Context) ([]domain.News, bool) {
	var news []domain.News
	if !c.get(ctx, newsKey, &news) {
		return nil, false
	}

	return news, true
}

func (c *CatalogCache) SetNews(ctx context.Context, news []domain.News) {
	c.set(ctx, newsKey, news)
}

func (c *CatalogCache) InvalidateNews(ctx context.Context) {
	c.invalidate(ctx, newsKey)
}

func (c *CatalogCache) get(ctx context.Context, key string, dest any) bool {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn("Failed to read listing cache", err)
		}
		return false
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		logger.Warn("Failed to decode listing cache", err)
		return false
	}

	return true
}

func (c *CatalogCache) set(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		logger.Warn("Failed to encode listing cache", err)
		return
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		logger.Warn("Failed to write listing cache", err)
	}
}

func (c *CatalogCache) invalidate(ctx context.Context, key string) {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		logger.Warn("Failed to invalidate listing cache", err)
	}
}
