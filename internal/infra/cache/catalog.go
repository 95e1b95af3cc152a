package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"flashbooth/internal/pkg/config"
	"flashbooth/internal/usecase/queries"
)

const catalogKey = "catalog:available"

// RedisCatalogCache fronts the public catalog listing. Misses and backend
// failures both fall through to Postgres.
type RedisCatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCatalogCache returns the Redis-backed cache, or a no-op when no Redis
// address is configured.
func NewCatalogCache(cfg config.RedisConfig) (queries.CatalogCache, func()) {
	if cfg.Addr == "" {
		return NoopCatalogCache{}, func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
	})
	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err)
		}
	}
	return &RedisCatalogCache{client: client, ttl: cfg.TTL}, cleanup
}

func (c *RedisCatalogCache) GetCatalog(ctx context.Context) ([]*queries.ProductView, bool) {
	raw, err := c.client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("catalog cache read failed", "error", err)
		}
		return nil, false
	}

	var products []*queries.ProductView
	if err := json.Unmarshal(raw, &products); err != nil {
		slog.Warn("catalog cache entry corrupt", "error", err)
		return nil, false
	}
	return products, true
}

func (c *RedisCatalogCache) SetCatalog(ctx context.Context, products []*queries.ProductView) {
	raw, err := json.Marshal(products)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, catalogKey, raw, c.ttl).Err(); err != nil {
		slog.Warn("catalog cache write failed", "error", err)
	}
}

func (c *RedisCatalogCache) InvalidateCatalog(ctx context.Context) {
	if err := c.client.Del(ctx, catalogKey).Err(); err != nil {
		slog.Warn("catalog cache invalidation failed", "error", err)
	}
}

// NoopCatalogCache is used when Redis is not configured.
type NoopCatalogCache struct{}

func (NoopCatalogCache) GetCatalog(context.Context) ([]*queries.ProductView, bool) { return nil, false }
func (NoopCatalogCache) SetCatalog(context.Context, []*queries.ProductView)        {}
func (NoopCatalogCache) InvalidateCatalog(context.Context)                         {}
