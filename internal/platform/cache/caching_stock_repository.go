// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"stock_analysis/internal/feature/stocks/domain/entity"
	"stock_analysis/internal/feature/stocks/usecase"
)

// CachingStockRepository decorates a StockRepository with Redis caching on
// the read projections consumed by the API layer (top/symbol/search/sector).
// Write paths and the sync engine's bulk reads go straight through; every
// write invalidates the namespace. With a nil Redis client the decorator is
// a transparent pass-through.
type CachingStockRepository struct {
	inner     usecase.StockRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.StockRepository = (*CachingStockRepository)(nil)

// NewCachingStockRepository decorates a StockRepository with Redis caching.
// If ttl is 0, it defaults to 1 minute. If namespace is empty, it uses "stocks".
func NewCachingStockRepository(rdb *redis.Client, ttl time.Duration, inner usecase.StockRepository, namespace string) *CachingStockRepository {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if namespace == "" {
		namespace = "stocks"
	}
	return &CachingStockRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// CountAll は同期エンジン用の読み取りなのでキャッシュしません。
func (c *CachingStockRepository) CountAll(ctx context.Context) (int64, error) {
	return c.inner.CountAll(ctx)
}

// FindAll は同期エンジン用の全量読み取りなのでキャッシュしません。
func (c *CachingStockRepository) FindAll(ctx context.Context) ([]entity.Stock, error) {
	return c.inner.FindAll(ctx)
}

// FindTopByRank retrieves the ranked list, checking cache first.
func (c *CachingStockRepository) FindTopByRank(ctx context.Context, limit int) ([]entity.Stock, error) {
	key := c.cacheKey("top", fmt.Sprintf("%d", limit))
	return c.throughCache(ctx, key, func() ([]entity.Stock, error) {
		return c.inner.FindTopByRank(ctx, limit)
	})
}

// FindBySymbol retrieves one stock, checking cache first.
// Not-found errors are never cached.
func (c *CachingStockRepository) FindBySymbol(ctx context.Context, symbol string) (*entity.Stock, error) {
	if c.rdb == nil {
		return c.inner.FindBySymbol(ctx, symbol)
	}

	key := c.cacheKey("symbol", symbol)
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Stock
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// 壊れたキャッシュエントリは削除
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.FindBySymbol(ctx, symbol)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err() // Best effort
	}
	return out, nil
}

// FindBySymbols はお気に入り一覧用の読み取りです。ユーザーごとに集合が異なり
// ヒット率が見込めないためキャッシュしません。
func (c *CachingStockRepository) FindBySymbols(ctx context.Context, symbols []string) ([]entity.Stock, error) {
	return c.inner.FindBySymbols(ctx, symbols)
}

// SearchByName retrieves a name search result, checking cache first.
func (c *CachingStockRepository) SearchByName(ctx context.Context, query string) ([]entity.Stock, error) {
	key := c.cacheKey("search", strings.ToLower(query))
	return c.throughCache(ctx, key, func() ([]entity.Stock, error) {
		return c.inner.SearchByName(ctx, query)
	})
}

// FindBySectorActive retrieves a sector listing, checking cache first.
func (c *CachingStockRepository) FindBySectorActive(ctx context.Context, sector string) ([]entity.Stock, error) {
	key := c.cacheKey("sector", sector)
	return c.throughCache(ctx, key, func() ([]entity.Stock, error) {
		return c.inner.FindBySectorActive(ctx, sector)
	})
}

// Save persists one stock and invalidates the read cache.
func (c *CachingStockRepository) Save(ctx context.Context, stock *entity.Stock) error {
	if err := c.inner.Save(ctx, stock); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// SaveAll persists a batch and invalidates the read cache.
func (c *CachingStockRepository) SaveAll(ctx context.Context, stocks []entity.Stock) error {
	if err := c.inner.SaveAll(ctx, stocks); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// throughCache はスライスを返す読み取りをキャッシュ経由で実行します。
func (c *CachingStockRepository) throughCache(ctx context.Context, key string, load func() ([]entity.Stock, error)) ([]entity.Stock, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return load()
	}

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Stock
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := load()
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

// invalidate deletes every cached read projection in the namespace.
// 同期サイクルは全銘柄を書き換えるため、キー単位ではなく名前空間ごと落とす。
func (c *CachingStockRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_ = c.deleteByPattern(ctx, c.namespace+":*") // Best effort
}

// cacheKey generates a cache key for a specific read projection.
func (c *CachingStockRepository) cacheKey(kind, arg string) string {
	return fmt.Sprintf("%s:%s:%s", c.namespace, kind, safe(arg))
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingStockRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
