package usecase

import (
	"context"

	"stock_analysis/internal/feature/stocks/domain/entity"
)

// StockRepository は銘柄エンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type StockRepository interface {
	// CountAll returns the total number of stocks in the store.
	CountAll(ctx context.Context) (int64, error)

	// FindAll returns every stock, active and inactive.
	FindAll(ctx context.Context) ([]entity.Stock, error)

	// FindTopByRank returns up to limit active stocks ordered by ascending rank.
	// Ties on rank are broken by insertion order.
	FindTopByRank(ctx context.Context, limit int) ([]entity.Stock, error)

	// FindBySymbol returns the stock for the exact symbol.
	// Returns ErrStockNotFound when no such stock exists.
	FindBySymbol(ctx context.Context, symbol string) (*entity.Stock, error)

	// FindBySymbols returns the stocks whose symbols are in the given set,
	// ordered by ascending rank.
	FindBySymbols(ctx context.Context, symbols []string) ([]entity.Stock, error)

	// SearchByName returns stocks whose display name contains the query,
	// case-insensitively.
	SearchByName(ctx context.Context, query string) ([]entity.Stock, error)

	// FindBySectorActive returns active stocks with the exact sector.
	FindBySectorActive(ctx context.Context, sector string) ([]entity.Stock, error)

	// Save persists a single stock as a whole-row replacement.
	Save(ctx context.Context, stock *entity.Stock) error

	// SaveAll persists the given stocks as one batch.
	SaveAll(ctx context.Context, stocks []entity.Stock) error
}

// MarketRepository は外部の株価プロバイダーを抽象化します。
// 実装はステートレスで、異なるシンボルに対して並行に呼び出せる必要があります。
type MarketRepository interface {
	// FetchQuote fetches the current quote snapshot for one symbol.
	// It performs no retries; any network, decode, or missing-field
	// failure is returned to the caller.
	FetchQuote(ctx context.Context, symbol string) (entity.QuoteSnapshot, error)
}
