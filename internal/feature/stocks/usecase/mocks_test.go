package usecase

import (
	"context"
	"sync"

	"stock_analysis/internal/feature/stocks/domain/entity"
)

// mockStockRepository はテストごとに必要な関数フィールドだけ差し込むスタブです。
type mockStockRepository struct {
	mu sync.Mutex

	countAllFunc           func(ctx context.Context) (int64, error)
	findAllFunc            func(ctx context.Context) ([]entity.Stock, error)
	findTopByRankFunc      func(ctx context.Context, limit int) ([]entity.Stock, error)
	findBySymbolFunc       func(ctx context.Context, symbol string) (*entity.Stock, error)
	findBySymbolsFunc      func(ctx context.Context, symbols []string) ([]entity.Stock, error)
	searchByNameFunc       func(ctx context.Context, query string) ([]entity.Stock, error)
	findBySectorActiveFunc func(ctx context.Context, sector string) ([]entity.Stock, error)
	saveFunc               func(ctx context.Context, stock *entity.Stock) error
	saveAllFunc            func(ctx context.Context, stocks []entity.Stock) error

	saved    []entity.Stock
	savedAll [][]entity.Stock
}

var _ StockRepository = (*mockStockRepository)(nil)

func (m *mockStockRepository) CountAll(ctx context.Context) (int64, error) {
	if m.countAllFunc != nil {
		return m.countAllFunc(ctx)
	}
	return 0, nil
}

func (m *mockStockRepository) FindAll(ctx context.Context) ([]entity.Stock, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockStockRepository) FindTopByRank(ctx context.Context, limit int) ([]entity.Stock, error) {
	if m.findTopByRankFunc != nil {
		return m.findTopByRankFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockStockRepository) FindBySymbol(ctx context.Context, symbol string) (*entity.Stock, error) {
	if m.findBySymbolFunc != nil {
		return m.findBySymbolFunc(ctx, symbol)
	}
	return nil, ErrStockNotFound
}

func (m *mockStockRepository) FindBySymbols(ctx context.Context, symbols []string) ([]entity.Stock, error) {
	if m.findBySymbolsFunc != nil {
		return m.findBySymbolsFunc(ctx, symbols)
	}
	return nil, nil
}

func (m *mockStockRepository) SearchByName(ctx context.Context, query string) ([]entity.Stock, error) {
	if m.searchByNameFunc != nil {
		return m.searchByNameFunc(ctx, query)
	}
	return nil, nil
}

func (m *mockStockRepository) FindBySectorActive(ctx context.Context, sector string) ([]entity.Stock, error) {
	if m.findBySectorActiveFunc != nil {
		return m.findBySectorActiveFunc(ctx, sector)
	}
	return nil, nil
}

func (m *mockStockRepository) Save(ctx context.Context, stock *entity.Stock) error {
	m.mu.Lock()
	m.saved = append(m.saved, *stock)
	m.mu.Unlock()
	if m.saveFunc != nil {
		return m.saveFunc(ctx, stock)
	}
	return nil
}

func (m *mockStockRepository) SaveAll(ctx context.Context, stocks []entity.Stock) error {
	m.mu.Lock()
	m.savedAll = append(m.savedAll, stocks)
	m.mu.Unlock()
	if m.saveAllFunc != nil {
		return m.saveAllFunc(ctx, stocks)
	}
	return nil
}

// savedBySymbol は Save で渡された最後のスナップショットをシンボルで引きます。
func (m *mockStockRepository) savedBySymbol(symbol string) (entity.Stock, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.saved) - 1; i >= 0; i-- {
		if m.saved[i].Symbol == symbol {
			return m.saved[i], true
		}
	}
	return entity.Stock{}, false
}

// mockMarketRepository は外部プロバイダーのスタブです。
type mockMarketRepository struct {
	mu             sync.Mutex
	fetchQuoteFunc func(ctx context.Context, symbol string) (entity.QuoteSnapshot, error)
	fetched        []string
}

var _ MarketRepository = (*mockMarketRepository)(nil)

func (m *mockMarketRepository) FetchQuote(ctx context.Context, symbol string) (entity.QuoteSnapshot, error) {
	m.mu.Lock()
	m.fetched = append(m.fetched, symbol)
	m.mu.Unlock()
	if m.fetchQuoteFunc != nil {
		return m.fetchQuoteFunc(ctx, symbol)
	}
	return entity.QuoteSnapshot{}, nil
}

func (m *mockMarketRepository) fetchCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.fetched)
}

// mockRateLimiter は待機回数だけを数えます。
type mockRateLimiter struct {
	calls int
}

func (m *mockRateLimiter) WaitIfNeeded() {
	m.calls++
}
