package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"stock_analysis/internal/feature/stocks/domain/entity"
	"stock_analysis/internal/feature/stocks/domain/refdata"
	"stock_analysis/internal/shared/ratelimiter"
)

// フォールバック銘柄に設定するプレースホルダー値。
// プロバイダー障害時でもユニバースのサイズを決定的に保つためのセンチネルです。
const (
	fallbackPrice     = 100.0
	fallbackHighPrice = 105.0
	fallbackLowPrice  = 95.0
	fallbackVolume    = 1_000_000
	fallbackMarketCap = 100_000_000.0
)

// BootstrapUsecase はストアが空のとき、固定ユニバースから銘柄カタログを
// 初期投入するユースケースです。
type BootstrapUsecase struct {
	market   MarketRepository
	stocks   StockRepository
	catalog  *refdata.Catalog
	universe []string
	limiter  ratelimiter.RateLimiterInterface
}

// NewBootstrapUsecase は新しい BootstrapUsecase を作成します。
// universe の位置（1始まり）がそのまま銘柄のランクになります。
func NewBootstrapUsecase(market MarketRepository, stocks StockRepository,
	catalog *refdata.Catalog, universe []string, limiter ratelimiter.RateLimiterInterface) *BootstrapUsecase {
	return &BootstrapUsecase{
		market:   market,
		stocks:   stocks,
		catalog:  catalog,
		universe: universe,
		limiter:  limiter,
	}
}

// Bootstrap populates the store from the fixed universe. It is a no-op when
// the store already holds stocks (the guard is checked once at the start, so
// callers must not run two bootstraps concurrently). All built stocks are
// persisted as a single batch at the end; a crash mid-run leaves the store
// empty and a re-run starts clean from the first symbol.
func (u *BootstrapUsecase) Bootstrap(ctx context.Context) error {
	count, err := u.stocks.CountAll(ctx)
	if err != nil {
		return fmt.Errorf("count stocks: %w", err)
	}
	if count > 0 {
		slog.Info("stock catalog already initialized, skipping bootstrap", "count", count)
		return nil
	}

	stocks := make([]entity.Stock, 0, len(u.universe))
	for i, symbol := range u.universe {
		// 外部APIのレートリミットを尊重するため、呼び出し間隔を空ける
		u.limiter.WaitIfNeeded()

		stock := entity.Stock{
			Symbol:   symbol,
			Name:     u.catalog.CompanyName(symbol),
			Sector:   u.catalog.Sector(symbol),
			Rank:     i + 1,
			IsActive: true,
		}

		quote, err := u.market.FetchQuote(ctx, symbol)
		if err != nil {
			// 取得に失敗してもユニバースの欠落は許さず、フォールバック値で銘柄を作る
			slog.Warn("failed to fetch quote during bootstrap, using fallback values",
				"symbol", symbol, "error", err)
			applyFallbackQuote(&stock)
		} else {
			stock.ApplyQuote(quote, time.Now())
		}

		stocks = append(stocks, stock)
	}

	if err := u.stocks.SaveAll(ctx, stocks); err != nil {
		return fmt.Errorf("save stocks: %w", err)
	}
	slog.Info("initialized stock catalog", "count", len(stocks))
	return nil
}

// applyFallbackQuote は文書化されたセンチネル値で銘柄の気配値を埋めます。
func applyFallbackQuote(s *entity.Stock) {
	s.CurrentPrice = fallbackPrice
	s.PreviousClose = fallbackPrice
	s.DayChange = 0
	s.DayChangePercent = 0
	s.OpenPrice = fallbackPrice
	s.HighPrice = fallbackHighPrice
	s.LowPrice = fallbackLowPrice
	s.Volume = fallbackVolume
	s.MarketCap = fallbackMarketCap
	s.LastUpdated = time.Now()
}
