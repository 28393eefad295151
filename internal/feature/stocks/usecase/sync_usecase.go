package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"stock_analysis/internal/feature/stocks/domain/entity"
)

// DefaultSyncWorkers は1サイクル内で並行してフェッチするワーカー数のデフォルトです。
const DefaultSyncWorkers = 5

// SymbolFailure は同期サイクル中の1銘柄の失敗を表します。
type SymbolFailure struct {
	Symbol string
	Reason string
}

// CycleReport は1回の同期サイクルの結果サマリーです。
// 失敗は例外としてではなく、このレポートに集約されて呼び出し元に渡ります。
type CycleReport struct {
	Attempted int
	Succeeded int
	Failed    int
	Failures  []SymbolFailure
}

// SyncUsecase は全銘柄の定期リフレッシュ（1サイクル）を実行するユースケースです。
// 1銘柄の失敗がサイクル全体を止めないことがこのコンポーネントの中心的な契約です。
type SyncUsecase struct {
	market  MarketRepository
	stocks  StockRepository
	workers int
}

// NewSyncUsecase は新しい SyncUsecase を作成します。
// workers が 0 以下の場合は DefaultSyncWorkers を使います。
func NewSyncUsecase(market MarketRepository, stocks StockRepository, workers int) *SyncUsecase {
	if workers <= 0 {
		workers = DefaultSyncWorkers
	}
	return &SyncUsecase{market: market, stocks: stocks, workers: workers}
}

// RunCycle refreshes every tracked stock once. Stocks are loaded in full
// (active and inactive), fetched through a bounded worker pool, and each
// one is persisted individually. A fetch or store failure for one symbol
// is recorded in the report and never aborts the cycle; only the initial
// store load can fail the cycle as a whole.
func (u *SyncUsecase) RunCycle(ctx context.Context) (CycleReport, error) {
	stocks, err := u.stocks.FindAll(ctx)
	if err != nil {
		return CycleReport{}, fmt.Errorf("load stocks: %w", err)
	}

	report := CycleReport{Attempted: len(stocks)}

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		sem = make(chan struct{}, u.workers)
	)
	for i := range stocks {
		wg.Add(1)
		go func(stock *entity.Stock) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			err := u.refreshOne(ctx, stock)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.Failed++
				report.Failures = append(report.Failures, SymbolFailure{
					Symbol: stock.Symbol,
					Reason: err.Error(),
				})
				return
			}
			report.Succeeded++
		}(&stocks[i])
	}
	wg.Wait()

	// レポートを決定的にするため、失敗一覧をシンボル順に並べる
	sort.Slice(report.Failures, func(i, j int) bool {
		return report.Failures[i].Symbol < report.Failures[j].Symbol
	})

	slog.Info("stock sync cycle finished",
		"attempted", report.Attempted,
		"succeeded", report.Succeeded,
		"failed", report.Failed)
	return report, nil
}

// refreshOne は1銘柄の気配値を更新して永続化します。
// フェッチに失敗した場合、気配値と履歴は前回値のまま保持されます（stale-but-present）。
func (u *SyncUsecase) refreshOne(ctx context.Context, stock *entity.Stock) error {
	quote, err := u.market.FetchQuote(ctx, stock.Symbol)
	if err != nil {
		slog.Warn("failed to refresh stock quote", "symbol", stock.Symbol, "error", err)
		// 前回値のまま保存する（ベストエフォート）。書き込みは行ごとの全置換なので
		// 変化のない銘柄を保存しても害はない。
		if saveErr := u.stocks.Save(ctx, stock); saveErr != nil {
			slog.Error("failed to persist unchanged stock", "symbol", stock.Symbol, "error", saveErr)
		}
		return fmt.Errorf("fetch quote: %w", err)
	}

	fetchedAt := time.Now()
	stock.ApplyQuote(quote, fetchedAt)
	stock.AppendPricePoint(entity.PricePoint{
		Timestamp: fetchedAt,
		Price:     stock.CurrentPrice,
		Volume:    stock.Volume,
	})

	if err := u.stocks.Save(ctx, stock); err != nil {
		slog.Error("failed to persist refreshed stock", "symbol", stock.Symbol, "error", err)
		return fmt.Errorf("save stock: %w", err)
	}
	return nil
}
