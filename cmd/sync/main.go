// 全銘柄の同期サイクルを1回だけ実行するワンショットコマンドです。
// 定期実行はサーバープロセス内のスケジューラが担いますが、障害後の
// 手動リフレッシュや動作確認にはこちらを使います。
package main

import (
	"context"
	"log/slog"
	"os"

	stockadapters "stock_analysis/internal/feature/stocks/adapters"
	"stock_analysis/internal/feature/stocks/adapters/yahoo"
	stockusecase "stock_analysis/internal/feature/stocks/usecase"
	infradb "stock_analysis/internal/platform/db"
	infrahttp "stock_analysis/internal/platform/http"
	"stock_analysis/internal/shared/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	gdb, err := infradb.Open(cfg.DB.DSN())
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	yahooCfg := yahoo.NewConfig(cfg.Yahoo.BaseURL, cfg.Yahoo.FetchTimeout)
	market := yahoo.NewYahooMarket(yahooCfg, infrahttp.NewHTTPClient(yahooCfg.Timeout))
	stockRepo := stockadapters.NewStockRepository(gdb)
	syncUC := stockusecase.NewSyncUsecase(market, stockRepo, cfg.Sync.Workers)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Sync.Interval)
	defer cancel()

	report, err := syncUC.RunCycle(ctx)
	if err != nil {
		slog.Error("sync cycle failed", "error", err)
		os.Exit(1)
	}
	for _, f := range report.Failures {
		slog.Warn("symbol failed", "symbol", f.Symbol, "reason", f.Reason)
	}
	slog.Info("sync ok", "attempted", report.Attempted,
		"succeeded", report.Succeeded, "failed", report.Failed)
}
