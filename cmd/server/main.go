package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"stock_analysis/internal/app/router"
	authadapters "stock_analysis/internal/feature/auth/adapters"
	authhandler "stock_analysis/internal/feature/auth/transport/handler"
	authusecase "stock_analysis/internal/feature/auth/usecase"
	favoritesadapters "stock_analysis/internal/feature/favorites/adapters"
	favoriteshandler "stock_analysis/internal/feature/favorites/transport/handler"
	favoritesusecase "stock_analysis/internal/feature/favorites/usecase"
	stockadapters "stock_analysis/internal/feature/stocks/adapters"
	"stock_analysis/internal/feature/stocks/adapters/yahoo"
	"stock_analysis/internal/feature/stocks/domain/refdata"
	stockhandler "stock_analysis/internal/feature/stocks/transport/handler"
	stockusecase "stock_analysis/internal/feature/stocks/usecase"
	"stock_analysis/internal/platform/cache"
	infradb "stock_analysis/internal/platform/db"
	infrahttp "stock_analysis/internal/platform/http"
	jwtmw "stock_analysis/internal/platform/jwt"
	infraredis "stock_analysis/internal/platform/redis"
	"stock_analysis/internal/platform/tokenstore"
	"stock_analysis/internal/shared/config"
	"stock_analysis/internal/shared/ratelimiter"
	"stock_analysis/internal/shared/scheduler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// JWT_SECRETチェック（開発中の注意喚起）
	if cfg.App.JWTSecret == "" {
		slog.Warn("JWT_SECRET is not set. Set a strong secret in production.")
	}

	// db
	gdb, err := infradb.Open(cfg.DB.DSN())
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	// Redis（無くてもキャッシュ・トークン失効なしで起動する）
	var rdb *redisv9.Client
	if cfg.Redis.Host != "" {
		if tmp, err := infraredis.NewRedisClient(cfg.Redis.Addr(), cfg.Redis.Password); err != nil {
			slog.Warn("Redis unavailable. Running without cache and token denylist.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close Redis client", "error", err)
				}
			}()
		}
	}

	// Repository
	userRepo := authadapters.NewUserMySQL(gdb)
	favoriteRepo := favoritesadapters.NewFavoriteRepository(gdb)
	stockRepo := stockadapters.NewStockRepository(gdb)

	// Redisキャッシュでラップ（同期サイクルごとに無効化されるのでTTLは同期周期に合わせる）
	cachedStockRepo := cache.NewCachingStockRepository(rdb, cfg.Sync.Interval, stockRepo, "stocks")

	// 外部株価プロバイダー
	yahooCfg := yahoo.NewConfig(cfg.Yahoo.BaseURL, cfg.Yahoo.FetchTimeout)
	httpClient := infrahttp.NewHTTPClient(yahooCfg.Timeout)
	market := yahoo.NewYahooMarket(yahooCfg, httpClient)

	// トークン失効
	var denylist interface {
		jwtmw.Denylist
		authusecase.TokenDenylist
	}
	if rdb != nil {
		denylist = tokenstore.NewRedisDenylist(rdb, "revoked_token")
	} else {
		denylist = tokenstore.NewNoopDenylist()
	}

	// Usecase
	jwtGenerator := jwtmw.NewGenerator(cfg.App.JWTSecret, 24*time.Hour)
	inspector := jwtmw.NewInspector(cfg.App.JWTSecret)
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGenerator, inspector, denylist)
	stockUC := stockusecase.NewStockUsecase(cachedStockRepo)
	favoritesUC := favoritesusecase.NewFavoritesUsecase(favoriteRepo, cachedStockRepo)

	pacer := ratelimiter.NewFixedDelayPacer(cfg.Sync.BootstrapDelay)
	bootstrapUC := stockusecase.NewBootstrapUsecase(market, cachedStockRepo,
		refdata.NewCatalog(), refdata.DefaultUniverse, pacer)
	syncUC := stockusecase.NewSyncUsecase(market, cachedStockRepo, cfg.Sync.Workers)

	// 起動時に一度だけカタログを初期投入する。
	// 最初の同期サイクルが走り出す前に完了していること。
	ctx := context.Background()
	if err := bootstrapUC.Bootstrap(ctx); err != nil {
		slog.Error("failed to bootstrap stock catalog", "error", err)
		os.Exit(1)
	}

	// 定期同期（前サイクル実行中のティックはスキップされる）
	sched := scheduler.New("stock-sync", cfg.Sync.Interval, func(ctx context.Context) {
		if _, err := syncUC.RunCycle(ctx); err != nil {
			slog.Error("stock sync cycle failed", "error", err)
		}
	})
	go sched.Run(ctx)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	stockH := stockhandler.NewStockHandler(stockUC)
	favoritesH := favoriteshandler.NewFavoritesHandler(favoritesUC)

	// ルータ生成
	r := router.NewRouter(authH, stockH, favoritesH, denylist)

	if err := r.Run(fmt.Sprintf(":%d", cfg.App.Port)); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}
