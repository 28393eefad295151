package usecase

import (
	"context"
	"strings"

	"stock_analysis/internal/feature/stocks/domain/entity"
)

const (
	// DefaultTopLimit は上位銘柄一覧のデフォルト返却件数です。
	DefaultTopLimit = 100
	// MaxTopLimit は上位銘柄一覧の最大返却件数です。
	MaxTopLimit = 100
)

// StockUsecase は銘柄の読み取り系ユースケース（一覧・検索・照会）を提供します。
// ストアを一切変更しない純粋な読み取り投影です。
type StockUsecase struct {
	repo StockRepository
}

// NewStockUsecase はStockUsecaseの新しいインスタンスを生成します。
func NewStockUsecase(repo StockRepository) *StockUsecase {
	return &StockUsecase{repo: repo}
}

// TopByRank はランク昇順でアクティブな銘柄を最大limit件返します。
// limitが範囲外の場合はデフォルト値に丸めます。
func (u *StockUsecase) TopByRank(ctx context.Context, limit int) ([]entity.Stock, error) {
	if limit <= 0 || limit > MaxTopLimit {
		limit = DefaultTopLimit
	}
	return u.repo.FindTopByRank(ctx, limit)
}

// GetBySymbol はシンボル完全一致で1銘柄を返します。
// シンボルは大文字に正規化されます。見つからない場合は ErrStockNotFound を返します。
func (u *StockUsecase) GetBySymbol(ctx context.Context, symbol string) (*entity.Stock, error) {
	return u.repo.FindBySymbol(ctx, strings.ToUpper(symbol))
}

// Search は企業名に対する大文字小文字を区別しない部分一致検索を行います。
func (u *StockUsecase) Search(ctx context.Context, query string) ([]entity.Stock, error) {
	return u.repo.SearchByName(ctx, query)
}

// BySector は指定セクターに属するアクティブな銘柄を返します。
func (u *StockUsecase) BySector(ctx context.Context, sector string) ([]entity.Stock, error) {
	return u.repo.FindBySectorActive(ctx, sector)
}
