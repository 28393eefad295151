// Package adapters はstocksフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"stock_analysis/internal/feature/stocks/domain/entity"
	"stock_analysis/internal/feature/stocks/usecase"
)

// stockMySQL はStockRepositoryインターフェースのMySQL実装です。
// GORMを使用してデータベース操作を行います。価格履歴はJSONカラムとして
// 銘柄行に同居するため、書き込みは常に行単位の全置換になります。
type stockMySQL struct {
	db *gorm.DB
}

// stockMySQLがStockRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.StockRepository = (*stockMySQL)(nil)

// NewStockRepository は指定されたDB接続でstockMySQLリポジトリの新しいインスタンスを生成します。
func NewStockRepository(db *gorm.DB) *stockMySQL {
	return &stockMySQL{db: db}
}

// CountAll は登録済み銘柄の総数を返します。
func (r *stockMySQL) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Stock{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindAll はアクティブ・非アクティブを問わずすべての銘柄を返します。
func (r *stockMySQL) FindAll(ctx context.Context) ([]entity.Stock, error) {
	var stocks []entity.Stock
	if err := r.db.WithContext(ctx).Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}

// FindTopByRank はランク昇順でアクティブな銘柄を最大limit件返します。
// 同ランクの場合はID（挿入順）で安定的に並べます。
func (r *stockMySQL) FindTopByRank(ctx context.Context, limit int) ([]entity.Stock, error) {
	var stocks []entity.Stock
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("`rank` ASC, id ASC").
		Limit(limit).
		Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}

// FindBySymbol はシンボル完全一致で1銘柄を取得します。
// 銘柄が存在しない場合、usecase.ErrStockNotFoundを返します。
func (r *stockMySQL) FindBySymbol(ctx context.Context, symbol string) (*entity.Stock, error) {
	var stock entity.Stock
	if err := r.db.WithContext(ctx).Where("symbol = ?", symbol).First(&stock).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrStockNotFound
		}
		return nil, err
	}
	return &stock, nil
}

// FindBySymbols は指定されたシンボル集合に含まれる銘柄をランク昇順で返します。
func (r *stockMySQL) FindBySymbols(ctx context.Context, symbols []string) ([]entity.Stock, error) {
	if len(symbols) == 0 {
		return []entity.Stock{}, nil
	}
	var stocks []entity.Stock
	if err := r.db.WithContext(ctx).
		Where("symbol IN ?", symbols).
		Order("`rank` ASC, id ASC").
		Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}

// SearchByName は企業名の大文字小文字を区別しない部分一致で銘柄を検索します。
func (r *stockMySQL) SearchByName(ctx context.Context, query string) ([]entity.Stock, error) {
	var stocks []entity.Stock
	pattern := "%" + strings.ToLower(query) + "%"
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", pattern).
		Order("`rank` ASC, id ASC").
		Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}

// FindBySectorActive は指定セクターのアクティブな銘柄をランク昇順で返します。
func (r *stockMySQL) FindBySectorActive(ctx context.Context, sector string) ([]entity.Stock, error) {
	var stocks []entity.Stock
	if err := r.db.WithContext(ctx).
		Where("sector = ? AND is_active = ?", sector, true).
		Order("`rank` ASC, id ASC").
		Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}

// Save は1銘柄を行単位の全置換で永続化します。
func (r *stockMySQL) Save(ctx context.Context, stock *entity.Stock) error {
	return r.db.WithContext(ctx).Save(stock).Error
}

// SaveAll は複数銘柄を1バッチで永続化します。
func (r *stockMySQL) SaveAll(ctx context.Context, stocks []entity.Stock) error {
	if len(stocks) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&stocks).Error
}
