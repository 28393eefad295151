// Package adapters はfavoritesフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"stock_analysis/internal/feature/favorites/domain/entity"
	"stock_analysis/internal/feature/favorites/usecase"
)

// favoriteMySQL はFavoriteRepositoryインターフェースのMySQL実装です。
type favoriteMySQL struct {
	db *gorm.DB
}

var _ usecase.FavoriteRepository = (*favoriteMySQL)(nil)

// NewFavoriteRepository は指定されたDB接続でfavoriteMySQLリポジトリの新しいインスタンスを生成します。
func NewFavoriteRepository(db *gorm.DB) *favoriteMySQL {
	return &favoriteMySQL{db: db}
}

// Add はお気に入りを追加します。(user_id, symbol) の重複時は
// usecase.ErrAlreadyFavorite を返します。
func (r *favoriteMySQL) Add(ctx context.Context, favorite *entity.Favorite) error {
	if err := r.db.WithContext(ctx).Create(favorite).Error; err != nil {
		// MySQLエラー1062: ユニークキーの重複エントリ
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return usecase.ErrAlreadyFavorite
		}
		// GORMのエラー変換が有効な接続（テスト用SQLiteなど）はこちらで判定される
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrAlreadyFavorite
		}
		return err
	}
	return nil
}

// Remove は指定ユーザー・シンボルのお気に入りを削除します。
// 対象が存在しなくてもエラーにしません。
func (r *favoriteMySQL) Remove(ctx context.Context, userID uint, symbol string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND symbol = ?", userID, symbol).
		Delete(&entity.Favorite{}).Error
}

// ListSymbols はユーザーのお気に入りシンボルを登録順に返します。
func (r *favoriteMySQL) ListSymbols(ctx context.Context, userID uint) ([]string, error) {
	var symbols []string
	if err := r.db.WithContext(ctx).
		Model(&entity.Favorite{}).
		Where("user_id = ?", userID).
		Order("id ASC").
		Pluck("symbol", &symbols).Error; err != nil {
		return nil, err
	}
	return symbols, nil
}
