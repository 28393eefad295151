// Package usecase はfavoritesフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	favoriteentity "stock_analysis/internal/feature/favorites/domain/entity"
	stockentity "stock_analysis/internal/feature/stocks/domain/entity"
)

// ErrAlreadyFavorite は既にお気に入り登録済みの銘柄を追加しようとしたときに
// アダプターが返すエラーです。集合の意味論に合わせ、ユースケースでは成功として扱います。
var ErrAlreadyFavorite = errors.New("stock is already a favorite")

// FavoriteRepository はお気に入りエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type FavoriteRepository interface {
	// Add persists a favorite. Returns ErrAlreadyFavorite on a duplicate
	// (user, symbol) pair.
	Add(ctx context.Context, favorite *favoriteentity.Favorite) error

	// Remove deletes the favorite for the given user and symbol.
	// Removing a non-existent favorite is not an error.
	Remove(ctx context.Context, userID uint, symbol string) error

	// ListSymbols returns the symbols the user has favorited, oldest first.
	ListSymbols(ctx context.Context, userID uint) ([]string, error)
}

// StockReader は銘柄ストアの読み取り操作のうち、お気に入り機能が必要とする
// 部分だけを抽象化します。
type StockReader interface {
	FindBySymbol(ctx context.Context, symbol string) (*stockentity.Stock, error)
	FindBySymbols(ctx context.Context, symbols []string) ([]stockentity.Stock, error)
}

// FavoritesUsecase はユーザーごとのお気に入り銘柄集合を管理します。
type FavoritesUsecase struct {
	favorites FavoriteRepository
	stocks    StockReader
}

// NewFavoritesUsecase は新しい FavoritesUsecase を作成します。
func NewFavoritesUsecase(favorites FavoriteRepository, stocks StockReader) *FavoritesUsecase {
	return &FavoritesUsecase{favorites: favorites, stocks: stocks}
}

// Add は銘柄をユーザーのお気に入りに追加します。シンボルは大文字に正規化され、
// 存在しない銘柄は stockusecase.ErrStockNotFound で拒否されます。
// 既に登録済みの場合は成功扱いです（冪等）。
func (u *FavoritesUsecase) Add(ctx context.Context, userID uint, symbol string) error {
	symbol = strings.ToUpper(symbol)

	// 実在する銘柄だけを受け付ける
	if _, err := u.stocks.FindBySymbol(ctx, symbol); err != nil {
		return err
	}

	err := u.favorites.Add(ctx, &favoriteentity.Favorite{UserID: userID, Symbol: symbol})
	if errors.Is(err, ErrAlreadyFavorite) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}
	return nil
}

// Remove は銘柄をユーザーのお気に入りから外します。未登録でもエラーにしません。
func (u *FavoritesUsecase) Remove(ctx context.Context, userID uint, symbol string) error {
	return u.favorites.Remove(ctx, userID, strings.ToUpper(symbol))
}

// List はユーザーのお気に入り銘柄を最新の気配値付きで返します。
// お気に入りが空の場合は空スライスを返します。
func (u *FavoritesUsecase) List(ctx context.Context, userID uint) ([]stockentity.Stock, error) {
	symbols, err := u.favorites.ListSymbols(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorite symbols: %w", err)
	}
	if len(symbols) == 0 {
		return []stockentity.Stock{}, nil
	}
	return u.stocks.FindBySymbols(ctx, symbols)
}
