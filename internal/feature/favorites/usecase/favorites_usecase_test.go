package usecase

import (
	"context"
	"errors"
	"testing"

	favoriteentity "stock_analysis/internal/feature/favorites/domain/entity"
	stockentity "stock_analysis/internal/feature/stocks/domain/entity"
	stockusecase "stock_analysis/internal/feature/stocks/usecase"
)

type mockFavoriteRepository struct {
	addFunc         func(ctx context.Context, favorite *favoriteentity.Favorite) error
	removeFunc      func(ctx context.Context, userID uint, symbol string) error
	listSymbolsFunc func(ctx context.Context, userID uint) ([]string, error)

	added   []favoriteentity.Favorite
	removed []string
}

var _ FavoriteRepository = (*mockFavoriteRepository)(nil)

func (m *mockFavoriteRepository) Add(ctx context.Context, favorite *favoriteentity.Favorite) error {
	m.added = append(m.added, *favorite)
	if m.addFunc != nil {
		return m.addFunc(ctx, favorite)
	}
	return nil
}

func (m *mockFavoriteRepository) Remove(ctx context.Context, userID uint, symbol string) error {
	m.removed = append(m.removed, symbol)
	if m.removeFunc != nil {
		return m.removeFunc(ctx, userID, symbol)
	}
	return nil
}

func (m *mockFavoriteRepository) ListSymbols(ctx context.Context, userID uint) ([]string, error) {
	if m.listSymbolsFunc != nil {
		return m.listSymbolsFunc(ctx, userID)
	}
	return nil, nil
}

type mockStockReader struct {
	findBySymbolFunc  func(ctx context.Context, symbol string) (*stockentity.Stock, error)
	findBySymbolsFunc func(ctx context.Context, symbols []string) ([]stockentity.Stock, error)
}

var _ StockReader = (*mockStockReader)(nil)

func (m *mockStockReader) FindBySymbol(ctx context.Context, symbol string) (*stockentity.Stock, error) {
	if m.findBySymbolFunc != nil {
		return m.findBySymbolFunc(ctx, symbol)
	}
	return &stockentity.Stock{Symbol: symbol}, nil
}

func (m *mockStockReader) FindBySymbols(ctx context.Context, symbols []string) ([]stockentity.Stock, error) {
	if m.findBySymbolsFunc != nil {
		return m.findBySymbolsFunc(ctx, symbols)
	}
	return nil, nil
}

func TestFavoritesAdd_NormalizesAndPersists(t *testing.T) {
	favorites := &mockFavoriteRepository{}
	uc := NewFavoritesUsecase(favorites, &mockStockReader{})

	if err := uc.Add(context.Background(), 7, "reliance"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if len(favorites.added) != 1 {
		t.Fatalf("expected one persisted favorite, got %d", len(favorites.added))
	}
	got := favorites.added[0]
	if got.UserID != 7 || got.Symbol != "RELIANCE" {
		t.Errorf("favorite mismatch: %+v", got)
	}
}

func TestFavoritesAdd_RejectsUnknownStock(t *testing.T) {
	favorites := &mockFavoriteRepository{}
	stocks := &mockStockReader{
		findBySymbolFunc: func(ctx context.Context, symbol string) (*stockentity.Stock, error) {
			return nil, stockusecase.ErrStockNotFound
		},
	}
	uc := NewFavoritesUsecase(favorites, stocks)

	err := uc.Add(context.Background(), 7, "NOPE")
	if !errors.Is(err, stockusecase.ErrStockNotFound) {
		t.Errorf("error = %v, want ErrStockNotFound", err)
	}
	if len(favorites.added) != 0 {
		t.Error("unknown stock must not be persisted")
	}
}

func TestFavoritesAdd_DuplicateIsIdempotent(t *testing.T) {
	favorites := &mockFavoriteRepository{
		addFunc: func(ctx context.Context, _ *favoriteentity.Favorite) error {
			return ErrAlreadyFavorite
		},
	}
	uc := NewFavoritesUsecase(favorites, &mockStockReader{})

	if err := uc.Add(context.Background(), 7, "TCS"); err != nil {
		t.Errorf("duplicate add should succeed: %v", err)
	}
}

func TestFavoritesRemove_Normalizes(t *testing.T) {
	favorites := &mockFavoriteRepository{}
	uc := NewFavoritesUsecase(favorites, &mockStockReader{})

	if err := uc.Remove(context.Background(), 7, "tcs"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if len(favorites.removed) != 1 || favorites.removed[0] != "TCS" {
		t.Errorf("removed symbols mismatch: %v", favorites.removed)
	}
}

func TestFavoritesList(t *testing.T) {
	t.Run("empty favorites returns empty slice", func(t *testing.T) {
		uc := NewFavoritesUsecase(&mockFavoriteRepository{}, &mockStockReader{
			findBySymbolsFunc: func(ctx context.Context, symbols []string) ([]stockentity.Stock, error) {
				t.Fatal("stock store must not be queried for empty favorites")
				return nil, nil
			},
		})

		got, err := uc.List(context.Background(), 7)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("want empty non-nil slice, got %v", got)
		}
	})

	t.Run("resolves favorites to stocks", func(t *testing.T) {
		favorites := &mockFavoriteRepository{
			listSymbolsFunc: func(ctx context.Context, userID uint) ([]string, error) {
				return []string{"TCS", "RELIANCE"}, nil
			},
		}
		stocks := &mockStockReader{
			findBySymbolsFunc: func(ctx context.Context, symbols []string) ([]stockentity.Stock, error) {
				if len(symbols) != 2 {
					t.Errorf("symbols mismatch: %v", symbols)
				}
				return []stockentity.Stock{{Symbol: "RELIANCE"}, {Symbol: "TCS"}}, nil
			},
		}
		uc := NewFavoritesUsecase(favorites, stocks)

		got, err := uc.List(context.Background(), 7)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(got) != 2 {
			t.Errorf("result size mismatch: %d", len(got))
		}
	})

	t.Run("repository error propagates", func(t *testing.T) {
		favorites := &mockFavoriteRepository{
			listSymbolsFunc: func(ctx context.Context, userID uint) ([]string, error) {
				return nil, errors.New("connection refused")
			},
		}
		uc := NewFavoritesUsecase(favorites, &mockStockReader{})

		if _, err := uc.List(context.Background(), 7); err == nil {
			t.Fatal("expected error")
		}
	})
}
