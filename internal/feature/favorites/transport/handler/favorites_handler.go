// Package handler はfavoritesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	stockentity "stock_analysis/internal/feature/stocks/domain/entity"
	"stock_analysis/internal/feature/stocks/transport/http/dto"
	stockusecase "stock_analysis/internal/feature/stocks/usecase"
	jwtmw "stock_analysis/internal/platform/jwt"
)

// FavoritesUsecase はお気に入り操作のユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type FavoritesUsecase interface {
	Add(ctx context.Context, userID uint, symbol string) error
	Remove(ctx context.Context, userID uint, symbol string) error
	List(ctx context.Context, userID uint) ([]stockentity.Stock, error)
}

// FavoritesHandler はお気に入り操作のHTTPリクエストを処理します。
// ユーザーIDは認証ミドルウェアがコンテキストに設定したものを使います。
type FavoritesHandler struct {
	uc FavoritesUsecase
}

// NewFavoritesHandler は新しい FavoritesHandler を作成します。
func NewFavoritesHandler(uc FavoritesUsecase) *FavoritesHandler {
	return &FavoritesHandler{uc: uc}
}

// userID はJWTミドルウェアが設定した認証済みユーザーIDを取り出します。
func userID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(jwtmw.ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// Add は銘柄をお気に入りに追加するAPIです。
// 存在しない銘柄は404、未認証は401を返します。
func (h *FavoritesHandler) Add(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	symbol := c.Param("symbol")
	if err := h.uc.Add(c.Request.Context(), id, symbol); err != nil {
		if errors.Is(err, stockusecase.ErrStockNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "stock not found"})
			return
		}
		slog.Error("failed to add favorite", "user_id", id, "symbol", symbol, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add favorite"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "stock added to favorites"})
}

// Remove は銘柄をお気に入りから外すAPIです。
func (h *FavoritesHandler) Remove(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	symbol := c.Param("symbol")
	if err := h.uc.Remove(c.Request.Context(), id, symbol); err != nil {
		slog.Error("failed to remove favorite", "user_id", id, "symbol", symbol, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove favorite"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "stock removed from favorites"})
}

// List は認証済みユーザーのお気に入り銘柄一覧を返すAPIです。
func (h *FavoritesHandler) List(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	stocks, err := h.uc.List(c.Request.Context(), id)
	if err != nil {
		slog.Error("failed to list favorites", "user_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list favorites"})
		return
	}
	c.JSON(http.StatusOK, dto.FromStocks(stocks))
}
