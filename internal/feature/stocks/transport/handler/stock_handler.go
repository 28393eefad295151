// Package handler はstocksフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stock_analysis/internal/feature/stocks/domain/entity"
	"stock_analysis/internal/feature/stocks/transport/http/dto"
	"stock_analysis/internal/feature/stocks/usecase"
)

// StockUsecase は銘柄の読み取り系ユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type StockUsecase interface {
	TopByRank(ctx context.Context, limit int) ([]entity.Stock, error)
	GetBySymbol(ctx context.Context, symbol string) (*entity.Stock, error)
	Search(ctx context.Context, query string) ([]entity.Stock, error)
	BySector(ctx context.Context, sector string) ([]entity.Stock, error)
}

// StockHandler は銘柄照会のHTTPリクエストを処理します。
type StockHandler struct {
	uc StockUsecase
}

// NewStockHandler は新しい StockHandler を作成します。
func NewStockHandler(uc StockUsecase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Top はランク上位のアクティブ銘柄一覧を返すAPIです。
// クエリパラメータ limit（省略時はユースケースのデフォルト）で件数を指定できます。
func (h *StockHandler) Top(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	stocks, err := h.uc.TopByRank(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.FromStocks(stocks))
}

// GetBySymbol はシンボル指定で1銘柄を返すAPIです。
// 見つからない場合は404を返します。
func (h *StockHandler) GetBySymbol(c *gin.Context) {
	stock, err := h.uc.GetBySymbol(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		if errors.Is(err, usecase.ErrStockNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "stock not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.FromStock(*stock))
}

// Search は企業名の部分一致検索APIです。クエリパラメータ query が必須です。
func (h *StockHandler) Search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter is required"})
		return
	}
	stocks, err := h.uc.Search(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.FromStocks(stocks))
}

// BySector は指定セクターのアクティブ銘柄一覧を返すAPIです。
func (h *StockHandler) BySector(c *gin.Context) {
	stocks, err := h.uc.BySector(c.Request.Context(), c.Param("sector"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.FromStocks(stocks))
}
