// Package dto defines data transfer objects for the stocks feature's HTTP transport layer.
package dto

import (
	"time"

	"stock_analysis/internal/feature/stocks/domain/entity"
)

// PricePointItem は価格履歴1件のレスポンス表現です。
type PricePointItem struct {
	Timestamp time.Time `json:"timestamp"`
	Price     float64   `json:"price"`
	Volume    int64     `json:"volume"`
}

// StockResponse は銘柄1件のレスポンス表現です。
type StockResponse struct {
	Symbol           string           `json:"symbol"`
	Name             string           `json:"name"`
	Sector           string           `json:"sector"`
	Rank             int              `json:"rank"`
	CurrentPrice     float64          `json:"currentPrice"`
	PreviousClose    float64          `json:"previousClose"`
	DayChange        float64          `json:"dayChange"`
	DayChangePercent float64          `json:"dayChangePercent"`
	OpenPrice        float64          `json:"openPrice"`
	HighPrice        float64          `json:"highPrice"`
	LowPrice         float64          `json:"lowPrice"`
	Volume           int64            `json:"volume"`
	MarketCap        float64          `json:"marketCap"`
	LastUpdated      time.Time        `json:"lastUpdated"`
	PriceHistory     []PricePointItem `json:"priceHistory"`
}

// FromStock はドメインエンティティをレスポンスDTOに変換します。
func FromStock(s entity.Stock) StockResponse {
	history := make([]PricePointItem, 0, len(s.PriceHistory))
	for _, p := range s.PriceHistory {
		history = append(history, PricePointItem{
			Timestamp: p.Timestamp,
			Price:     p.Price,
			Volume:    p.Volume,
		})
	}
	return StockResponse{
		Symbol:           s.Symbol,
		Name:             s.Name,
		Sector:           s.Sector,
		Rank:             s.Rank,
		CurrentPrice:     s.CurrentPrice,
		PreviousClose:    s.PreviousClose,
		DayChange:        s.DayChange,
		DayChangePercent: s.DayChangePercent,
		OpenPrice:        s.OpenPrice,
		HighPrice:        s.HighPrice,
		LowPrice:         s.LowPrice,
		Volume:           s.Volume,
		MarketCap:        s.MarketCap,
		LastUpdated:      s.LastUpdated,
		PriceHistory:     history,
	}
}

// FromStocks は銘柄スライスをレスポンスDTOのスライスに変換します。
func FromStocks(stocks []entity.Stock) []StockResponse {
	out := make([]StockResponse, 0, len(stocks))
	for _, s := range stocks {
		out = append(out, FromStock(s))
	}
	return out
}
