// Package entity defines the domain models for the stocks feature.
package entity

import "time"

// MaxHistoryPoints は1銘柄あたり保持する価格履歴の上限件数です。
const MaxHistoryPoints = 100

// PricePoint は価格履歴の1エントリ（取得時刻・価格・出来高）を表します。
// 一度追加された後は変更されません。
type PricePoint struct {
	Timestamp time.Time `json:"timestamp"`
	Price     float64   `json:"price"`
	Volume    int64     `json:"volume"`
}

// PriceHistory is an oldest-first, bounded series of price points.
// It is persisted as a single JSON column so that a stock row is always
// written as a whole (last-writer-wins at instrument granularity).
type PriceHistory []PricePoint

// Stock represents one tracked equity: its latest quote plus bounded history.
type Stock struct {
	ID               uint         `gorm:"primaryKey"`
	Symbol           string       `gorm:"size:20;not null;uniqueIndex"`
	Name             string       `gorm:"size:255;not null"`
	Sector           string       `gorm:"size:100;not null"`
	Rank             int          `gorm:"not null;default:0"`
	CurrentPrice     float64      `gorm:"not null;default:0"`
	PreviousClose    float64      `gorm:"not null;default:0"`
	DayChange        float64      `gorm:"not null;default:0"`
	DayChangePercent float64      `gorm:"not null;default:0"`
	OpenPrice        float64      `gorm:"not null;default:0"`
	HighPrice        float64      `gorm:"not null;default:0"`
	LowPrice         float64      `gorm:"not null;default:0"`
	Volume           int64        `gorm:"not null;default:0"`
	MarketCap        float64      `gorm:"not null;default:0"`
	IsActive         bool         `gorm:"not null;default:true"`
	LastUpdated      time.Time    `gorm:"not null"`
	PriceHistory     PriceHistory `gorm:"serializer:json"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// QuoteSnapshot は外部プロバイダーから取得した、ある時点の気配値一式です。
// CurrentPrice と PreviousClose は必須、それ以外はプロバイダーのレスポンスに
// 含まれていた場合のみ設定されます（nil = 未提供）。
type QuoteSnapshot struct {
	CurrentPrice  float64
	PreviousClose float64
	OpenPrice     *float64
	HighPrice     *float64
	LowPrice      *float64
	Volume        *int64
	MarketCap     *float64
}

// ApplyQuote は取得したスナップショットで最新値を上書きします。
// 任意フィールドはレスポンスに含まれていた場合のみ上書きし、欠けている場合は
// 前回値を保持します。価格履歴への追記は呼び出し側が AppendPricePoint で行います。
// PreviousClose が 0 のときは DayChangePercent を 0 に据え置きます（ゼロ除算ガード）。
func (s *Stock) ApplyQuote(q QuoteSnapshot, fetchedAt time.Time) {
	s.CurrentPrice = q.CurrentPrice
	s.PreviousClose = q.PreviousClose
	s.DayChange = q.CurrentPrice - q.PreviousClose
	if q.PreviousClose != 0 {
		s.DayChangePercent = s.DayChange / q.PreviousClose * 100
	} else {
		s.DayChangePercent = 0
	}
	if q.OpenPrice != nil {
		s.OpenPrice = *q.OpenPrice
	}
	if q.HighPrice != nil {
		s.HighPrice = *q.HighPrice
	}
	if q.LowPrice != nil {
		s.LowPrice = *q.LowPrice
	}
	if q.Volume != nil {
		s.Volume = *q.Volume
	}
	if q.MarketCap != nil {
		s.MarketCap = *q.MarketCap
	}
	s.LastUpdated = fetchedAt
}

// AppendPricePoint appends a point at the tail of the history. When the
// series exceeds MaxHistoryPoints, exactly one entry is evicted from the
// head (the oldest). One fetch adds at most one point, so the series can
// never overshoot the bound by more than one.
func (s *Stock) AppendPricePoint(p PricePoint) {
	s.PriceHistory = append(s.PriceHistory, p)
	if len(s.PriceHistory) > MaxHistoryPoints {
		s.PriceHistory = s.PriceHistory[1:]
	}
}
