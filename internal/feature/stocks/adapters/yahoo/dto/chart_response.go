// Package dto defines the wire format consumed from the Yahoo Finance chart API.
// Only the fields this system reads are modeled; optional quote fields are
// pointers so that absence can be distinguished from zero.
package dto

// ChartResponse は /v8/finance/chart/<symbol> のレスポンス全体です。
type ChartResponse struct {
	Chart Chart `json:"chart"`
}

// Chart holds the result list and the provider-side error, if any.
type Chart struct {
	Result []ChartResult `json:"result"`
	Error  *ChartError   `json:"error"`
}

// ChartResult is one chart entry; the quote lives in its meta block.
type ChartResult struct {
	Meta Meta `json:"meta"`
}

// Meta は気配値フィールドを含むメタデータブロックです。
// RegularMarketPrice と PreviousClose 以外は任意フィールドです。
type Meta struct {
	Symbol               string   `json:"symbol"`
	Currency             string   `json:"currency"`
	RegularMarketPrice   *float64 `json:"regularMarketPrice"`
	PreviousClose        *float64 `json:"previousClose"`
	RegularMarketOpen    *float64 `json:"regularMarketOpen"`
	RegularMarketDayHigh *float64 `json:"regularMarketDayHigh"`
	RegularMarketDayLow  *float64 `json:"regularMarketDayLow"`
	RegularMarketVolume  *int64   `json:"regularMarketVolume"`
	MarketCap            *float64 `json:"marketCap"`
}

// ChartError is the provider's structured error payload.
type ChartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}
