// Package yahoo はYahoo Financeチャートエンドポイントの株価クライアントを提供します。
package yahoo

import "time"

// DefaultBaseURL is the production Yahoo Finance endpoint.
const DefaultBaseURL = "https://query1.finance.yahoo.com"

// Config はYahoo Financeクライアントの設定を保持します。
type Config struct {
	BaseURL string        // APIのベースURL（テストではhttptestサーバーのURL）
	Timeout time.Duration // HTTPリクエストタイムアウト
}

// NewConfig は指定値から設定を組み立てます。空の値にはデフォルトを適用します。
func NewConfig(baseURL string, timeout time.Duration) Config {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return Config{BaseURL: baseURL, Timeout: timeout}
}
