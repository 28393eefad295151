package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"stock_analysis/internal/feature/stocks/adapters/yahoo/dto"
	"stock_analysis/internal/feature/stocks/domain/entity"
	"stock_analysis/internal/feature/stocks/usecase"
)

// nseSuffix はNSE上場銘柄をYahoo Financeで引くためのシンボル接尾辞です。
const nseSuffix = ".NS"

// YahooMarket はMarketRepositoryインターフェースのYahoo Finance実装です。
// ステートレスで、異なるシンボルに対して並行に呼び出せます。リトライは行いません。
type YahooMarket struct {
	cfg    Config
	client *http.Client
}

var _ usecase.MarketRepository = (*YahooMarket)(nil)

// NewYahooMarket は指定された設定とHTTPクライアントでYahooMarketを生成します。
func NewYahooMarket(cfg Config, client *http.Client) *YahooMarket {
	return &YahooMarket{cfg: cfg, client: client}
}

// FetchQuote は1銘柄の現在の気配値スナップショットを取得します。
// シンボルにプロバイダー接尾辞（.NS）が無ければ付与します。
// regularMarketPrice と previousClose はレスポンスの必須フィールドで、
// どちらかが欠けていればエラーを返します。それ以外のフィールドは任意です。
func (y *YahooMarket) FetchQuote(ctx context.Context, symbol string) (entity.QuoteSnapshot, error) {
	yahooSymbol := symbol
	if !strings.Contains(yahooSymbol, nseSuffix) {
		yahooSymbol += nseSuffix
	}

	u := fmt.Sprintf("%s/v8/finance/chart/%s", y.cfg.BaseURL, url.PathEscape(yahooSymbol))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return entity.QuoteSnapshot{}, err
	}

	res, err := y.client.Do(req)
	if err != nil {
		return entity.QuoteSnapshot{}, err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return entity.QuoteSnapshot{}, fmt.Errorf("yahoo finance http %d for %s", res.StatusCode, yahooSymbol)
	}

	var body dto.ChartResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return entity.QuoteSnapshot{}, fmt.Errorf("decode chart response: %w", err)
	}
	if body.Chart.Error != nil {
		return entity.QuoteSnapshot{}, fmt.Errorf("yahoo finance: %s (%s)",
			body.Chart.Error.Description, body.Chart.Error.Code)
	}
	if len(body.Chart.Result) == 0 {
		return entity.QuoteSnapshot{}, fmt.Errorf("yahoo finance: empty chart result for %s", yahooSymbol)
	}

	meta := body.Chart.Result[0].Meta
	if meta.RegularMarketPrice == nil || meta.PreviousClose == nil {
		return entity.QuoteSnapshot{}, fmt.Errorf("yahoo finance: missing mandatory price fields for %s", yahooSymbol)
	}

	return entity.QuoteSnapshot{
		CurrentPrice:  *meta.RegularMarketPrice,
		PreviousClose: *meta.PreviousClose,
		OpenPrice:     meta.RegularMarketOpen,
		HighPrice:     meta.RegularMarketDayHigh,
		LowPrice:      meta.RegularMarketDayLow,
		Volume:        meta.RegularMarketVolume,
		MarketCap:     meta.MarketCap,
	}, nil
}
