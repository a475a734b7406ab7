package yahoo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"market_watch/internal/feature/candles/domain/entity"
	"market_watch/internal/feature/candles/usecase"
)

// YahooMarket fetches daily bars from the Yahoo Finance v8 chart endpoint.
type YahooMarket struct {
	cfg    Config
	client *http.Client
}

// YahooMarket must satisfy the usecase port.
var _ usecase.MarketRepository = (*YahooMarket)(nil)

// NewYahooMarket creates a YahooMarket with the given config and HTTP client.
func NewYahooMarket(cfg Config, client *http.Client) *YahooMarket {
	return &YahooMarket{cfg: cfg.withDefaults(), client: client}
}

// GetHistory requests daily bars for the given Yahoo range (e.g. "6mo").
// Bars with any null OHLC value (holidays, halted sessions, partial prints) are skipped.
func (y *YahooMarket) GetHistory(ctx context.Context, symbol, period string) ([]entity.Candle, error) {
	q := url.Values{}
	q.Set("interval", "1d")
	q.Set("range", period)
	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s", y.cfg.BaseURL, url.PathEscape(symbol), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", y.cfg.UserAgent)

	res, err := y.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			zap.L().Warn("failed to close response body", zap.Error(err))
		}
	}()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}

	// Unknown symbols come back as 404 with a chart.error payload, so inspect the body first.
	if gjson.ValidBytes(body) {
		if desc := gjson.GetBytes(body, "chart.error.description"); desc.String() != "" {
			return nil, fmt.Errorf("yahoo: %s", desc.String())
		}
	}
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("yahoo http %d", res.StatusCode)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("yahoo: invalid json response")
	}

	return parseChart(gjson.GetBytes(body, "chart.result.0"))
}

// parseChart converts one chart result into candles.
func parseChart(result gjson.Result) ([]entity.Candle, error) {
	if !result.Exists() {
		return []entity.Candle{}, nil
	}

	loc := time.UTC
	if tz := result.Get("meta.exchangeTimezoneName").String(); tz != "" {
		if l, err := time.LoadLocation(tz); err == nil {
			loc = l
		}
	}

	timestamps := result.Get("timestamp").Array()
	quote := result.Get("indicators.quote.0")
	opens := quote.Get("open").Array()
	highs := quote.Get("high").Array()
	lows := quote.Get("low").Array()
	closes := quote.Get("close").Array()
	volumes := quote.Get("volume").Array()

	candles := make([]entity.Candle, 0, len(timestamps))
	for i, ts := range timestamps {
		o, okO := floatAt(opens, i)
		h, okH := floatAt(highs, i)
		l, okL := floatAt(lows, i)
		c, okC := floatAt(closes, i)
		// 欠損のあるバーは0で埋めずに捨てる
		if !okO || !okH || !okL || !okC {
			continue
		}
		v, _ := floatAt(volumes, i)

		candles = append(candles, entity.Candle{
			Interval: entity.DailyInterval,
			Time:     time.Unix(ts.Int(), 0).In(loc),
			Open:     o,
			High:     h,
			Low:      l,
			Close:    c,
			Volume:   int64(v),
		})
	}
	return candles, nil
}

// floatAt reads arr[i], reporting false for out-of-range or null entries.
func floatAt(arr []gjson.Result, i int) (float64, bool) {
	if i >= len(arr) || arr[i].Type == gjson.Null {
		return 0, false
	}
	return arr[i].Float(), true
}
