package twelvedata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"market_watch/internal/feature/candles/domain/entity"
	"market_watch/internal/feature/candles/usecase"
	"market_watch/internal/platform/externalapi/twelvedata/dto"
	"market_watch/internal/shared/ratelimiter"
)

// TwelveDataMarket はTwelve Data外部APIから日足を取得するMarketRepository実装です。
type TwelveDataMarket struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.RateLimiterInterface
	now     func() time.Time
}

// TwelveDataMarketがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketRepository = (*TwelveDataMarket)(nil)

// NewTwelveDataMarket は指定された設定とHTTPクライアントでTwelveDataMarketの新しいインスタンスを生成します。
// cfg.RatePerMinute に従って呼び出し頻度を制限します。
func NewTwelveDataMarket(cfg Config, client *http.Client) *TwelveDataMarket {
	cfg = cfg.withDefaults()
	return &TwelveDataMarket{
		cfg:     cfg,
		client:  client,
		limiter: ratelimiter.NewRateLimiter(cfg.RatePerMinute, time.Minute),
		now:     time.Now,
	}
}

// GetHistory はTwelve Data APIから period 分の日足を取得し、古い順に返します。
func (t *TwelveDataMarket) GetHistory(ctx context.Context, symbol, period string) ([]entity.Candle, error) {
	start, err := entity.PeriodStart(t.now(), period)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	// クエリパラメータを追加
	q.Set("symbol", t.cfg.symbolFor(symbol))
	q.Set("interval", entity.DailyInterval)
	q.Set("start_date", start.Format("2006-01-02"))
	q.Set("order", "ASC")
	q.Set("apikey", t.cfg.TwelveDataAPIKey)

	u := fmt.Sprintf("%s/time_series?%s", t.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	if waited := t.limiter.WaitIfNeeded(); waited > time.Second {
		zap.L().Info("twelvedata rate limit wait", zap.String("symbol", symbol), zap.Duration("waited", waited))
	}
	// 待機中にリクエストがキャンセルされていれば呼び出さない
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			zap.L().Warn("failed to close response body", zap.Error(err))
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("twelvedata http %d", res.StatusCode)
	}

	// JSONレスポンスをDTOにデコード
	var body dto.TimeSeriesResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.Status == "error" {
		return nil, fmt.Errorf("twelvedata: %s", body.Message)
	}

	candles := make([]entity.Candle, 0, len(body.Values))
	for _, v := range body.Values {
		c, err := toCandle(v)
		if err != nil {
			return nil, err
		}
		candles = append(candles, c)
	}

	// order=ASC が無視された場合に備えて新しい順なら反転
	if len(candles) > 1 && candles[0].Time.After(candles[len(candles)-1].Time) {
		for i, j := 0, len(candles)-1; i < j; i, j = i+1, j-1 {
			candles[i], candles[j] = candles[j], candles[i]
		}
	}
	return candles, nil
}

// toCandle は1本分のDTOをドメインエンティティに変換します。
func toCandle(v dto.TimeSeriesValue) (entity.Candle, error) {
	// タイムスタンプをパース
	tm, err := time.Parse("2006-01-02 15:04:05", v.Datetime)
	if err != nil {
		tm, err = time.Parse("2006-01-02", v.Datetime)
		if err != nil {
			return entity.Candle{}, fmt.Errorf("parse time %q: %w", v.Datetime, err)
		}
	}
	o, err := strconv.ParseFloat(v.Open, 64)
	if err != nil {
		return entity.Candle{}, fmt.Errorf("parse open %q: %w", v.Open, err)
	}
	h, err := strconv.ParseFloat(v.High, 64)
	if err != nil {
		return entity.Candle{}, fmt.Errorf("parse high %q: %w", v.High, err)
	}
	l, err := strconv.ParseFloat(v.Low, 64)
	if err != nil {
		return entity.Candle{}, fmt.Errorf("parse low %q: %w", v.Low, err)
	}
	c, err := strconv.ParseFloat(v.Close, 64)
	if err != nil {
		return entity.Candle{}, fmt.Errorf("parse close %q: %w", v.Close, err)
	}
	// 先物・指数には出来高がない
	var vol int64
	if v.Volume != "" {
		vol, err = strconv.ParseInt(v.Volume, 10, 64)
		if err != nil {
			return entity.Candle{}, fmt.Errorf("parse volume %q: %w", v.Volume, err)
		}
	}

	return entity.Candle{
		Interval: entity.DailyInterval,
		Time:     tm,
		Open:     o,
		High:     h,
		Low:      l,
		Close:    c,
		Volume:   vol,
	}, nil
}
