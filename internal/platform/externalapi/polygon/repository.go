package polygon

import (
	"context"
	"fmt"
	"net/http"
	"time"

	polygonrest "github.com/polygon-io/client-go/rest"
	"github.com/polygon-io/client-go/rest/models"

	"market_watch/internal/feature/candles/domain/entity"
	"market_watch/internal/feature/candles/usecase"
)

// maxAggs is the largest page Polygon serves; six months of daily bars fit in one.
const maxAggs = 50000

// aggsFunc drains one ListAggs query.
type aggsFunc func(ctx context.Context, params *models.ListAggsParams) ([]models.Agg, error)

// PolygonMarket fetches daily aggregates from Polygon.io.
type PolygonMarket struct {
	cfg  Config
	list aggsFunc
	now  func() time.Time
}

var _ usecase.MarketRepository = (*PolygonMarket)(nil)

// NewPolygonMarket creates a PolygonMarket backed by the official REST client.
func NewPolygonMarket(cfg Config, client *http.Client) *PolygonMarket {
	cfg = cfg.withDefaults()
	rc := polygonrest.NewWithClient(cfg.APIKey, client)
	return &PolygonMarket{
		cfg: cfg,
		list: func(ctx context.Context, params *models.ListAggsParams) ([]models.Agg, error) {
			it := rc.ListAggs(ctx, params)
			var out []models.Agg
			for it.Next() {
				out = append(out, it.Item())
			}
			if err := it.Err(); err != nil {
				return nil, err
			}
			return out, nil
		},
		now: time.Now,
	}
}

// GetHistory lists day aggregates from the start of period until now, oldest first.
// Catalog symbols are translated to Polygon tickers first.
func (p *PolygonMarket) GetHistory(ctx context.Context, symbol, period string) ([]entity.Candle, error) {
	now := p.now()
	start, err := entity.PeriodStart(now, period)
	if err != nil {
		return nil, err
	}

	params := &models.ListAggsParams{
		Ticker:     p.cfg.ticker(symbol),
		Multiplier: 1,
		Timespan:   models.Day,
		From:       models.Millis(start),
		To:         models.Millis(now),
	}
	limit := maxAggs
	asc := models.Asc
	adjusted := true
	params.Limit = &limit
	params.Order = &asc
	params.Adjusted = &adjusted

	aggs, err := p.list(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("polygon aggs: %w", err)
	}

	candles := make([]entity.Candle, 0, len(aggs))
	for _, a := range aggs {
		candles = append(candles, entity.Candle{
			Interval: entity.DailyInterval,
			Time:     time.Time(a.Timestamp).UTC(),
			Open:     a.Open,
			High:     a.High,
			Low:      a.Low,
			Close:    a.Close,
			Volume:   int64(a.Volume),
		})
	}
	return candles, nil
}
