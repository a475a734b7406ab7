// Package di provides dependency injection factories for creating application components.
package di

import (
	"fmt"

	"market_watch/internal/config"
	"market_watch/internal/feature/candles/usecase"
	"market_watch/internal/platform/externalapi/polygon"
	"market_watch/internal/platform/externalapi/twelvedata"
	"market_watch/internal/platform/externalapi/yahoo"
	infrahttp "market_watch/internal/platform/http"
)

// NewMarket は設定で選択されたプロバイダーのMarketRepositoryを生成します。
func NewMarket(cfg *config.Config) (usecase.MarketRepository, error) {
	switch cfg.Provider {
	case config.ProviderYahoo:
		ycfg := yahoo.Config{
			BaseURL: cfg.Yahoo.BaseURL,
			Timeout: cfg.HTTPTimeout,
		}
		return yahoo.NewYahooMarket(ycfg, infrahttp.NewHTTPClient(ycfg.Timeout)), nil
	case config.ProviderTwelveData:
		tcfg := twelvedata.Config{
			TwelveDataAPIKey: cfg.TwelveData.APIKey,
			BaseURL:          cfg.TwelveData.BaseURL,
			Timeout:          cfg.HTTPTimeout,
			RatePerMinute:    cfg.TwelveData.RatePerMinute,
			Symbols:          cfg.TwelveData.Symbols,
		}
		return twelvedata.NewTwelveDataMarket(tcfg, infrahttp.NewHTTPClient(tcfg.Timeout)), nil
	case config.ProviderPolygon:
		pcfg := polygon.Config{
			APIKey:  cfg.Polygon.APIKey,
			Timeout: cfg.HTTPTimeout,
			Symbols: cfg.Polygon.Symbols,
		}
		return polygon.NewPolygonMarket(pcfg, infrahttp.NewHTTPClient(pcfg.Timeout)), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownProvider, cfg.Provider)
	}
}
