// Package twelvedata provides a client for the Twelve Data stock market API.
package twelvedata

import (
	"maps"
	"time"
)

// DefaultBaseURL is the public Twelve Data API host.
const DefaultBaseURL = "https://api.twelvedata.com"

// DefaultSymbols はカタログの先物ティッカーをTwelve Dataのシンボルに読み替えます。
var DefaultSymbols = map[string]string{
	"GC=F": "XAU/USD", // 金はスポット
	"ES=F": "SPX",     // S&P 500 は指数
}

// Config holds configuration for the Twelve Data API client.
type Config struct {
	TwelveDataAPIKey string            // API key for authentication
	BaseURL          string            // Base URL for the API (e.g., "https://api.twelvedata.com")
	Timeout          time.Duration     // HTTP request timeout; 0 means no client timeout
	RatePerMinute    int               // Max calls per minute; 0 disables throttling (free tier: 8)
	Symbols          map[string]string // Catalog symbol to Twelve Data symbol; merged over DefaultSymbols
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	merged := maps.Clone(DefaultSymbols)
	maps.Copy(merged, c.Symbols)
	c.Symbols = merged
	return c
}

// symbolFor は symbol に対応するTwelve Dataのシンボルを返します。対応がなければそのまま返します。
func (c Config) symbolFor(symbol string) string {
	if s, ok := c.Symbols[symbol]; ok {
		return s
	}
	return symbol
}
