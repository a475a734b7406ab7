// Package polygon adapts the Polygon.io aggregates API to the candles port.
package polygon

import (
	"maps"
	"time"
)

// DefaultSymbols はカタログの先物ティッカーをPolygon.ioのティッカーに読み替えます。
var DefaultSymbols = map[string]string{
	"GC=F": "C:XAUUSD", // 金はスポットの為替ペア
	"ES=F": "I:SPX",    // S&P 500 は指数
}

// Config holds configuration for the Polygon.io client.
type Config struct {
	APIKey  string            // Polygon.io API key
	Timeout time.Duration     // HTTP request timeout; 0 means no client timeout
	Symbols map[string]string // Catalog symbol to Polygon ticker; merged over DefaultSymbols
}

func (c Config) withDefaults() Config {
	merged := maps.Clone(DefaultSymbols)
	maps.Copy(merged, c.Symbols)
	c.Symbols = merged
	return c
}

// ticker は symbol に対応するPolygon.ioのティッカーを返します。対応がなければそのまま返します。
func (c Config) ticker(symbol string) string {
	if t, ok := c.Symbols[symbol]; ok {
		return t
	}
	return symbol
}
