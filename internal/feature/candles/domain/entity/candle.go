// Package entity defines the domain models for the candles feature.
package entity

import "time"

// DailyInterval is the only bar width the dashboard requests.
const DailyInterval = "1day"

// Candle is one daily OHLC bar of a ticker's price history.
// A history is a []Candle ordered oldest first.
type Candle struct {
	Symbol   string    // Ticker symbol (e.g., "AAPL", "GC=F")
	Interval string    // Bar width, always DailyInterval for now
	Time     time.Time // Start of the trading day
	Open     float64   // Opening price
	High     float64   // Highest price of the day
	Low      float64   // Lowest price of the day
	Close    float64   // Closing price
	Volume   int64     // Traded volume; 0 when the provider omits it
}

// Closes extracts the close prices of a history, preserving order.
func Closes(candles []Candle) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		out[i] = c.Close
	}
	return out
}
