// Package usecase builds the dashboard page layout and chart figures.
package usecase

import (
	"fmt"
	"time"

	candleentity "market_watch/internal/feature/candles/domain/entity"
	"market_watch/internal/feature/dashboard/domain/entity"
	"market_watch/internal/shared/indicator"
)

const (
	// TrendWindow はトレンド線の移動平均期間です。
	TrendWindow = 20

	CandlestickName = "Market Price"
	TrendName       = "20-Day Trend"
	TrendColor      = "orange"
	TrendWidth      = 1.0

	XAxisTitle     = "Date"
	YAxisTitle     = "Price (USD)"
	FigureTemplate = "plotly_white"
	HoverMode      = "x unified"
)

// FigureTitle はチャートのタイトルを返します。
func FigureTitle(symbol string) string {
	return fmt.Sprintf("%s - Price History & Trend Analysis", symbol)
}

// BuildFigure は日足の履歴からチャートを組み立てます。
// 入力は変更せず、同じ入力には常に同じ結果を返します。
// トレンド線は履歴が TrendWindow 本を超える場合のみ追加されます。
func BuildFigure(symbol string, candles []candleentity.Candle) entity.Figure {
	n := len(candles)
	x := make([]time.Time, n)
	open := make([]float64, n)
	high := make([]float64, n)
	low := make([]float64, n)
	for i, c := range candles {
		x[i] = c.Time
		open[i] = c.Open
		high[i] = c.High
		low[i] = c.Low
	}
	closes := candleentity.Closes(candles)

	traces := []entity.Trace{{
		Type:  entity.TraceCandlestick,
		Name:  CandlestickName,
		X:     x,
		Open:  open,
		High:  high,
		Low:   low,
		Close: closes,
	}}

	if n > TrendWindow {
		traces = append(traces, entity.Trace{
			Type: entity.TraceScatter,
			Name: TrendName,
			X:    x,
			Y:    indicator.SMA(closes, TrendWindow),
			Line: &entity.Line{Color: TrendColor, Width: TrendWidth},
		})
	}

	return entity.Figure{
		Symbol: symbol,
		Traces: traces,
		Layout: entity.FigureLayout{
			Title:       FigureTitle(symbol),
			XAxisTitle:  XAxisTitle,
			YAxisTitle:  YAxisTitle,
			Template:    FigureTemplate,
			RangeSlider: true,
			HoverMode:   HoverMode,
		},
	}
}
