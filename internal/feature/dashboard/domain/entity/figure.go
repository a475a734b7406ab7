// Package entity defines the chart and page models for the dashboard feature.
package entity

import "time"

// TraceType は描画系列の種類です。
type TraceType string

const (
	TraceCandlestick TraceType = "candlestick"
	TraceScatter     TraceType = "scatter"
)

// Line は折れ線系列の線スタイルです。
type Line struct {
	Color string
	Width float64
}

// Trace は1本の描画系列です。
// ローソク足系列は Open/High/Low/Close を、折れ線系列は Y と Line を持ちます。
// Y の nil 要素は値なし（描画しない）を表します。
type Trace struct {
	Type  TraceType
	Name  string
	X     []time.Time
	Open  []float64
	High  []float64
	Low   []float64
	Close []float64
	Y     []*float64
	Line  *Line
}

// FigureLayout はチャート全体の表示設定です。
type FigureLayout struct {
	Title       string
	XAxisTitle  string
	YAxisTitle  string
	Template    string
	RangeSlider bool
	HoverMode   string
}

// Figure は1銘柄分のチャート定義です。Traces の先頭は常にローソク足系列です。
type Figure struct {
	Symbol string
	Traces []Trace
	Layout FigureLayout
}

// Candlestick は先頭のローソク足系列を返します。
func (f Figure) Candlestick() (Trace, bool) {
	for _, t := range f.Traces {
		if t.Type == TraceCandlestick {
			return t, true
		}
	}
	return Trace{}, false
}

// Trend はトレンド線の系列を返します。履歴が短い場合は存在しません。
func (f Figure) Trend() (Trace, bool) {
	for _, t := range f.Traces {
		if t.Type == TraceScatter {
			return t, true
		}
	}
	return Trace{}, false
}
