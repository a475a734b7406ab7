// Package dto defines data transfer objects for the dashboard HTTP API.
package dto

import "market_watch/internal/feature/dashboard/domain/entity"

const dateLayout = "2006-01-02"

// TraceLine は折れ線系列の線スタイルです。
type TraceLine struct {
	Color string  `json:"color"`
	Width float64 `json:"width"`
}

// TraceResponse は1本の系列です。ローソク足なら open/high/low/close、折れ線なら y を持ちます。
type TraceResponse struct {
	Type  string     `json:"type"`
	Name  string     `json:"name"`
	X     []string   `json:"x"`
	Open  []float64  `json:"open,omitempty"`
	High  []float64  `json:"high,omitempty"`
	Low   []float64  `json:"low,omitempty"`
	Close []float64  `json:"close,omitempty"`
	Y     []*float64 `json:"y,omitempty"`
	Line  *TraceLine `json:"line,omitempty"`
}

// AxisTitle は軸やチャートのタイトルです。
type AxisTitle struct {
	Text string `json:"text"`
}

// RangeSlider はX軸下部の期間スライダーの表示設定です。
type RangeSlider struct {
	Visible bool `json:"visible"`
}

// XAxis はX軸の設定です。
type XAxis struct {
	Title       AxisTitle   `json:"title"`
	RangeSlider RangeSlider `json:"rangeslider"`
}

// YAxis はY軸の設定です。
type YAxis struct {
	Title AxisTitle `json:"title"`
}

// LayoutResponse はチャート全体の表示設定です。
type LayoutResponse struct {
	Title     AxisTitle `json:"title"`
	XAxis     XAxis     `json:"xaxis"`
	YAxis     YAxis     `json:"yaxis"`
	Template  string    `json:"template"`
	HoverMode string    `json:"hovermode"`
}

// FigureResponse は GET /api/figure/:symbol のレスポンスです。
type FigureResponse struct {
	Symbol string          `json:"symbol"`
	Data   []TraceResponse `json:"data"`
	Layout LayoutResponse  `json:"layout"`
}

// ErrorResponse はエラー時のレスポンスです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// FromFigure はFigureをレスポンスに変換します。
func FromFigure(fig entity.Figure) FigureResponse {
	data := make([]TraceResponse, 0, len(fig.Traces))
	for _, t := range fig.Traces {
		x := make([]string, len(t.X))
		for i, tm := range t.X {
			x[i] = tm.Format(dateLayout)
		}
		tr := TraceResponse{
			Type:  string(t.Type),
			Name:  t.Name,
			X:     x,
			Open:  t.Open,
			High:  t.High,
			Low:   t.Low,
			Close: t.Close,
			Y:     t.Y,
		}
		if t.Line != nil {
			tr.Line = &TraceLine{Color: t.Line.Color, Width: t.Line.Width}
		}
		data = append(data, tr)
	}

	return FigureResponse{
		Symbol: fig.Symbol,
		Data:   data,
		Layout: LayoutResponse{
			Title: AxisTitle{Text: fig.Layout.Title},
			XAxis: XAxis{
				Title:       AxisTitle{Text: fig.Layout.XAxisTitle},
				RangeSlider: RangeSlider{Visible: fig.Layout.RangeSlider},
			},
			YAxis:     YAxis{Title: AxisTitle{Text: fig.Layout.YAxisTitle}},
			Template:  fig.Layout.Template,
			HoverMode: fig.Layout.HoverMode,
		},
	}
}
