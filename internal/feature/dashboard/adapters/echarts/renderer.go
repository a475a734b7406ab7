// Package echarts renders dashboard figures as standalone ECharts HTML documents.
package echarts

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"market_watch/internal/feature/dashboard/domain/entity"
)

const (
	themeWhite = "white"
	dateLayout = "2006-01-02"

	// echarts は "-" を欠損値として扱う
	missingValue = "-"

	upColor   = "#26a69a"
	downColor = "#ef5350"
)

// Renderer はFigureをローソク足とトレンド線を重ねたHTMLに変換します。
type Renderer struct {
	width  string
	height string
}

// NewRenderer はiframe全体に広がるチャートを描画するRendererを生成します。
func NewRenderer() *Renderer {
	return &Renderer{width: "100%", height: "95vh"}
}

// Render は fig を w に書き出します。
func (r *Renderer) Render(w io.Writer, fig entity.Figure) error {
	return r.build(fig).Render(w)
}

func (r *Renderer) build(fig entity.Figure) *charts.Kline {
	kline := charts.NewKLine()
	kline.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: fig.Layout.Title,
			Width:     r.width,
			Height:    r.height,
			Theme:     themeWhite,
		}),
		charts.WithTitleOpts(opts.Title{
			Title: fig.Layout.Title,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    true,
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show:  true,
			Right: "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: fig.Layout.XAxisTitle,
			Type: "category",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  fig.Layout.YAxisTitle,
			Scale: true,
		}),
	)
	if fig.Layout.RangeSlider {
		kline.SetGlobalOptions(
			charts.WithDataZoomOpts(opts.DataZoom{
				Type:       "slider",
				Start:      0,
				End:        100,
				XAxisIndex: []int{0},
			}),
		)
	}

	cs, ok := fig.Candlestick()
	if !ok {
		return kline
	}

	x := make([]string, len(cs.X))
	for i, t := range cs.X {
		x[i] = t.Format(dateLayout)
	}

	// echarts のローソク足は [open, close, low, high] の順
	klineY := make([]opts.KlineData, 0, len(cs.X))
	for i := range cs.X {
		klineY = append(klineY, opts.KlineData{Value: []float64{cs.Open[i], cs.Close[i], cs.Low[i], cs.High[i]}})
	}
	kline.SetXAxis(x).
		AddSeries(cs.Name, klineY).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color:        upColor,
				Color0:       downColor,
				BorderColor:  upColor,
				BorderColor0: downColor,
			}),
		)

	if trend, ok := fig.Trend(); ok {
		kline.Overlap(trendLine(x, trend))
	}
	return kline
}

// trendLine はトレンド系列を折れ線に変換します。値のない位置は欠損として残します。
func trendLine(x []string, trend entity.Trace) *charts.Line {
	lineY := make([]opts.LineData, 0, len(trend.Y))
	for _, y := range trend.Y {
		if y == nil {
			lineY = append(lineY, opts.LineData{Value: missingValue})
			continue
		}
		lineY = append(lineY, opts.LineData{Value: *y})
	}

	style := opts.LineStyle{Width: 1}
	if trend.Line != nil {
		style = opts.LineStyle{Color: trend.Line.Color, Width: float32(trend.Line.Width)}
	}

	line := charts.NewLine()
	line.SetXAxis(x).
		AddSeries(trend.Name, lineY,
			charts.WithLineStyleOpts(style),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: style.Color}),
		)
	return line
}
