package echarts

import (
	"bytes"
	"testing"
	"time"

	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	candleentity "market_watch/internal/feature/candles/domain/entity"
	"market_watch/internal/feature/dashboard/usecase"
)

func candles(n int, price float64) []candleentity.Candle {
	start := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	out := make([]candleentity.Candle, n)
	for i := range out {
		out[i] = candleentity.Candle{
			Time:  start.AddDate(0, 0, i),
			Open:  price,
			High:  price + 2,
			Low:   price - 2,
			Close: price + 1,
		}
	}
	return out
}

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	fig := usecase.BuildFigure("GOOGL", candles(25, 180))

	var buf bytes.Buffer
	require.NoError(t, NewRenderer().Render(&buf, fig))
	out := buf.String()

	assert.Contains(t, out, "GOOGL - Price History")
	assert.Contains(t, out, "Market Price")
	assert.Contains(t, out, "20-Day Trend")
	assert.Contains(t, out, "orange")
	assert.Contains(t, out, "slider")
	assert.Contains(t, out, "2025-01-02")
	assert.Contains(t, out, "Price (USD)")
}

func TestRenderer_Build(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		n          int
		wantSeries int
	}{
		{"short history has no trend", 20, 1},
		{"long history has trend", 21, 2},
		{"empty history", 0, 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fig := usecase.BuildFigure("AAPL", candles(tt.n, 100))
			kline := NewRenderer().build(fig)

			assert.Len(t, kline.MultiSeries, tt.wantSeries)
		})
	}
}

func TestTrendLine_MissingValues(t *testing.T) {
	t.Parallel()

	fig := usecase.BuildFigure("TSLA", candles(22, 250))
	trend, ok := fig.Trend()
	require.True(t, ok)

	line := trendLine(make([]string, 22), trend)
	require.Len(t, line.MultiSeries, 1)

	data, ok := line.MultiSeries[0].Data.([]opts.LineData)
	require.True(t, ok)
	require.Len(t, data, 22)
	assert.Equal(t, missingValue, data[0].Value)
	assert.Equal(t, missingValue, data[18].Value)
	assert.Equal(t, 251.0, data[19].Value)
}
