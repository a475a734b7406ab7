// Package handler はcandlesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"market_watch/internal/feature/candles/domain/entity"
	"market_watch/internal/feature/candles/transport/http/dto"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HistoryUsecase は価格履歴取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type HistoryUsecase interface {
	GetHistory(ctx context.Context, symbol string) ([]entity.Candle, error)
}

// CandlesHandler はローソク足データのHTTPリクエストを処理します。
type CandlesHandler struct {
	uc      HistoryUsecase
	log     *zap.Logger
	verbose bool
}

// NewCandlesHandler はCandlesHandlerを生成します。
// verbose が true の場合、エラー詳細をレスポンスに含めます（デバッグモード用）。
func NewCandlesHandler(uc HistoryUsecase, log *zap.Logger, verbose bool) *CandlesHandler {
	return &CandlesHandler{uc: uc, log: log, verbose: verbose}
}

// GetCandlesHandler は銘柄コードを受け取り、直近6か月の日足をJSONで返します。
//
// エンドポイント例:
// GET /api/candles/:code
func (h *CandlesHandler) GetCandlesHandler(c *gin.Context) {
	code := c.Param("code")

	candles, err := h.uc.GetHistory(c.Request.Context(), code)
	if err != nil {
		h.log.Error("failed to fetch history", zap.String("symbol", code), zap.Error(err))
		msg := http.StatusText(http.StatusBadGateway)
		if h.verbose {
			msg = err.Error()
		}
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: msg})
		return
	}

	// 日付は取引所のタイムゾーンのまま表示する（ダッシュボードのチャートと同じ）
	out := make([]dto.CandleResponse, 0, len(candles))
	for _, x := range candles {
		out = append(out, dto.CandleResponse{
			Time:   x.Time.Format("2006-01-02"),
			Open:   x.Open,
			High:   x.High,
			Low:    x.Low,
			Close:  x.Close,
			Volume: x.Volume,
		})
	}

	c.JSON(http.StatusOK, out)
}
