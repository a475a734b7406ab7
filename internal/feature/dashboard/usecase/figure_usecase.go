package usecase

import (
	"context"

	candleentity "market_watch/internal/feature/candles/domain/entity"
	"market_watch/internal/feature/dashboard/domain/entity"
)

// HistoryFetcher は銘柄の日足履歴を取得するポートです。
type HistoryFetcher interface {
	GetHistory(ctx context.Context, symbol string) ([]candleentity.Candle, error)
}

// FigureUsecase は選択された銘柄のチャートを取得から組み立てまで行います。
// 状態を持たないため、並行して呼び出せます。
type FigureUsecase struct {
	history       HistoryFetcher
	defaultSymbol string
}

// NewFigureUsecase creates a new FigureUsecase.
// defaultSymbol は銘柄未指定時に表示する銘柄で、銘柄カタログの先頭を渡します。
func NewFigureUsecase(history HistoryFetcher, defaultSymbol string) *FigureUsecase {
	return &FigureUsecase{history: history, defaultSymbol: defaultSymbol}
}

// UpdateFigure は symbol の履歴を取得し、新しいチャートを返します。
// symbol が空の場合はデフォルト銘柄を使います。
// 取得に失敗した場合はエラーをそのまま返し、チャートは返しません。
func (u *FigureUsecase) UpdateFigure(ctx context.Context, symbol string) (entity.Figure, error) {
	if symbol == "" {
		symbol = u.defaultSymbol
	}
	candles, err := u.history.GetHistory(ctx, symbol)
	if err != nil {
		return entity.Figure{}, err
	}
	return BuildFigure(symbol, candles), nil
}
