// Package usecase はローソク足（価格履歴）取得のビジネスロジックを実装します。
package usecase

import (
	"context"
	"sort"

	"market_watch/internal/feature/candles/domain/entity"
)

// DefaultPeriod はダッシュボードが要求する遡及期間（直近6か月）です。
const DefaultPeriod = "6mo"

// MarketRepository は外部マーケットデータプロバイダーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type MarketRepository interface {
	// GetHistory は period 分の日足を返します。順序はプロバイダー依存です。
	GetHistory(ctx context.Context, symbol, period string) ([]entity.Candle, error)
}

// HistoryUsecase は銘柄の価格履歴を取得するユースケースです。
type HistoryUsecase struct {
	market MarketRepository
	period string
}

// NewHistoryUsecase は指定されたプロバイダーでHistoryUsecaseを生成します。
// period が空の場合は DefaultPeriod を使用します。
func NewHistoryUsecase(market MarketRepository, period string) *HistoryUsecase {
	if period == "" {
		period = DefaultPeriod
	}
	return &HistoryUsecase{market: market, period: period}
}

// GetHistory は銘柄の日足を古い順に返します。
// 銘柄コードの検証は行いません（呼び出し側のUIが選択肢を制限します）。
// 取得失敗は *FetchError に包んでそのまま返し、リトライやキャッシュは行いません。
func (u *HistoryUsecase) GetHistory(ctx context.Context, symbol string) ([]entity.Candle, error) {
	cs, err := u.market.GetHistory(ctx, symbol, u.period)
	if err != nil {
		return nil, &FetchError{Symbol: symbol, Err: err}
	}

	// 取得したデータに銘柄コードと時間足を設定
	for i := range cs {
		cs[i].Symbol = symbol
		cs[i].Interval = entity.DailyInterval
	}
	sort.SliceStable(cs, func(i, j int) bool { return cs[i].Time.Before(cs[j].Time) })

	return cs, nil
}
